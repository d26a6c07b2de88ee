package digest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHexBytesMatchesKnownDigest(t *testing.T) {
	// SHA-256 of the empty string.
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := HexBytes(nil); got != want {
		t.Errorf("HexBytes(nil) = %q, want %q", got, want)
	}
}

func TestHexFileMatchesHexBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.bin")
	data := make([]byte, chunkSize*3+17)
	for i := range data {
		data[i] = byte(i)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	want := HexBytes(data)
	got, err := HexFile(path)
	if err != nil {
		t.Fatalf("HexFile: %v", err)
	}
	if got != want {
		t.Errorf("HexFile() = %q, want %q (matches chunked boundary crossing)", got, want)
	}
}

func TestHexFileMissing(t *testing.T) {
	if _, err := HexFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
