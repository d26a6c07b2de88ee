package pfstest

import (
	"path/filepath"
	"testing"
)

func TestNewPopulatesCanonicalTree(t *testing.T) {
	root := New(t)

	want := []string{
		"file1.txt", "file2.txt", "dir1", "dir1/file3.txt",
		"dir1/dir2", "dir1/dir2/file4.txt", "dir1/dir2/dir_empty1",
		"dir3", "dir3/file6.txt",
	}
	for _, relative := range want {
		if _, ok := root.Files[relative]; !ok {
			t.Errorf("missing fixture record for %s", relative)
		}
	}

	if stat := root.Files["dir1"]; !stat.IsDirectory {
		t.Error("expected dir1 to be recorded as a directory")
	}
	if stat := root.Files["file1.txt"]; stat.IsDirectory {
		t.Error("expected file1.txt to be recorded as a file")
	}
}

func TestCreateFileRefreshesRecords(t *testing.T) {
	root := New(t)
	root.CreateFile("dir1/new.txt", "hello")

	if _, ok := root.Files["dir1/new.txt"]; !ok {
		t.Fatal("expected new.txt to appear in Files after CreateFile")
	}
	if got := root.Files["dir1/new.txt"].Size; got != 5 {
		t.Errorf("Size = %d, want 5", got)
	}
	if _, err := filepath.Rel(root.Path, filepath.Join(root.Path, "dir1", "new.txt")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
