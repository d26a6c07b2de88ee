// Package digest implements the streaming SHA-256 content digest used
// to populate FileStat.SHA256 for regular files. It is implemented
// directly against crypto/sha256: no dependency in the retrieval pack
// offers a streaming SHA-256 API that improves on the standard library's
// for this narrow purpose, and the teacher itself reaches for
// crypto/sha256 wherever it needs a content digest. See DESIGN.md.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/vauradkar/pfs/pfserrors"
)

// chunkSize is the read buffer size used when streaming a file, matching
// the 4 KiB chunking spec.md §4.3 requires.
const chunkSize = 4096

// HexFile streams hostPath's contents through SHA-256 in 4 KiB chunks
// and returns the lowercase hex digest.
func HexFile(hostPath string) (string, error) {
	file, err := os.Open(hostPath)
	if err != nil {
		return "", pfserrors.Readf(hostPath, err)
	}
	defer file.Close()

	hasher := sha256.New()
	buffer := make([]byte, chunkSize)
	for {
		n, readErr := file.Read(buffer)
		if n > 0 {
			if _, err := hasher.Write(buffer[:n]); err != nil {
				return "", pfserrors.Readf(hostPath, err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", pfserrors.Readf(hostPath, readErr)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// HexBytes computes the lowercase hex SHA-256 digest of data in a single
// update, for callers that already hold the content in memory.
func HexBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
