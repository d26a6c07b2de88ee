package pfsutil

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeUnits are the base-1024 step-down units, smallest first.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders size as a human-readable string, stepping down
// through B, KB, MB, GB, TB at base 1024. The smallest unit (bytes) is
// always rendered as an integer; every other unit is rendered with one
// decimal place.
//
// This is a pure, exact-format function the wire contract depends on, so
// it is hand-rolled against crate-level `dustin/go-humanize` semantics
// rather than delegated to that library, whose default output ("1.2 MB"
// vs "1.2MB", rounding mode, and unit boundaries) does not match
// spec.md's contract byte-for-byte. See DESIGN.md.
func FormatSize(size uint64) string {
	value := float64(size)
	unitIndex := 0
	for value >= 1024 && unitIndex < len(sizeUnits)-1 {
		value /= 1024
		unitIndex++
	}

	if unitIndex == 0 {
		return fmt.Sprintf("%d%s", size, sizeUnits[0])
	}

	formatted := strconv.FormatFloat(value, 'f', 1, 64)
	return strings.TrimSpace(formatted) + sizeUnits[unitIndex]
}
