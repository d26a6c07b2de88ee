// Package ppath implements a platform-neutral path value: an ordered
// sequence of validated, non-empty path components that is safe to
// deserialize from untrusted input and lossless across operating
// systems.
package ppath

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vauradkar/pfs/pfserrors"
)

// Path is an ordered sequence of path components. The zero value is the
// root (empty sequence).
type Path struct {
	components []string
}

// Empty returns the root path (no components).
func Empty() Path {
	return Path{}
}

// isForbidden reports whether a single component is disallowed anywhere
// in a Path: empty, ".", "..", or containing a path separator.
func isForbidden(component string) bool {
	if component == "" || component == "." || component == ".." {
		return true
	}
	return strings.ContainsAny(component, "/\\")
}

// FromComponents validates and builds a Path from a slice of components.
// It fails with an InvalidArgument error if any component is empty, ".",
// "..", or contains '/' or '\'.
func FromComponents(components []string) (Path, error) {
	out := make([]string, len(components))
	for i, c := range components {
		if isForbidden(c) {
			return Path{}, pfserrors.InvalidArgumentf("invalid path component: " + c)
		}
		out[i] = c
	}
	return Path{components: out}, nil
}

// FromHostPath builds a Path from a host-style path string. Root
// directory components are dropped and non-UTF-8-safe components are
// silently skipped; this is a deliberate lossy conversion for
// host-to-portable translation. It fails if the path is exactly "." or
// "..".
func FromHostPath(hostPath string) (Path, error) {
	if hostPath == "." || hostPath == ".." {
		return Path{}, pfserrors.InvalidArgumentf("path cannot be '.' or '..'")
	}

	clean := filepath.Clean(hostPath)
	if clean == "." {
		return Path{}, nil
	}

	var components []string
	for _, part := range strings.Split(clean, string(filepath.Separator)) {
		if part == "" {
			// Root component (leading separator) or doubled separator.
			continue
		}
		if part == string(filepath.Separator) {
			continue
		}
		// Volume names such as "C:" on Windows are dropped the same way a
		// root component is, since they aren't portable across hosts.
		if filepath.VolumeName(part) == part {
			continue
		}
		if !utf8.ValidString(part) {
			continue
		}
		components = append(components, part)
	}
	return Path{components: components}, nil
}

// Components returns a copy of the path's components.
func (p Path) Components() []string {
	out := make([]string, len(p.components))
	copy(out, p.components)
	return out
}

// IsEmpty reports whether this is the root path.
func (p Path) IsEmpty() bool {
	return len(p.components) == 0
}

// Basename returns the last component, or false if the path is empty.
func (p Path) Basename() (string, bool) {
	if len(p.components) == 0 {
		return "", false
	}
	return p.components[len(p.components)-1], true
}

// Parent returns the path with its last component removed, or false if
// the path is already empty.
func (p Path) Parent() (Path, bool) {
	if len(p.components) == 0 {
		return Path{}, false
	}
	parent := make([]string, len(p.components)-1)
	copy(parent, p.components[:len(p.components)-1])
	return Path{components: parent}, true
}

// Push appends a component in place. It is the caller's responsibility
// to ensure the component is legal; untrusted input should go through
// FromComponents instead.
func (p *Path) Push(component string) {
	p.components = append(p.components, component)
}

// Join concatenates other's components onto a copy of p and returns the
// result.
func (p Path) Join(other Path) Path {
	out := make([]string, 0, len(p.components)+len(other.components))
	out = append(out, p.components...)
	out = append(out, other.components...)
	return Path{components: out}
}

// AppendTo resolves this portable path to a host path by appending each
// component, in order, to base.
func (p Path) AppendTo(base string) string {
	parts := make([]string, 0, len(p.components)+1)
	parts = append(parts, base)
	parts = append(parts, p.components...)
	return filepath.Join(parts...)
}

// String joins the components with the host path separator.
func (p Path) String() string {
	return strings.Join(p.components, string(filepath.Separator))
}

// CacheKey returns a canonical string form of the path suitable for use
// as a comparable map/cache key, joining components with NUL so the
// result is unambiguous regardless of host path separator conventions.
func (p Path) CacheKey() string {
	return strings.Join(p.components, "\x00")
}

// Equal reports whether p and other have identical components in the
// same order.
func (p Path) Equal(other Path) bool {
	if len(p.components) != len(other.components) {
		return false
	}
	for i, c := range p.components {
		if other.components[i] != c {
			return false
		}
	}
	return true
}

// pathWire is the on-wire representation: {"components": [...]}.
type pathWire struct {
	Components []string `json:"components"`
}

// MarshalJSON implements json.Marshaler.
func (p Path) MarshalJSON() ([]byte, error) {
	components := p.components
	if components == nil {
		components = []string{}
	}
	return json.Marshal(pathWire{Components: components})
}

// UnmarshalJSON implements json.Unmarshaler, rejecting any forbidden
// component the same way FromComponents does.
func (p *Path) UnmarshalJSON(data []byte) error {
	var wire pathWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return pfserrors.Parsef("path", err)
	}
	validated, err := FromComponents(wire.Components)
	if err != nil {
		return err
	}
	*p = validated
	return nil
}
