// Package filter implements the three-valued Filter Set decision
// described in spec.md §4.2: Deny, Traverse, or Allow a given path.
package filter

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Level is the three-valued filter decision.
type Level int

const (
	// Deny rejects the path outright: it is neither emitted nor, if a
	// directory, traversed.
	Deny Level = iota
	// Traverse means the directory itself is not emitted, but its
	// children are still walked to look for matches.
	Traverse
	// Allow means the path is emitted.
	Allow
)

func (l Level) String() string {
	switch l {
	case Deny:
		return "Deny"
	case Traverse:
		return "Traverse"
	default:
		return "Allow"
	}
}

// Set holds the filter configuration: allowed/denied root prefixes,
// allowed extensions, allowed exact filenames, and (an addition beyond
// spec.md) allowed glob patterns. The zero value accepts everything.
type Set struct {
	allowedRoots      []string
	deniedRoots       []string
	allowedExtensions map[string]bool
	allowedFilenames  map[string]bool
	allowedGlobs      []string
}

// New returns an empty filter set (accept everything).
func New() *Set {
	return &Set{}
}

// AllowPath adds an allowed root prefix.
func (s *Set) AllowPath(path string) {
	s.allowedRoots = append(s.allowedRoots, path)
}

// DenyPath adds a denied root prefix. Denied roots always override
// allowed roots.
func (s *Set) DenyPath(path string) {
	s.deniedRoots = append(s.deniedRoots, path)
}

// AllowExtension adds an allowed extension, lowercased.
func (s *Set) AllowExtension(ext string) {
	if s.allowedExtensions == nil {
		s.allowedExtensions = make(map[string]bool)
	}
	s.allowedExtensions[strings.ToLower(ext)] = true
}

// AllowFilename adds an allowed exact filename.
func (s *Set) AllowFilename(name string) {
	if s.allowedFilenames == nil {
		s.allowedFilenames = make(map[string]bool)
	}
	s.allowedFilenames[name] = true
}

// AllowGlob adds a doublestar glob pattern (e.g. "*.min.*") to the
// allow list. When extension or filename rules are configured, a
// matching glob widens their verdict, allowing files they would deny.
// When globs are the only file rules, a file that matches no glob is
// denied, as with an allowed-extension list, and directories become
// Traverse. This is an addition beyond spec.md's filter collections (see
// SPEC_FULL.md §2).
func (s *Set) AllowGlob(pattern string) {
	s.allowedGlobs = append(s.allowedGlobs, pattern)
}

// hasComponentPrefix reports whether root is a component-wise prefix of
// path, so that "target" matches "target/debug/foo" but not "arget".
func hasComponentPrefix(path, root string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	root = filepath.ToSlash(filepath.Clean(root))
	if root == "." || root == "" {
		return true
	}
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+"/")
}

// Matches computes the filter decision for path, given whether it names
// a directory. See spec.md §4.2 for the algorithm; configured glob
// patterns count as file rules in the directory step (so directories are
// Traverse), and for files a matching glob turns a would-be Deny from
// the extension/filename steps into Allow.
func (s *Set) Matches(path string, isDir bool) Level {
	for _, denied := range s.deniedRoots {
		if hasComponentPrefix(path, denied) {
			return Deny
		}
	}

	if len(s.allowedRoots) > 0 {
		matched := false
		for _, root := range s.allowedRoots {
			if hasComponentPrefix(path, root) {
				matched = true
				break
			}
		}
		if !matched {
			return Deny
		}
	}

	if isDir {
		if len(s.allowedExtensions) == 0 && len(s.allowedFilenames) == 0 && len(s.allowedGlobs) == 0 {
			return Allow
		}
		return Traverse
	}

	hasExtensionRule := len(s.allowedExtensions) > 0
	extensionOK := !hasExtensionRule
	if hasExtensionRule {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		extensionOK = ext != "" && s.allowedExtensions[ext]
	}

	hasFilenameRule := len(s.allowedFilenames) > 0
	filenameOK := !hasFilenameRule
	if hasFilenameRule {
		filenameOK = s.allowedFilenames[filepath.Base(path)]
	}

	hasGlobRule := len(s.allowedGlobs) > 0
	globOK := false
	if hasGlobRule {
		slashPath := filepath.ToSlash(path)
		for _, pattern := range s.allowedGlobs {
			if ok, _ := doublestar.Match(pattern, slashPath); ok {
				globOK = true
				break
			}
		}
	}

	if !hasExtensionRule && !hasFilenameRule && !hasGlobRule {
		return Allow
	}

	// extensionOK and filenameOK are vacuously true when their rule is
	// absent, so the AND only constrains the classes actually
	// configured; it must not fire when neither is configured at all,
	// or a glob-only set would allow every path regardless of match.
	extensionAndFilenameOK := (hasExtensionRule || hasFilenameRule) && extensionOK && filenameOK

	// The glob class is an additive widening: a path that fails the
	// exact extension/filename checks is still Allowed if it matches a
	// configured glob. Without any glob rules, behavior is exactly
	// spec.md's algorithm.
	if extensionAndFilenameOK || (hasGlobRule && globOK) {
		return Allow
	}
	return Deny
}

// Guarded wraps a Set behind a reader/writer lock, matching the
// filesystem layer's concurrency discipline from spec.md §3/§5: reads
// happen in the hot walk path, writes only when the facade user
// reconfigures filters.
type Guarded struct {
	mu  sync.RWMutex
	set *Set
}

// NewGuarded wraps set (or a fresh accept-all Set, if nil) behind a
// reader/writer lock.
func NewGuarded(set *Set) *Guarded {
	if set == nil {
		set = New()
	}
	return &Guarded{set: set}
}

// Matches takes the read lock and delegates to the underlying Set.
func (g *Guarded) Matches(path string, isDir bool) Level {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.set.Matches(path, isDir)
}

// Mutate takes the write lock and runs fn against the underlying Set,
// for the facade's filter mutators.
func (g *Guarded) Mutate(fn func(*Set)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.set)
}
