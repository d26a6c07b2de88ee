package filter

import "testing"

func TestEmptySetAllowsEverything(t *testing.T) {
	s := New()
	if got := s.Matches("anything/here.go", false); got != Allow {
		t.Errorf("Matches() = %v, want Allow", got)
	}
	if got := s.Matches("anything/here", true); got != Allow {
		t.Errorf("Matches(dir) = %v, want Allow", got)
	}
}

func TestDenyOverridesAllow(t *testing.T) {
	s := New()
	s.AllowPath("target")
	s.DenyPath("target/debug")
	if got := s.Matches("target/release/app", false); got != Allow {
		t.Errorf("Matches(release) = %v, want Allow", got)
	}
	if got := s.Matches("target/debug/app", false); got != Deny {
		t.Errorf("Matches(debug) = %v, want Deny", got)
	}
}

func TestAllowedRootsDenyOutsiders(t *testing.T) {
	s := New()
	s.AllowPath("src")
	if got := s.Matches("src/main.go", false); got != Allow {
		t.Errorf("Matches(src) = %v, want Allow", got)
	}
	if got := s.Matches("other/main.go", false); got != Deny {
		t.Errorf("Matches(other) = %v, want Deny", got)
	}
}

func TestComponentPrefixDoesNotMatchPartialNames(t *testing.T) {
	s := New()
	s.AllowPath("target")
	if got := s.Matches("artifacts_target/file", false); got != Deny {
		t.Errorf("Matches() = %v, want Deny (should not match on partial component)", got)
	}
}

func TestDirectoryTraverseWhenFileRulesConfigured(t *testing.T) {
	s := New()
	s.AllowExtension("go")
	if got := s.Matches("pkg/sub", true); got != Traverse {
		t.Errorf("Matches(dir) = %v, want Traverse", got)
	}
	if got := s.Matches("pkg/sub/main.go", false); got != Allow {
		t.Errorf("Matches(main.go) = %v, want Allow", got)
	}
	if got := s.Matches("pkg/sub/main.rs", false); got != Deny {
		t.Errorf("Matches(main.rs) = %v, want Deny", got)
	}
}

func TestDirectoryAllowedWhenNoFileRulesConfigured(t *testing.T) {
	s := New()
	s.AllowPath("pkg")
	if got := s.Matches("pkg/sub", true); got != Allow {
		t.Errorf("Matches(dir) = %v, want Allow", got)
	}
}

func TestAllowFilenameExactMatch(t *testing.T) {
	s := New()
	s.AllowFilename("README.md")
	if got := s.Matches("docs/README.md", false); got != Allow {
		t.Errorf("Matches(README.md) = %v, want Allow", got)
	}
	if got := s.Matches("docs/readme.md", false); got != Deny {
		t.Errorf("Matches(readme.md) = %v, want Deny", got)
	}
}

func TestAllowExtensionIsCaseInsensitive(t *testing.T) {
	s := New()
	s.AllowExtension("TXT")
	if got := s.Matches("notes.txt", false); got != Allow {
		t.Errorf("Matches(notes.txt) = %v, want Allow", got)
	}
}

func TestAllowGlobWidensAllowWithoutCausingDeny(t *testing.T) {
	s := New()
	s.AllowExtension("go")
	s.AllowGlob("**/*.min.js")
	if got := s.Matches("dist/bundle.min.js", false); got != Allow {
		t.Errorf("Matches(bundle.min.js) = %v, want Allow", got)
	}
	if got := s.Matches("src/main.go", false); got != Allow {
		t.Errorf("Matches(main.go) = %v, want Allow", got)
	}
	if got := s.Matches("src/main.rs", false); got != Deny {
		t.Errorf("Matches(main.rs) = %v, want Deny", got)
	}
}

func TestGlobOnlySetDoesNotAllowEverything(t *testing.T) {
	s := New()
	s.AllowGlob("*.min.js")
	if got := s.Matches("bundle.min.js", false); got != Allow {
		t.Errorf("Matches(bundle.min.js) = %v, want Allow", got)
	}
	if got := s.Matches("main.go", false); got != Deny {
		t.Errorf("Matches(main.go) = %v, want Deny", got)
	}
}

func TestGuardedMatchesReflectsMutate(t *testing.T) {
	g := NewGuarded(nil)
	if got := g.Matches("anything", false); got != Allow {
		t.Errorf("Matches() = %v, want Allow before mutation", got)
	}
	g.Mutate(func(s *Set) { s.AllowPath("only") })
	if got := g.Matches("only/file", false); got != Allow {
		t.Errorf("Matches(only/file) = %v, want Allow", got)
	}
	if got := g.Matches("other/file", false); got != Deny {
		t.Errorf("Matches(other/file) = %v, want Deny", got)
	}
}
