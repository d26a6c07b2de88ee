package ppath

import (
	"encoding/json"
	"testing"
)

func TestFromComponentsRejectsForbidden(t *testing.T) {
	cases := [][]string{
		{""},
		{"."},
		{".."},
		{"a/b"},
		{"a\\b"},
	}
	for _, components := range cases {
		if _, err := FromComponents(components); err == nil {
			t.Errorf("FromComponents(%v): expected error, got none", components)
		}
	}
}

func TestFromComponentsAccepts(t *testing.T) {
	p, err := FromComponents([]string{"dir1", "dir2", "file.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.String() != "dir1/dir2/file.txt" && p.String() != `dir1\dir2\file.txt` {
		t.Errorf("unexpected String(): %q", p.String())
	}
}

func TestFromHostPathDropsRoot(t *testing.T) {
	p, err := FromHostPath("/a/b/c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Components()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFromHostPathRejectsDotDot(t *testing.T) {
	if _, err := FromHostPath(".."); err == nil {
		t.Error("expected error for \"..\"")
	}
	if _, err := FromHostPath("."); err == nil {
		t.Error("expected error for \".\"")
	}
}

func TestBasenameAndParent(t *testing.T) {
	p, err := FromComponents([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base, ok := p.Basename()
	if !ok || base != "c" {
		t.Fatalf("Basename() = %q, %v; want c, true", base, ok)
	}

	parent, ok := p.Parent()
	if !ok {
		t.Fatal("Parent() = false; want true")
	}
	if len(parent.Components()) != 2 {
		t.Fatalf("parent has %d components, want 2", len(parent.Components()))
	}

	if _, ok := Empty().Basename(); ok {
		t.Error("Basename() on empty path should return false")
	}
	if _, ok := Empty().Parent(); ok {
		t.Error("Parent() on empty path should return false")
	}
}

func TestPushAndJoin(t *testing.T) {
	p, _ := FromComponents([]string{"a"})
	p.Push("b")
	if len(p.Components()) != 2 {
		t.Fatalf("after Push, got %d components, want 2", len(p.Components()))
	}

	other, _ := FromComponents([]string{"c", "d"})
	joined := p.Join(other)
	if len(joined.Components()) != 4 {
		t.Fatalf("Join produced %d components, want 4", len(joined.Components()))
	}
	// p itself must be unmodified by Join.
	if len(p.Components()) != 2 {
		t.Fatalf("Join mutated receiver: got %d components, want 2", len(p.Components()))
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromComponents([]string{"a", "b"})
	b, _ := FromComponents([]string{"a", "b"})
	c, _ := FromComponents([]string{"a", "c"})
	if !a.Equal(b) {
		t.Error("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Error("expected !a.Equal(c)")
	}
}

func TestCacheKeyDistinguishesComponents(t *testing.T) {
	a, _ := FromComponents([]string{"ab", "c"})
	b, _ := FromComponents([]string{"a", "bc"})
	if a.CacheKey() == b.CacheKey() {
		t.Errorf("distinct component splits produced the same cache key: %q", a.CacheKey())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p, _ := FromComponents([]string{"dir1", "file.txt"})

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Path
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !p.Equal(decoded) {
		t.Fatalf("round trip mismatch: got %v, want %v", decoded.Components(), p.Components())
	}
}

func TestJSONUnmarshalRejectsForbiddenComponent(t *testing.T) {
	err := json.Unmarshal([]byte(`{"components": ["a", ".."]}`), &Path{})
	if err == nil {
		t.Error("expected error unmarshaling a path containing \"..\"")
	}
}

func TestJSONMarshalEmptyPath(t *testing.T) {
	data, err := json.Marshal(Empty())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"components":[]}` {
		t.Errorf("got %s, want {\"components\":[]}", data)
	}
}
