package prefix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		prefix string
		letter byte
		ok     bool
	}{
		{"251015a_notes.md", "251015", 'a', true},
		{"251015z_", "251015", 'z', true},
		{"251015b_", "251015", 'b', true},
		{"251015A_notes.md", "251015", 0, false},
		{"251015ab_notes.md", "251015", 0, false},
		{"251015a-notes.md", "251015", 0, false},
		{"251015a", "251015", 0, false},
		{"251015_notes.md", "251015", 0, false},
		{"251014a_notes.md", "251015", 0, false},
		{"x251015a_notes.md", "251015", 0, false},
		{"2025-10-15c_plan.md", "2025-10-15", 'c', true},
		// Regex metacharacters in a literal prefix are matched verbatim.
		{"v1.0a_x", "v1.0", 'a', true},
		{"v1x0a_x", "v1.0", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			letter, ok := Match(tc.name, tc.prefix)
			if ok != tc.ok || letter != tc.letter {
				t.Fatalf("Match(%q, %q) = (%q, %v), want (%q, %v)", tc.name, tc.prefix, letter, ok, tc.letter, tc.ok)
			}
		})
	}
}

func TestLetters_NextIsSmallestUnused(t *testing.T) {
	t.Parallel()

	used := Collect([]string{"251015a_x", "251015b_y", "251015d_z", "other.txt"}, "251015")
	letter, ok := used.Next()
	if !ok || letter != 'c' {
		t.Fatalf("Next() = (%q, %v), want ('c', true)", letter, ok)
	}
	if diff := cmp.Diff([]string{"a", "b", "d"}, used.Sorted()); diff != "" {
		t.Fatalf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestLetters_EmptyAndFull(t *testing.T) {
	t.Parallel()

	var empty Letters
	if letter, ok := empty.Next(); !ok || letter != 'a' {
		t.Fatalf("empty.Next() = (%q, %v)", letter, ok)
	}
	if empty.Sorted() != nil {
		t.Fatalf("expected nil Sorted() for empty set")
	}

	var full Letters
	for c := byte('a'); c <= 'z'; c++ {
		full.Add(c)
	}
	if _, ok := full.Next(); ok {
		t.Fatalf("expected no letter for a full set")
	}
}

func TestLetters_AddIgnoresOutOfRange(t *testing.T) {
	t.Parallel()

	var l Letters
	l.Add('A')
	l.Add('0')
	l.Add('{')
	if got := l.Sorted(); len(got) != 0 {
		t.Fatalf("expected nothing added, got %v", got)
	}
}
