package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	cases := []struct {
		version, commit, want string
	}{
		{"v1.2.0", "abc123", "v1.2.0"},
		{"dev", "abc123", "abc123"},
		{"", "unknown", "dev"},
		{"dev", "unknown", "dev"},
	}
	for _, tc := range cases {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Errorf("Short(%q, %q) = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}

func TestStringAndTitle(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v0.3.1", "deadbeef", "2026-10-01"

	if got, want := String(), "orrery v0.3.1 (commit deadbeef, built 2026-10-01)"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
	if got := Title(); got != "Orrery v0.3.1" {
		t.Fatalf("Title = %q", got)
	}
}
