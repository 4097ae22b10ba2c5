package skills

import (
	"sort"
	"testing"

	"github.com/resumatch/resumatch/internal/domain"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	return r
}

func TestExtract_EmptyText(t *testing.T) {
	r := newTestRegistry(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		got := r.Extract(text)
		if got.Len() != 0 {
			t.Errorf("Extract(%q) = %v, want empty set", text, got.Sorted())
		}
	}
}

func TestExtract_VocabularyHits(t *testing.T) {
	r := newTestRegistry(t)

	got := r.Extract("Senior Python developer with SQL and Docker experience")

	for _, want := range []domain.Token{"python", "sql", "docker"} {
		if !got.Has(want) {
			t.Errorf("Extract missing %q, got %v", want, got.Sorted())
		}
	}
}

func TestExtract_WordBoundary(t *testing.T) {
	r := newTestRegistry(t)

	// "pythonic" must not count as "python"; "javan" must not count as "java".
	got := r.Extract("a pythonic javan approach")
	if got.Has("python") || got.Has("java") {
		t.Errorf("boundary match leaked through: %v", got.Sorted())
	}
}

func TestExtract_AliasNormalization(t *testing.T) {
	r := newTestRegistry(t)

	got := r.Extract("Worked with ML models and Gen AI pipelines, golang services")

	tests := []struct {
		canonical domain.Token
		alias     string
	}{
		{"machine learning", "ml"},
		{"generative ai", "gen ai"},
		{"go", "golang"},
	}
	for _, tc := range tests {
		if !got.Has(tc.canonical) {
			t.Errorf("alias %q did not normalize to %q; got %v", tc.alias, tc.canonical, got.Sorted())
		}
		if got.Has(domain.Token(tc.alias)) {
			t.Errorf("raw alias %q leaked into result set", tc.alias)
		}
	}
}

func TestExtract_Deduplicates(t *testing.T) {
	r := newTestRegistry(t)

	got := r.Extract("sql, SQL, and more sql")
	if !got.Has("sql") || got.Len() != 1 {
		t.Errorf("want exactly one token sql, got %v", got.Sorted())
	}
}

func TestNormalize(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		raw  string
		want domain.Token
	}{
		{"ML", "machine learning"},
		{"  Postgres ", "postgresql"},
		{"Rust", "rust"}, // unknown passes through lowercased
		{"", ""},
	}
	for _, tc := range tests {
		if got := r.Normalize(tc.raw); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestUnknown(t *testing.T) {
	r := newTestRegistry(t)

	set := domain.NewTokenSet("python", "quantum basket weaving")
	got := r.Unknown(set)
	if len(got) != 1 || got[0] != "quantum basket weaving" {
		t.Errorf("Unknown = %v, want [quantum basket weaving]", got)
	}
}

func TestVocabulary_SortedCopy(t *testing.T) {
	r := newTestRegistry(t)

	vocab := r.Vocabulary()
	if len(vocab) == 0 {
		t.Fatal("Vocabulary() returned empty slice")
	}
	if !sort.StringsAreSorted(vocab) {
		t.Errorf("Vocabulary() not sorted: %v", vocab)
	}

	// Mutating the returned slice must not touch the registry.
	vocab[0] = "zzz-mutated"
	if r.Vocabulary()[0] == "zzz-mutated" {
		t.Error("Vocabulary() returned internal slice, want copy")
	}
}
