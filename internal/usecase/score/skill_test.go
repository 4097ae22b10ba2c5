package score

import (
	"testing"

	"github.com/resumatch/resumatch/internal/domain"
)

func TestSkill_WeightedCoverage(t *testing.T) {
	// Matched optional-only coverage against one mandatory and two optional:
	// (1+1) / (2*1 + 2) = 50.
	tiers := domain.Tiers{
		Mandatory: domain.NewTokenSet("aws"),
		Optional:  domain.NewTokenSet("python", "sql"),
	}
	got := Skill(domain.NewTokenSet("python", "sql"), tiers)
	if got.Value != 50 {
		t.Errorf("Skill = %d, want 50", got.Value)
	}
}

func TestSkill_CapAt95(t *testing.T) {
	tiers := domain.Tiers{
		Mandatory: domain.NewTokenSet("python"),
		Optional:  domain.NewTokenSet("sql"),
	}
	got := Skill(domain.NewTokenSet("python", "sql"), tiers)
	if got.Value != 95 {
		t.Errorf("full coverage must cap at 95, got %d", got.Value)
	}
}

func TestSkill_MonotonicInMatches(t *testing.T) {
	tiers := domain.Tiers{
		Mandatory: domain.NewTokenSet("python", "aws"),
		Optional:  domain.NewTokenSet("sql", "docker", "git"),
	}
	all := []domain.Token{"python", "aws", "sql", "docker", "git"}

	prev := -1
	matched := domain.NewTokenSet()
	for _, tok := range all {
		matched.Add(tok)
		got := Skill(matched, tiers)
		if got.Value < prev {
			t.Errorf("score decreased from %d to %d after adding %q", prev, got.Value, tok)
		}
		prev = got.Value
	}
}

func TestSkill_EmptyTiers(t *testing.T) {
	got := Skill(domain.NewTokenSet("python"), domain.Tiers{
		Mandatory: domain.NewTokenSet(),
		Optional:  domain.NewTokenSet(),
	})
	if got.Value != 0 {
		t.Errorf("empty requirement tiers must score 0, got %d", got.Value)
	}
}

func TestSkill_MandatoryWorthDouble(t *testing.T) {
	tiers := domain.Tiers{
		Mandatory: domain.NewTokenSet("python"),
		Optional:  domain.NewTokenSet("sql", "docker"),
	}
	// 2 / (2+2) = 50 for the mandatory hit alone.
	mandatoryOnly := Skill(domain.NewTokenSet("python"), tiers)
	if mandatoryOnly.Value != 50 {
		t.Errorf("mandatory-only = %d, want 50", mandatoryOnly.Value)
	}
	// 1 / 4 = 25 for a single optional hit.
	optionalOnly := Skill(domain.NewTokenSet("sql"), tiers)
	if optionalOnly.Value != 25 {
		t.Errorf("optional-only = %d, want 25", optionalOnly.Value)
	}
}
