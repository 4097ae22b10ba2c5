package analyze

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/skills"
	"github.com/resumatch/resumatch/internal/usecase/match"
	"github.com/resumatch/resumatch/internal/usecase/score"
)

// mockLedger records appends in memory.
type mockLedger struct {
	appends []domain.Snapshot
	ids     []string
	err     error
}

func (m *mockLedger) Append(_ context.Context, documentID string, snap domain.Snapshot) (domain.VersionRecord, error) {
	if m.err != nil {
		return domain.VersionRecord{}, m.err
	}
	m.appends = append(m.appends, snap)
	m.ids = append(m.ids, documentID)
	return domain.VersionRecord{
		DocumentID: documentID,
		Version:    len(m.appends),
		FinalScore: snap.FinalScore,
		Role:       snap.Role,
	}, nil
}

// mockMatcher returns a fixed outcome.
type mockMatcher struct {
	outcome match.Outcome
}

func (m *mockMatcher) Match(_ context.Context, _, _ domain.TokenSet) match.Outcome {
	return m.outcome
}

func newTestService(t *testing.T, matcher Matcher, ledger Ledger) *Service {
	t.Helper()

	registry, err := skills.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	aggregator, err := score.NewAggregator(domain.DefaultWeights())
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	if matcher == nil {
		matcher = match.New(nil, 0, zap.NewNop())
	}

	return New(
		registry,
		matcher,
		score.NewExperienceScorerAt(2026),
		score.DefaultRoleTable(),
		aggregator,
		ledger,
		zap.NewNop(),
	)
}
