package analyze

import (
	"context"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/usecase/match"
)

// Matcher reconciles the subject tokens against the requirement tokens.
type Matcher interface {
	Match(ctx context.Context, subject, requirement domain.TokenSet) match.Outcome
}

// Ledger persists one score snapshot per analysis.
type Ledger interface {
	Append(ctx context.Context, documentID string, snap domain.Snapshot) (domain.VersionRecord, error)
}
