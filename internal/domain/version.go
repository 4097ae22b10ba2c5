package domain

import "time"

// VersionRecord is one append-only score snapshot for a resume identity.
// Records are immutable once written; versions are dense and start at 1.
type VersionRecord struct {
	DocumentID   string    `json:"document_id"`
	Version      int       `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
	FinalScore   int       `json:"final_score"`
	Role         string    `json:"role"`
	MatchedCount int       `json:"matched_count"`
	MissingCount int       `json:"missing_count"`
}

// Snapshot carries the fields the ledger persists per analysis.
type Snapshot struct {
	FinalScore   int
	Role         string
	MatchedCount int
	MissingCount int
}
