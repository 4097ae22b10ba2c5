package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/db/memory"
	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/repository/ledger"
	"github.com/resumatch/resumatch/internal/skills"
	analyzeuc "github.com/resumatch/resumatch/internal/usecase/analyze"
	feedbackuc "github.com/resumatch/resumatch/internal/usecase/feedback"
	healthuc "github.com/resumatch/resumatch/internal/usecase/health"
	"github.com/resumatch/resumatch/internal/usecase/match"
	rankuc "github.com/resumatch/resumatch/internal/usecase/rank"
	recommenduc "github.com/resumatch/resumatch/internal/usecase/recommend"
	"github.com/resumatch/resumatch/internal/usecase/score"
)

var errDown = errors.New("store down")

// stubPinger fakes ledger store availability.
type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error { return s.err }

// newTestHandler wires the full stack on an in-memory store with the lexical
// matcher only.
func newTestHandler(t *testing.T, db healthuc.DBPinger) http.Handler {
	t.Helper()

	registry, err := skills.DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	aggregator, err := score.NewAggregator(domain.DefaultWeights())
	if err != nil {
		t.Fatalf("aggregator: %v", err)
	}
	recommendEng, err := recommenduc.NewEngine(recommenduc.DefaultCatalog())
	if err != nil {
		t.Fatalf("recommend engine: %v", err)
	}

	experience := score.NewExperienceScorerAt(2026)
	roles := score.DefaultRoleTable()
	matcher := match.New(nil, 0, zap.NewNop())
	ledgerRepo := ledger.New(memory.NewStore())

	analyzeSvc := analyzeuc.New(registry, matcher, experience, roles, aggregator, ledgerRepo, zap.NewNop())
	rankEng := rankuc.New(registry, experience, roles, aggregator, zap.NewNop())
	feedbackSvc := feedbackuc.New(nil, zap.NewNop())
	healthSvc := healthuc.New(db, nil)

	server := NewServer(
		analyzeSvc, rankEng, recommendEng, feedbackSvc, healthSvc,
		ledgerRepo, registry, zap.NewNop(),
	)

	r := chirouter.NewRouter()
	server.Routes(r)
	return r
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func getPath(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", path, http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code ErrorCode) {
	t.Helper()

	if rr.Code != status {
		t.Fatalf("status: got %d, want %d (body %s)", rr.Code, status, rr.Body.String())
	}
	errResp := decodeBody[ErrorResponse](t, rr)
	if errResp.Code != code {
		t.Errorf("error code: got %s, want %s", errResp.Code, code)
	}
}
