// Package resumatch is the embeddable SDK: the same scoring pipeline the API
// server runs, wired in-process against a Redis or in-memory ledger store.
package resumatch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/db"
	"github.com/resumatch/resumatch/internal/db/memory"
	dbRedis "github.com/resumatch/resumatch/internal/db/redis"
	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/metrics"
	"github.com/resumatch/resumatch/internal/repository/embcache"
	"github.com/resumatch/resumatch/internal/repository/ledger"
	"github.com/resumatch/resumatch/internal/skills"
	openaiEmb "github.com/resumatch/resumatch/internal/transport/openai"
	analyzeuc "github.com/resumatch/resumatch/internal/usecase/analyze"
	"github.com/resumatch/resumatch/internal/usecase/match"
	rankuc "github.com/resumatch/resumatch/internal/usecase/rank"
	recommenduc "github.com/resumatch/resumatch/internal/usecase/recommend"
	"github.com/resumatch/resumatch/internal/usecase/score"
)

const defaultReadinessTimeout = 10 * time.Second

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver   string // "memory" or "redis"
	addrs    []string
	password string

	openAIKey     string
	openAIBaseURL string
	embModel      string
	embDimensions int

	threshold       float64
	semanticTimeout time.Duration

	weights        domain.Weights
	vocabularyPath string
	catalogPath    string

	logger *zap.Logger
}

// WithRedis stores the score ledger in a Redis instance.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithOpenAI enables the semantic matcher using an OpenAI-compatible
// embedding API. Without it, matching is lexical-only.
func WithOpenAI(apiKey string) Option {
	return func(c *clientConfig) {
		c.openAIKey = apiKey
	}
}

// WithEmbeddingModel overrides the embedding model and vector size.
func WithEmbeddingModel(model string, dimensions int) Option {
	return func(c *clientConfig) {
		c.embModel = model
		c.embDimensions = dimensions
	}
}

// WithSimilarityThreshold overrides the cosine similarity cut-off for a
// semantic skill match.
func WithSimilarityThreshold(threshold float64) Option {
	return func(c *clientConfig) {
		c.threshold = threshold
	}
}

// WithWeights overrides the dimension weight table. The table must cover
// every dimension and sum to 1.0; New fails otherwise.
func WithWeights(skills, experience, projects, format, role float64) Option {
	return func(c *clientConfig) {
		c.weights = domain.Weights{
			domain.DimensionSkills:     skills,
			domain.DimensionExperience: experience,
			domain.DimensionProjects:   projects,
			domain.DimensionFormat:     format,
			domain.DimensionRole:       role,
		}
	}
}

// WithVocabularyFile loads the skill vocabulary from a YAML file instead of
// the built-in one.
func WithVocabularyFile(path string) Option {
	return func(c *clientConfig) {
		c.vocabularyPath = path
	}
}

// WithCatalogFile loads the recommendation catalog from a YAML file instead
// of the built-in one.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) {
		c.catalogPath = path
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// Client is the resumatch SDK entry point.
type Client struct {
	store     db.Store
	analyze   *analyzeuc.Service
	rank      *rankuc.Engine
	recommend *recommenduc.Engine
	ledger    *ledger.Repo
}

// New creates a Client. Without WithRedis the ledger lives in process memory.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:  "memory",
		weights: domain.DefaultWeights(),
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("resumatch: database not ready: %w", err)
	}

	client, err := wireClient(store, cfg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return client, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("resumatch: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("resumatch: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig) (*Client, error) {
	registry, err := skills.LoadRegistry(cfg.vocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("resumatch: load vocabulary: %w", err)
	}
	catalog, err := recommenduc.LoadCatalog(cfg.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("resumatch: load catalog: %w", err)
	}
	recommendEng, err := recommenduc.NewEngine(catalog)
	if err != nil {
		return nil, fmt.Errorf("resumatch: %w", err)
	}
	aggregator, err := score.NewAggregator(cfg.weights)
	if err != nil {
		return nil, fmt.Errorf("resumatch: %w", err)
	}

	var semantic *match.SemanticMatcher
	if cfg.openAIKey != "" {
		base := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.openAIKey,
			BaseURL:    cfg.openAIBaseURL,
			Model:      cfg.embModel,
			Dimensions: cfg.embDimensions,
			Provider:   "openai",
			Logger:     cfg.logger,
		})
		cached := embcache.New(base, store, metrics.EmbeddingCacheTotal, cfg.logger)
		semantic = match.NewSemanticMatcher(cached, cfg.threshold)
	}
	matcher := match.New(semantic, cfg.semanticTimeout, cfg.logger)

	ledgerRepo := ledger.New(store)
	experience := score.NewExperienceScorer()
	roles := score.DefaultRoleTable()

	return &Client{
		store:     store,
		analyze:   analyzeuc.New(registry, matcher, experience, roles, aggregator, ledgerRepo, cfg.logger),
		rank:      rankuc.New(registry, experience, roles, aggregator, cfg.logger),
		recommend: recommendEng,
		ledger:    ledgerRepo,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks ledger store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Analyze scores one resume against one job description and appends the
// result to the resume's score history. An empty resumeID gets a generated
// identity, returned in the report.
func (c *Client) Analyze(ctx context.Context, resumeID, resumeText, jdText string) (Report, error) {
	report, err := c.analyze.Analyze(ctx, analyzeuc.Request{
		ResumeID:   resumeID,
		ResumeText: resumeText,
		JDText:     jdText,
	})
	if err != nil {
		return Report{}, fmt.Errorf("analyze: %w", err)
	}
	return reportFromDomain(report), nil
}

// History returns a resume's score history, oldest first.
func (c *Client) History(ctx context.Context, resumeID string) ([]VersionRecord, error) {
	records, err := c.ledger.History(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	out := make([]VersionRecord, len(records))
	for i, r := range records {
		out[i] = versionFromDomain(r)
	}
	return out, nil
}

// RankCandidates scores many resumes against one job description, sorted by
// final score descending.
func (c *Client) RankCandidates(resumes []NamedDocument, jdText string) (RankReport, error) {
	report, err := c.rank.RankResumes(namedTextsFromPublic(resumes), jdText)
	if err != nil {
		return RankReport{}, fmt.Errorf("rank: %w", err)
	}
	return rankReportFromDomain(report), nil
}

// CompareOpenings scores one resume against many job descriptions, best fit
// first.
func (c *Client) CompareOpenings(resumeText string, jds []NamedDocument) (CompareReport, error) {
	report, err := c.rank.CompareJDs(resumeText, namedTextsFromPublic(jds))
	if err != nil {
		return CompareReport{}, fmt.Errorf("compare: %w", err)
	}
	return compareReportFromDomain(report), nil
}

// Recommendations returns one improvement template per missing skill.
func (c *Client) Recommendations(missing []string) map[string]Recommendation {
	out := make(map[string]Recommendation, len(missing))
	for skill, rec := range c.recommend.ForMissing(missing) {
		out[skill] = recommendationFromDomain(rec)
	}
	return out
}
