// Package skills holds the skill vocabulary registries and the lexical
// token extractor.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is the immutable vocabulary and alias table. It is loaded once at
// process start and shared read-only across all concurrent analyses.
type Registry struct {
	vocabulary []string
	aliases    map[string]string

	vocabPatterns map[string]*regexp.Regexp
	aliasPatterns map[string]*regexp.Regexp
}

// registryFile is the YAML shape of an external vocabulary file.
type registryFile struct {
	Vocabulary []string          `yaml:"vocabulary"`
	Aliases    map[string]string `yaml:"aliases"`
}

// NewRegistry builds a registry from the given vocabulary and alias table.
// Match patterns are compiled here so extraction never compiles per call.
func NewRegistry(vocabulary []string, aliases map[string]string) (*Registry, error) {
	r := &Registry{
		vocabulary:    make([]string, 0, len(vocabulary)),
		aliases:       make(map[string]string, len(aliases)),
		vocabPatterns: make(map[string]*regexp.Regexp, len(vocabulary)),
		aliasPatterns: make(map[string]*regexp.Regexp, len(aliases)),
	}

	seen := make(map[string]struct{}, len(vocabulary))
	for _, entry := range vocabulary {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}

		p, err := boundaryPattern(entry)
		if err != nil {
			return nil, fmt.Errorf("vocabulary entry %q: %w", entry, err)
		}
		r.vocabulary = append(r.vocabulary, entry)
		r.vocabPatterns[entry] = p
	}
	sort.Strings(r.vocabulary)

	for alias, canonical := range aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if alias == "" || canonical == "" {
			continue
		}

		p, err := boundaryPattern(alias)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", alias, err)
		}
		r.aliases[alias] = canonical
		r.aliasPatterns[alias] = p
	}

	return r, nil
}

// LoadRegistry reads a vocabulary YAML file. An empty path returns the
// built-in default registry.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}

	return NewRegistry(f.Vocabulary, f.Aliases)
}

// DefaultRegistry builds the built-in vocabulary and alias table.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(defaultVocabulary, defaultAliases)
}

// Vocabulary returns the canonical vocabulary entries in sorted order.
func (r *Registry) Vocabulary() []string {
	out := make([]string, len(r.vocabulary))
	copy(out, r.vocabulary)
	return out
}

// Known reports whether the token is in the vocabulary or is the canonical
// form of an alias.
func (r *Registry) Known(token string) bool {
	if _, ok := r.vocabPatterns[token]; ok {
		return true
	}
	for _, canonical := range r.aliases {
		if canonical == token {
			return true
		}
	}
	return false
}

// boundaryPattern compiles a word-boundary-delimited literal match. Compound
// or inflected forms not in the vocabulary are missed by design; this is the
// accepted precision/recall trade-off of the lexical method.
func boundaryPattern(literal string) (*regexp.Regexp, error) {
	return regexp.Compile(`\b` + regexp.QuoteMeta(literal) + `\b`)
}

var defaultVocabulary = []string{
	"python", "java", "c", "c++", "go", "javascript", "typescript",
	"html", "css", "react", "angular", "vue", "node", "bootstrap", "tailwind",
	"django", "fastapi", "flask", "spring",
	"mysql", "postgresql", "mongodb", "sql", "nosql", "redis",
	"docker", "kubernetes", "terraform", "aws", "azure", "gcp",
	"git", "linux", "kafka", "graphql", "grpc",
	"pandas", "numpy", "excel", "powerbi", "tableau",
	"machine learning", "deep learning", "artificial intelligence",
	"generative ai", "tensorflow", "pytorch", "scikit-learn", "nlp",
	"selenium", "cypress", "playwright", "junit", "postman", "katalon",
}

var defaultAliases = map[string]string{
	"gen ai":             "generative ai",
	"ml":                 "machine learning",
	"ai":                 "artificial intelligence",
	"selenium webdriver": "selenium",
	"no sql":             "nosql",
	"sql scripts":        "sql",
	"golang":             "go",
	"js":                 "javascript",
	"ts":                 "typescript",
	"k8s":                "kubernetes",
	"postgres":           "postgresql",
}
