// Package recommend produces per-skill improvement guidance for the skills a
// resume is missing, backed by a catalog of templates.
package recommend

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/resumatch/resumatch/internal/domain"
)

// defaultKey is the catalog entry used for skills without a specific
// template.
const defaultKey = "default"

// Catalog maps a lowercase skill to its recommendation template. The
// defaultKey entry is mandatory; it backs every skill the catalog does not
// name.
type Catalog map[string]domain.Recommendation

// Engine resolves recommendations for missing skills. The catalog is loaded
// once at startup and read-only afterwards.
type Engine struct {
	catalog Catalog
}

// NewEngine validates the catalog and creates an engine.
func NewEngine(catalog Catalog) (*Engine, error) {
	if _, ok := catalog[defaultKey]; !ok {
		return nil, fmt.Errorf("recommend: catalog has no %q template", defaultKey)
	}
	return &Engine{catalog: catalog}, nil
}

// LoadCatalog reads a YAML catalog from disk. An empty path yields the
// built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill catalog %s: %w", path, err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse skill catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ForMissing returns one recommendation per missing skill. Skills without a
// catalog entry get the default template.
func (e *Engine) ForMissing(missing []string) map[string]domain.Recommendation {
	out := make(map[string]domain.Recommendation, len(missing))
	for _, skill := range missing {
		out[skill] = e.template(skill)
	}
	return out
}

func (e *Engine) template(skill string) domain.Recommendation {
	if tpl, ok := e.catalog[strings.ToLower(skill)]; ok {
		return tpl
	}
	return e.catalog[defaultKey]
}

// DefaultCatalog returns the built-in templates.
func DefaultCatalog() Catalog {
	return Catalog{
		defaultKey: {
			LearningPath: []string{
				"complete an introductory course on the skill",
				"work through the official documentation",
				"apply it in a small end-to-end project",
			},
			ProjectIdeas: []string{
				"add the skill to an existing personal project",
				"build a focused demo showcasing the skill",
			},
			Certifications: []string{"vendor or community certification if available"},
			Confidence:     "medium",
		},
		"aws": {
			LearningPath: []string{
				"AWS Cloud Practitioner essentials",
				"deploy a small service on EC2 and S3",
				"automate provisioning with IAM roles and CloudFormation",
			},
			ProjectIdeas: []string{
				"host a resume-analysis API on AWS with managed storage",
				"build a serverless image-processing pipeline with Lambda",
			},
			Certifications: []string{"AWS Certified Cloud Practitioner", "AWS Solutions Architect Associate"},
			Confidence:     "high",
		},
		"docker": {
			LearningPath: []string{
				"containerize an existing application",
				"write multi-stage builds for small images",
				"compose a multi-service local environment",
			},
			ProjectIdeas: []string{
				"dockerize a web API with a database side container",
				"publish a reusable base image for your stack",
			},
			Certifications: []string{"Docker Certified Associate"},
			Confidence:     "high",
		},
		"kubernetes": {
			LearningPath: []string{
				"core concepts: pods, deployments, services",
				"package an app with Helm",
				"set up liveness and readiness probes",
			},
			ProjectIdeas: []string{
				"deploy a multi-service app to a local kind cluster",
				"add horizontal autoscaling to an existing deployment",
			},
			Certifications: []string{"CKAD", "CKA"},
			Confidence:     "high",
		},
		"sql": {
			LearningPath: []string{
				"practice joins, aggregates and window functions",
				"study indexing and query plans",
				"model a normalized schema for a real dataset",
			},
			ProjectIdeas: []string{
				"build a reporting layer over a public dataset",
				"optimize slow queries in an existing project",
			},
			Certifications: []string{"PostgreSQL Associate Certification"},
			Confidence:     "high",
		},
	}
}
