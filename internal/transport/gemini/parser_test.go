package gemini

import (
	"errors"
	"testing"

	"github.com/resumatch/resumatch/internal/domain"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.want {
				t.Errorf("stripFences = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFeedbackReport(t *testing.T) {
	raw := "```json\n" + `{
  "Summary": {"status": "strong", "comment": "Tailored opener."},
  "skills": {"status": "weak", "issues": ["missing aws"], "suggestions": ["add cloud experience"]}
}` + "\n```"

	report, err := parseFeedbackReport(raw)
	if err != nil {
		t.Fatalf("parseFeedbackReport: %v", err)
	}

	if report["summary"].Status != domain.SectionStrong {
		t.Errorf("summary status = %q", report["summary"].Status)
	}
	if report["summary"].Comment != "Tailored opener." {
		t.Errorf("summary comment = %q", report["summary"].Comment)
	}
	// Comment synthesized from issues + suggestions when absent.
	if report["skills"].Comment != "missing aws add cloud experience" {
		t.Errorf("skills comment = %q", report["skills"].Comment)
	}
}

func TestParseFeedbackReport_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose instead of json", "I think the resume looks fine overall."},
		{"empty object", "{}"},
		{"unknown status", `{"summary": {"status": "amazing"}}`},
		{"wrong shape", `["summary", "skills"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFeedbackReport(tt.raw)
			if !errors.Is(err, domain.ErrUnparseableResponse) {
				t.Errorf("error = %v, want ErrUnparseableResponse", err)
			}
		})
	}
}

func TestParseSkillCategories(t *testing.T) {
	raw := "```json\n{\"duckdb\": \"Data / AI Tool\", \"htmx\": \"Framework / Library\"}\n```"

	categories, err := parseSkillCategories(raw)
	if err != nil {
		t.Fatalf("parseSkillCategories: %v", err)
	}
	if categories["duckdb"] != "Data / AI Tool" {
		t.Errorf("duckdb = %q", categories["duckdb"])
	}
	if len(categories) != 2 {
		t.Errorf("categories = %v, want 2 entries", categories)
	}
}

func TestParseSkillCategories_Unparseable(t *testing.T) {
	for _, raw := range []string{"not json", "{}", `{"skill": 42}`} {
		if _, err := parseSkillCategories(raw); !errors.Is(err, domain.ErrUnparseableResponse) {
			t.Errorf("raw %q: error = %v, want ErrUnparseableResponse", raw, err)
		}
	}
}

func TestParseRewriteDraft(t *testing.T) {
	draft, err := parseRewriteDraft(`{"summary": "Engineer.", "experience": ["a"], "projects": ["b"]}`)
	if err != nil {
		t.Fatalf("parseRewriteDraft: %v", err)
	}
	if draft.Summary != "Engineer." || len(draft.Experience) != 1 || len(draft.Projects) != 1 {
		t.Errorf("draft = %+v", draft)
	}
}

func TestParseRewriteDraft_Unparseable(t *testing.T) {
	for _, raw := range []string{"not json", "{}", `{"summary": "  "}`} {
		if _, err := parseRewriteDraft(raw); !errors.Is(err, domain.ErrUnparseableResponse) {
			t.Errorf("parseRewriteDraft(%q) error = %v, want ErrUnparseableResponse", raw, err)
		}
	}
}
