package analyze

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/resumatch/resumatch/internal/domain"
	"github.com/resumatch/resumatch/internal/usecase/match"
)

const testResume = `Summary
Backend engineer focused on data-heavy services.
Work experience
Acme Corp, jan 2021 - present
Built APIs in python backed by sql databases.
Education
BSc computer science.
Skills
python, sql, docker
Projects
An ETL pipeline in python loading into a sql warehouse.`

// The optional section precedes the mandatory cue: the mandatory zone runs
// from its cue to the end of the text, so this order keeps docker and aws in
// the optional tier.
const testJD = `Backend developer role.
Good to have docker and aws.
Must have python and sql, with 3+ years of experience.`

func TestAnalyze_FullReport(t *testing.T) {
	ledger := &mockLedger{}
	svc := newTestService(t, nil, ledger)

	report, err := svc.Analyze(context.Background(), Request{
		ResumeID:   "resume-1",
		ResumeText: testResume,
		JDText:     testJD,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.ResumeID != "resume-1" {
		t.Errorf("ResumeID = %q, want resume-1", report.ResumeID)
	}
	assertStrings(t, "Matched", report.Matched, []string{"docker", "python", "sql"})
	assertStrings(t, "Missing", report.Missing, []string{"aws"})
	assertStrings(t, "MustHave", report.MustHave, []string{"python", "sql"})
	assertStrings(t, "GoodToHave", report.GoodToHave, []string{"aws", "docker"})

	if report.Role == "" {
		t.Error("Role must be detected for a non-empty requirement")
	}
	if report.Final.Value <= 0 || report.Final.Value > 100 {
		t.Errorf("Final.Value = %d, want within (0,100]", report.Final.Value)
	}
	for _, d := range domain.Dimensions {
		if _, ok := report.Final.Breakdown[d]; !ok {
			t.Errorf("Breakdown missing dimension %q", d)
		}
	}

	// One explanation line per requirement token, lexicographic.
	if len(report.Explanation) != 4 {
		t.Fatalf("Explanation = %v, want 4 lines", report.Explanation)
	}
	if !sort.StringsAreSorted(report.Explanation) {
		t.Errorf("Explanation not in lexicographic order: %v", report.Explanation)
	}
	if !strings.HasPrefix(report.Explanation[0], "aws: missing") {
		t.Errorf("Explanation[0] = %q, want aws missing line", report.Explanation[0])
	}

	if report.Version == nil || report.Version.Version != 1 {
		t.Fatalf("Version = %+v, want version 1", report.Version)
	}
	if len(ledger.appends) != 1 {
		t.Fatalf("ledger appends = %d, want 1", len(ledger.appends))
	}
	if ledger.appends[0].FinalScore != report.Final.Value {
		t.Errorf("ledger snapshot score = %d, report = %d", ledger.appends[0].FinalScore, report.Final.Value)
	}
}

func TestAnalyze_GeneratesIdentityWhenAbsent(t *testing.T) {
	ledger := &mockLedger{}
	svc := newTestService(t, nil, ledger)

	report, err := svc.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JDText:     testJD,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.ResumeID == "" {
		t.Fatal("ResumeID must be generated when absent")
	}
	if ledger.ids[0] != report.ResumeID {
		t.Errorf("ledger keyed by %q, report says %q", ledger.ids[0], report.ResumeID)
	}
}

func TestAnalyze_NoRecognizableResumeSkills(t *testing.T) {
	ledger := &mockLedger{}
	svc := newTestService(t, nil, ledger)

	report, err := svc.Analyze(context.Background(), Request{
		ResumeText: "I enjoy gardening and long walks.",
		JDText:     testJD,
	})
	if err != nil {
		t.Fatalf("degenerate content must not error: %v", err)
	}

	if report.Final.Value != 0 {
		t.Errorf("Final.Value = %d, want 0", report.Final.Value)
	}
	if len(report.Explanation) == 0 || !strings.Contains(report.Explanation[0], "no recognizable skills") {
		t.Errorf("Explanation = %v, want explanatory note", report.Explanation)
	}
	if len(report.Missing) == 0 {
		t.Error("requirement tokens must still be reported as missing")
	}
	// Degenerate runs are still history entries.
	if len(ledger.appends) != 1 {
		t.Errorf("ledger appends = %d, want 1", len(ledger.appends))
	}
}

func TestAnalyze_DegradedMatchIsNoted(t *testing.T) {
	matcher := &mockMatcher{outcome: match.Outcome{
		Result: domain.MatchResult{
			Matched: domain.NewTokenSet("python"),
			Missing: domain.NewTokenSet("aws"),
		},
		Degraded:          true,
		DegradationReason: "semantic matching unavailable: provider down",
	}}

	svc := newTestService(t, matcher, &mockLedger{})
	report, err := svc.Analyze(context.Background(), Request{
		ResumeText: "Skills: python",
		JDText:     "Needs python and aws.",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	last := report.Explanation[len(report.Explanation)-1]
	if !strings.Contains(last, "lexical-only") {
		t.Errorf("Explanation = %v, want trailing degradation note", report.Explanation)
	}
}

func TestAnalyze_LedgerFailureIsFatal(t *testing.T) {
	ledger := &mockLedger{err: errors.New("store down")}
	svc := newTestService(t, nil, ledger)

	_, err := svc.Analyze(context.Background(), Request{
		ResumeText: testResume,
		JDText:     testJD,
	})
	if err == nil {
		t.Fatal("ledger failure must surface as an error")
	}
}

func assertStrings(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func TestAnalyze_ProjectScoreUsesResumeSkillsOnly(t *testing.T) {
	svc := newTestService(t, nil, &mockLedger{})

	// "c" and "go" hide inside "scrapes" and "google"; the resume never lists
	// them, so the projects section is off-target for this requirement.
	report, err := svc.Analyze(context.Background(), Request{
		ResumeText: "Skills\npython\nProjects\nBuilt a crawler that scrapes google results.",
		JDText:     "Must have c and go.",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := report.Final.Breakdown[domain.DimensionProjects].Value; got != 20 {
		t.Errorf("projects dimension = %d, want flat 20 for off-target projects", got)
	}
}
