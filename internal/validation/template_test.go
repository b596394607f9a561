package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/beadkeep/beads/internal/types"
)

func TestValidateTemplate_PassesWhenAllSectionsPresent(t *testing.T) {
	desc := "## Steps to Reproduce\n1. Do the thing\n\n## Acceptance Criteria\nIt no longer breaks."
	if err := ValidateTemplate(types.TypeBug, desc); err != nil {
		t.Errorf("ValidateTemplate() = %v, want nil", err)
	}
}

func TestValidateTemplate_ReportsMissingSections(t *testing.T) {
	desc := "## Steps to Reproduce\n1. Do the thing"
	err := ValidateTemplate(types.TypeBug, desc)
	if err == nil {
		t.Fatal("ValidateTemplate() = nil, want an error for the missing Acceptance Criteria section")
	}
	var tmplErr *TemplateError
	if !errors.As(err, &tmplErr) {
		t.Fatalf("ValidateTemplate() error type = %T, want *TemplateError", err)
	}
	if len(tmplErr.Missing) != 1 || tmplErr.Missing[0].Heading != "## Acceptance Criteria" {
		t.Errorf("Missing = %+v, want just Acceptance Criteria", tmplErr.Missing)
	}
	if !strings.Contains(err.Error(), "Acceptance Criteria") {
		t.Errorf("Error() = %q, want it to name the missing section", err.Error())
	}
}

func TestValidateTemplate_CaseInsensitiveAndSubstringMatch(t *testing.T) {
	desc := "before text\nSTEPS TO REPRODUCE: click here\nafter, also ACCEPTANCE CRITERIA: done"
	if err := ValidateTemplate(types.TypeBug, desc); err != nil {
		t.Errorf("ValidateTemplate() = %v, want nil (case-insensitive substring match)", err)
	}
}

func TestValidateTemplate_NoRequirementsForUnconstrainedType(t *testing.T) {
	if err := ValidateTemplate(types.TypeChore, "anything at all"); err != nil {
		t.Errorf("ValidateTemplate(chore) = %v, want nil", err)
	}
}

func TestLintIssue_NilIssueIsANoOp(t *testing.T) {
	if err := LintIssue(nil); err != nil {
		t.Errorf("LintIssue(nil) = %v, want nil", err)
	}
}

func TestLintIssue_DelegatesToValidateTemplate(t *testing.T) {
	issue := &types.Issue{IssueType: types.TypeBug, Description: "no sections here"}
	if err := LintIssue(issue); err == nil {
		t.Error("LintIssue() = nil, want an error for a bug missing required sections")
	}
}
