package cli

import (
	"strings"
	"testing"

	"passguard/internal/strength"
)

func TestRenderAssessmentListsIssues(t *testing.T) {
	assessment := strength.DefaultPolicy().Evaluate("qwerty123")
	rendered := RenderAssessment(assessment)

	if !strings.Contains(rendered, "WEAK") {
		t.Errorf("expected the rendered report to shout the rating, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "too short") {
		t.Errorf("expected the rendered report to list the length issue, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "qwerty123") {
		t.Errorf("expected the rendered report to not contain the password itself")
	}
}

func TestRenderAssessmentCleanResult(t *testing.T) {
	assessment := strength.DefaultPolicy().Evaluate("Plinth4 Corvid! Sandbar9 Unmoored")
	rendered := RenderAssessment(assessment)

	if !strings.Contains(rendered, "none") {
		t.Errorf("expected the rendered report to note the absence of issues, got:\n%s", rendered)
	}
}
