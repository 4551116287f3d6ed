package cli

import (
	"fmt"
	"strings"

	"passguard/internal/strength"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleBold  = lipgloss.NewStyle().Bold(true)
	styleFaded = lipgloss.NewStyle().Faint(true)

	ratingStyles = map[strength.Rating]lipgloss.Style{
		strength.RatingWeak:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(AnsiRed)),
		strength.RatingModerate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(AnsiYellow)),
		strength.RatingStrong:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(AnsiGreen)),
	}
)

// RenderAssessment formats an assessment for terminal display; the
// password itself is never part of the output
func RenderAssessment(assessment strength.Assessment) string {
	var output strings.Builder

	ratingStyle, ok := ratingStyles[assessment.Rating]
	if !ok {
		ratingStyle = styleBold
	}
	fmt.Fprintf(&output, "Rating: %s\n", ratingStyle.Render(strings.ToUpper(string(assessment.Rating))))
	fmt.Fprintf(&output, "Score:  %v/100\n", assessment.Score)
	fmt.Fprintf(&output, "%s\n", styleFaded.Render(fmt.Sprintf("Entropy estimate: ~%.0f bits", assessment.EntropyBits)))

	if len(assessment.Feedback) > 0 {
		output.WriteString("\nIssues found:\n")
		output.WriteString(NewTable(NewTableOpts{
			Headers: []string{"#", "issue"},
			Rows: func(t *Table) error {
				for i, feedback := range assessment.Feedback {
					if err := t.NewRow(i+1, feedback); err != nil {
						return err
					}
				}
				return nil
			},
		}).Render().GetString())
	} else {
		output.WriteString("\nIssues found: none ✅\n")
	}

	if len(assessment.Tips) > 0 {
		output.WriteString("\nTips to improve:\n")
		for i, tip := range assessment.Tips {
			fmt.Fprintf(&output, "  %v. %s\n", i+1, tip)
		}
	}

	output.WriteString("\n" + styleFaded.Render("Note: this tool uses heuristics and cannot guarantee real-world security") + "\n")
	return output.String()
}
