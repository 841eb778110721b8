package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmquiz/internal/quiz"
	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// ContentWidth returns the inner width used for question cards.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 100)
}

// Card wraps content in a rounded-border card at the given width.
func Card(content string, width int) string {
	return theme.Card.Width(width).Render(content)
}

// Feedback renders a verdict message in a colored box. Unanswered renders
// nothing.
func Feedback(v quiz.Verdict, correctMsg, incorrectMsg string, width int) string {
	switch v {
	case quiz.Correct:
		return theme.CorrectBox.Width(width).Render("✅ " + correctMsg)
	case quiz.Incorrect:
		return theme.IncorrectBox.Width(width).Render("❌ " + incorrectMsg)
	}
	return ""
}

// InlineFeedback is the one-line form of Feedback used under rows.
func InlineFeedback(v quiz.Verdict, correctMsg, incorrectMsg string) string {
	switch v {
	case quiz.Correct:
		return theme.Correct.Render("✅ " + correctMsg)
	case quiz.Incorrect:
		return theme.Incorrect.Render("❌ " + incorrectMsg)
	}
	return ""
}

// Image renders a resolved image reference.
func Image(label, url string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("🖼  "+label+": ") + theme.Link.Render(url)
}
