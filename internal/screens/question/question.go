// Package question holds the screens that present one mounted question.
package question

import (
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/assets"
	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/quiz"
	"github.com/abhisek/pmquiz/internal/screen"
	"github.com/abhisek/pmquiz/internal/screens/placeholder"
	"github.com/abhisek/pmquiz/internal/ui/components"
	"github.com/abhisek/pmquiz/internal/ui/layout"
	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// Env carries the collaborators every question screen needs.
type Env struct {
	Assets assets.Resolver
	Rand   *rand.Rand
	Log    *zap.Logger
}

func (e Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// New mounts q and returns the screen for its kind. Every call produces
// fresh widget state.
func New(q bank.Question, env Env) screen.Screen {
	w, err := quiz.Mount(q, env.Rand)
	if err != nil {
		env.logger().Error("mount question", zap.Int("question", q.ID), zap.Error(err))
		return placeholder.New(q.Title, "No se pudo mostrar esta pregunta.")
	}
	env.logger().Debug("question mounted",
		zap.Int("question", q.ID),
		zap.String("kind", string(q.Kind)),
		zap.String("instance", w.Instance()),
	)

	switch w := w.(type) {
	case *quiz.MultipleChoice:
		return newMultipleChoice(q, w, env)
	case *quiz.Matching:
		return newMatching(q, w, env)
	case *quiz.ImageMatching:
		return newImageMatching(q, w, env)
	}
	return placeholder.New(q.Title, "Tipo de pregunta no soportado.")
}

// Labels shown by the question screens.
const (
	checkLabel      = "Verificar"
	resetLabel      = "Reiniciar"
	correctLabel    = "Correcto"
	incorrectLabel  = "Incorrecto."
	pickPlaceholder = "Elige una opción…"
	typePlaceholder = "Selecciona el tipo..."
)

// base holds what all question screens share.
type base struct {
	question bank.Question
	env      Env
	reset    components.Button
}

func (b *base) Title() string {
	return b.question.Title
}

func (b *base) Init() tea.Cmd {
	return nil
}

// header renders the prompt, statements and optional image of the question.
func (b *base) header(prompt string, statements []string, image string, width int) string {
	var s strings.Builder
	if prompt != "" {
		s.WriteString(theme.Body.Bold(true).Width(width).Render(prompt) + "\n")
	}
	for _, st := range statements {
		s.WriteString(theme.Body.Width(width).Render("  • "+st) + "\n")
	}
	if image != "" {
		s.WriteString(components.Image("Imagen", b.env.Assets.Resolve(image)) + "\n")
	}
	return s.String()
}

// frame lays out the body inside a card, scrolled to keep focus visible.
func frame(body string, focusLine, width, height int) string {
	cw := components.ContentWidth(width)
	return components.Card(layout.Window(body, height-2, focusLine), cw)
}

// lineOf returns the zero-based line index at which the builder's next
// write will start.
func lineOf(s *strings.Builder) int {
	return strings.Count(s.String(), "\n")
}
