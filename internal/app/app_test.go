package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmquiz/internal/assets"
	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/quiz"
	"github.com/abhisek/pmquiz/internal/router"
	"github.com/abhisek/pmquiz/internal/screens/question"
)

func testModel(skipWelcome bool) AppModel {
	return newAppModel(Options{
		Bank:        bank.Default(),
		Env:         question.Env{Assets: assets.New("/"), Rand: quiz.NewRand(3)},
		SkipWelcome: skipWelcome,
	})
}

// drive feeds msg to the model and runs any command chain that yields
// router messages, the way the tea runtime would.
func drive(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
			next, cmd = m.Update(out)
			m = next.(AppModel)
		default:
			return m
		}
	}
	return m
}

func TestWelcomeHandsOverToQuestionList(t *testing.T) {
	m := testModel(false)
	if m.router.Active().Title() != "" {
		t.Fatalf("expected welcome splash first, got %q", m.router.Active().Title())
	}

	m = drive(m, tea.KeyPressMsg{Code: ' ', Text: " "})
	if got := m.router.Active().Title(); got != "Página de Estudio" {
		t.Errorf("expected question list after keypress, got %q", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("splash should be replaced, depth = %d", m.router.Depth())
	}
}

func TestOpenAndLeaveQuestion(t *testing.T) {
	m := testModel(true)

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.router.Active().Title(); got != "1) Opción múltiple" {
		t.Fatalf("enter should open question 1, got %q", got)
	}
	if m.router.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", m.router.Depth())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("esc should pop the question, depth = %d", m.router.Depth())
	}
}

func TestViewShowsHeaderAndHints(t *testing.T) {
	m := testModel(true)
	m = drive(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	content := m.render()
	for _, want := range []string{"16 preguntas", "Filtrar"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := testModel(true)
	m = drive(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "demasiado pequeña") {
		t.Error("expected the minimum size message")
	}
}
