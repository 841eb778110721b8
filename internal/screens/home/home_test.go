package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/router"
	"github.com/abhisek/pmquiz/internal/screen"
)

type stubScreen struct {
	q bank.Question
}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.q.Title }
func (s *stubScreen) Title() string                          { return s.q.Title }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestHome() (*HomeScreen, *[]int) {
	var opened []int
	h := New(bank.Default(), func(q bank.Question) screen.Screen {
		opened = append(opened, q.ID)
		return &stubScreen{q: q}
	})
	return h, &opened
}

func TestListsEveryQuestion(t *testing.T) {
	h, _ := newTestHome()
	if len(h.Visible()) != 16 {
		t.Fatalf("expected 16 questions, got %d", len(h.Visible()))
	}
	view := h.View(100, 40)
	if !strings.Contains(view, "1) Opción múltiple") {
		t.Error("first question should be listed")
	}
}

func TestEnterPushesFreshMount(t *testing.T) {
	h, opened := newTestHome()
	h.Update(specialKey(tea.KeyDown))

	for i := 0; i < 2; i++ {
		_, cmd := h.Update(specialKey(tea.KeyEnter))
		if cmd == nil {
			t.Fatal("enter should produce a command")
		}
		push, ok := cmd().(router.PushScreenMsg)
		if !ok {
			t.Fatalf("expected PushScreenMsg, got %T", cmd())
		}
		if push.Screen.Title() != "2) Opción múltiple" {
			t.Errorf("pushed %q, want question 2", push.Screen.Title())
		}
	}
	if len(*opened) != 2 {
		t.Errorf("each enter should mount the question again, opened %v", *opened)
	}
}

func TestFilterNarrowsList(t *testing.T) {
	h, opened := newTestHome()

	h.Update(keyPress('/'))
	for _, r := range "figuras" {
		h.Update(keyPress(r))
	}
	h.Update(specialKey(tea.KeyEnter))

	visible := h.Visible()
	if len(visible) != 1 || visible[0].ID != 6 {
		t.Fatalf("filter should leave question 6, got %d questions", len(visible))
	}
	if len(*opened) != 0 {
		t.Error("leaving the filter should not open a question")
	}

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter should open the filtered question")
	}
	if (*opened)[0] != 6 {
		t.Errorf("opened %v, want question 6", *opened)
	}

	h.Update(specialKey(tea.KeyEscape))
	if len(h.Visible()) != 16 {
		t.Errorf("esc should clear the filter, got %d questions", len(h.Visible()))
	}
}

func TestFilterByKindName(t *testing.T) {
	h, _ := newTestHome()
	h.Update(keyPress('/'))
	for _, r := range "coincidencia" {
		h.Update(keyPress(r))
	}
	if got := len(h.Visible()); got != 7 {
		t.Errorf("expected 7 matching questions, got %d", got)
	}
}

func TestKeyHintsFollowFilterFocus(t *testing.T) {
	h, _ := newTestHome()
	if h.KeyHints()[0].Key != "↑↓" {
		t.Error("list hints expected")
	}
	h.Update(keyPress('/'))
	if h.KeyHints()[0].Key != "Enter" {
		t.Error("filter hints expected while typing")
	}
}
