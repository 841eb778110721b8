package quiz

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/pmquiz/internal/bank"
)

// MultipleChoiceState is the serializable state of a multiple-choice widget.
type MultipleChoiceState struct {
	Instance string   `json:"instance"`
	Order    []string `json:"order"`
	Selected []string `json:"selected"`
	Checked  bool     `json:"checked"`
}

// MultipleChoice evaluates a multiple-choice question. Feedback is gated
// behind Check; after that the verdict follows the current selection.
type MultipleChoice struct {
	question *bank.MultipleChoice
	State    MultipleChoiceState
}

// NewMultipleChoice mounts q with its options shuffled by rng.
func NewMultipleChoice(q *bank.MultipleChoice, rng *rand.Rand) *MultipleChoice {
	return &MultipleChoice{
		question: q.Clone(),
		State: MultipleChoiceState{
			Instance: newInstanceID(),
			Order:    Shuffle(bank.OptionKeys(q.Options), rng),
		},
	}
}

func (m *MultipleChoice) Kind() bank.Kind  { return bank.KindMultipleChoice }
func (m *MultipleChoice) Instance() string { return m.State.Instance }

// Question returns a copy of the question being evaluated.
func (m *MultipleChoice) Question() *bank.MultipleChoice {
	return m.question.Clone()
}

// Options returns the options in display order.
func (m *MultipleChoice) Options() []bank.Option {
	return shuffledOptions(m.State.Order, m.question.Options)
}

// Toggle adds key to the selection, or removes it if already selected.
// Keys that are not options of the question are ignored.
func (m *MultipleChoice) Toggle(key string) {
	if !hasKey(m.question.Options, key) {
		return
	}
	if i := slices.Index(m.State.Selected, key); i >= 0 {
		m.State.Selected = slices.Delete(m.State.Selected, i, i+1)
		if len(m.State.Selected) == 0 {
			m.State.Selected = nil
		}
		return
	}
	m.State.Selected = append(m.State.Selected, key)
}

// IsSelected reports whether key is currently selected.
func (m *MultipleChoice) IsSelected(key string) bool {
	return slices.Contains(m.State.Selected, key)
}

// Check reveals feedback for the current selection.
func (m *MultipleChoice) Check() {
	m.State.Checked = true
}

// Verdict is Unanswered until Check is called.
func (m *MultipleChoice) Verdict() Verdict {
	if !m.State.Checked {
		return Unanswered
	}
	return verdictOf(CheckAnswer(m.State.Selected, m.question.Correct))
}

// CorrectText joins the text of the correct options in bank order.
func (m *MultipleChoice) CorrectText() string {
	texts := make([]string, len(m.question.Correct))
	for i, k := range m.question.Correct {
		texts[i] = bank.OptionText(m.question.Options, k)
	}
	return strings.Join(texts, ", ")
}

// Reset clears the selection and the checked flag.
func (m *MultipleChoice) Reset() {
	m.State.Selected = nil
	m.State.Checked = false
}

func (m *MultipleChoice) Pristine() bool {
	return len(m.State.Selected) == 0 && !m.State.Checked
}

// CheckAnswer reports whether selection and correct hold the same keys,
// ignoring order. There is no partial credit.
func CheckAnswer(selection, correct []string) bool {
	sel := toSet(selection)
	want := toSet(correct)
	if len(sel) != len(want) {
		return false
	}
	for k := range sel {
		if !want[k] {
			return false
		}
	}
	return true
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
