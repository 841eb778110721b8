package quiz

import (
	"maps"
	"math/rand/v2"

	"github.com/abhisek/pmquiz/internal/bank"
)

// MatchingState is the serializable state of a matching widget.
type MatchingState struct {
	Instance string            `json:"instance"`
	Order    []string          `json:"order"`
	Answers  map[string]string `json:"answers"`
}

// Matching evaluates a matching question. Feedback is live per row.
type Matching struct {
	question *bank.Matching
	State    MatchingState
}

// NewMatching mounts q with its right-hand pool shuffled by rng.
func NewMatching(q *bank.Matching, rng *rand.Rand) *Matching {
	return &Matching{
		question: q.Clone(),
		State: MatchingState{
			Instance: newInstanceID(),
			Order:    Shuffle(bank.OptionKeys(q.Right), rng),
			Answers:  map[string]string{},
		},
	}
}

func (m *Matching) Kind() bank.Kind  { return bank.KindMatching }
func (m *Matching) Instance() string { return m.State.Instance }

// Question returns a copy of the question being evaluated.
func (m *Matching) Question() *bank.Matching {
	return m.question.Clone()
}

// Choices returns the right-hand pool in display order.
func (m *Matching) Choices() []bank.Option {
	return shuffledOptions(m.State.Order, m.question.Right)
}

// Select records key as the choice for row. Unknown rows and keys are ignored.
func (m *Matching) Select(row, key string) {
	if _, ok := m.question.Solution[row]; !ok || !hasKey(m.question.Right, key) {
		return
	}
	m.State.Answers[row] = key
}

// Clear removes the choice for row.
func (m *Matching) Clear(row string) {
	delete(m.State.Answers, row)
}

// Chosen returns the key chosen for row, if any.
func (m *Matching) Chosen(row string) (string, bool) {
	k, ok := m.State.Answers[row]
	return k, ok
}

// EvaluateRow grades the current choice for row.
func (m *Matching) EvaluateRow(row string) Verdict {
	chosen, ok := m.State.Answers[row]
	if !ok {
		return Unanswered
	}
	return EvaluateRow(m.question.Solution, row, chosen)
}

// SolutionText returns the display text of the expected key for row.
func (m *Matching) SolutionText(row string) string {
	return bank.OptionText(m.question.Right, m.question.Solution[row])
}

// Answered counts rows with a choice.
func (m *Matching) Answered() int {
	return len(m.State.Answers)
}

// Reset clears every row.
func (m *Matching) Reset() {
	clear(m.State.Answers)
}

func (m *Matching) Pristine() bool {
	return len(m.State.Answers) == 0
}

// Snapshot returns a copy of the current row choices.
func (m *Matching) Snapshot() map[string]string {
	return maps.Clone(m.State.Answers)
}

// EvaluateRow grades chosen against solution[row]. An empty choice is
// Unanswered.
func EvaluateRow(solution map[string]string, row, chosen string) Verdict {
	if chosen == "" {
		return Unanswered
	}
	return verdictOf(solution[row] == chosen)
}
