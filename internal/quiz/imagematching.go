package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/pmquiz/internal/bank"
)

// ImageMatchingState is the serializable state of an image-matching widget.
type ImageMatchingState struct {
	Instance string            `json:"instance"`
	Order    []string          `json:"order"`
	Answers  map[string]string `json:"answers"`
	Revealed bool              `json:"revealed"`
}

// ImageMatching evaluates an image-labeling question. Feedback stays hidden
// until every figure has a label and CheckAnswers is called.
type ImageMatching struct {
	question *bank.ImageMatching
	State    ImageMatchingState
}

// NewImageMatching mounts q with its shared options shuffled by rng.
func NewImageMatching(q *bank.ImageMatching, rng *rand.Rand) *ImageMatching {
	return &ImageMatching{
		question: q.Clone(),
		State: ImageMatchingState{
			Instance: newInstanceID(),
			Order:    Shuffle(bank.OptionKeys(q.Options), rng),
			Answers:  map[string]string{},
		},
	}
}

func (m *ImageMatching) Kind() bank.Kind  { return bank.KindImageMatching }
func (m *ImageMatching) Instance() string { return m.State.Instance }

// Question returns a copy of the question being evaluated.
func (m *ImageMatching) Question() *bank.ImageMatching {
	return m.question.Clone()
}

// Options returns the shared options in display order.
func (m *ImageMatching) Options() []bank.Option {
	return shuffledOptions(m.State.Order, m.question.Options)
}

// Select labels image with key. Unknown images and keys are ignored.
func (m *ImageMatching) Select(image, key string) {
	if _, ok := m.figure(image); !ok || !hasKey(m.question.Options, key) {
		return
	}
	m.State.Answers[image] = key
}

// Chosen returns the key picked for image, if any.
func (m *ImageMatching) Chosen(image string) (string, bool) {
	k, ok := m.State.Answers[image]
	return k, ok
}

// Answered counts labeled images.
func (m *ImageMatching) Answered() int {
	n := 0
	for _, img := range m.question.Images {
		if m.State.Answers[img.ID] != "" {
			n++
		}
	}
	return n
}

// AllAnswered reports whether every image has a label.
func (m *ImageMatching) AllAnswered() bool {
	return m.Answered() == len(m.question.Images)
}

// CheckAnswers opens the reveal gate. It does nothing and returns false
// while some image is unlabeled.
func (m *ImageMatching) CheckAnswers() bool {
	if !m.AllAnswered() {
		return false
	}
	m.State.Revealed = true
	return true
}

// Revealed reports whether feedback is visible.
func (m *ImageMatching) Revealed() bool {
	return m.State.Revealed
}

// IsCorrect reports whether image carries its expected label.
func (m *ImageMatching) IsCorrect(image string) bool {
	img, ok := m.figure(image)
	if !ok {
		return false
	}
	return m.State.Answers[image] == img.CorrectKey
}

// Feedback is Unanswered until revealed or while image has no label.
func (m *ImageMatching) Feedback(image string) Verdict {
	if !m.State.Revealed || m.State.Answers[image] == "" {
		return Unanswered
	}
	return verdictOf(m.IsCorrect(image))
}

// AllCorrect reports whether every image carries its expected label.
func (m *ImageMatching) AllCorrect() bool {
	for _, img := range m.question.Images {
		if m.State.Answers[img.ID] != img.CorrectKey {
			return false
		}
	}
	return true
}

// Summary is the question-level verdict, shown once revealed.
func (m *ImageMatching) Summary() Verdict {
	if !m.State.Revealed || !m.AllAnswered() {
		return Unanswered
	}
	return verdictOf(m.AllCorrect())
}

// CorrectText returns the display text of the expected label for image.
func (m *ImageMatching) CorrectText(image string) string {
	img, _ := m.figure(image)
	return bank.OptionText(m.question.Options, img.CorrectKey)
}

// Reset clears labels and closes the reveal gate.
func (m *ImageMatching) Reset() {
	clear(m.State.Answers)
	m.State.Revealed = false
}

func (m *ImageMatching) Pristine() bool {
	return len(m.State.Answers) == 0 && !m.State.Revealed
}

func (m *ImageMatching) figure(id string) (bank.Figure, bool) {
	for _, img := range m.question.Images {
		if img.ID == id {
			return img, true
		}
	}
	return bank.Figure{}, false
}
