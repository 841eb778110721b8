package bank

import (
	_ "embed"
	"errors"
	"fmt"
)

// ErrUnknownQuestion is returned when a question id is not in the bank.
var ErrUnknownQuestion = errors.New("unknown question")

//go:embed questions.yaml
var embeddedBank []byte

// Bank is an immutable, ordered question bank with an id index.
type Bank struct {
	questions []Question
	byID      map[int]int
}

// def is the package-level bank built from the embedded document.
var def *Bank

func init() {
	qs, err := Parse(embeddedBank)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank is invalid: %v", err))
	}
	def = New(qs)
}

// New indexes an already validated list of questions.
func New(qs []Question) *Bank {
	b := &Bank{
		questions: make([]Question, len(qs)),
		byID:      make(map[int]int, len(qs)),
	}
	for i, q := range qs {
		b.questions[i] = q.Clone()
		b.byID[q.ID] = i
	}
	return b
}

// Open loads the bank at path, or returns the embedded bank when path is empty.
func Open(path string) (*Bank, error) {
	if path == "" {
		return def, nil
	}
	qs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(qs), nil
}

// Default returns the embedded course bank.
func Default() *Bank {
	return def
}

// All returns a deep copy of the questions in display order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.Clone()
	}
	return out
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Get returns the question with the given id.
func (b *Bank) Get(id int) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}
	return b.questions[i].Clone(), nil
}

// CountByKind returns how many questions of each kind the bank holds.
func (b *Bank) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, len(AllKinds()))
	for _, q := range b.questions {
		counts[q.Kind]++
	}
	return counts
}
