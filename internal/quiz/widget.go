package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/pmquiz/internal/bank"
)

// Widget is the transient answer state of one mounted question.
type Widget interface {
	// Kind reports which variant the widget evaluates.
	Kind() bank.Kind

	// Instance identifies this mount. A remount gets a new id.
	Instance() string

	// Reset clears selections and feedback, keeping the shuffle order.
	Reset()

	// Pristine reports whether the widget is observably in its mount state.
	Pristine() bool
}

var (
	_ Widget = (*MultipleChoice)(nil)
	_ Widget = (*Matching)(nil)
	_ Widget = (*ImageMatching)(nil)
)

// Mount creates fresh widget state for q, shuffling its options with rng.
func Mount(q bank.Question, rng *rand.Rand) (Widget, error) {
	switch q.Kind {
	case bank.KindMultipleChoice:
		if q.MultipleChoice != nil {
			return NewMultipleChoice(q.MultipleChoice, rng), nil
		}
	case bank.KindMatching:
		if q.Matching != nil {
			return NewMatching(q.Matching, rng), nil
		}
	case bank.KindImageMatching:
		if q.ImageMatching != nil {
			return NewImageMatching(q.ImageMatching, rng), nil
		}
	default:
		return nil, fmt.Errorf("mount question %d: unknown kind %q", q.ID, q.Kind)
	}
	return nil, fmt.Errorf("mount question %d: %s fields missing", q.ID, q.Kind)
}

func newInstanceID() string {
	return uuid.New().String()
}

// shuffledOptions maps a shuffled key order back to options. Keys that no
// longer resolve keep an empty text.
func shuffledOptions(order []string, opts []bank.Option) []bank.Option {
	out := make([]bank.Option, len(order))
	for i, k := range order {
		out[i] = bank.Option{Key: k, Text: bank.OptionText(opts, k)}
	}
	return out
}

func hasKey(opts []bank.Option, key string) bool {
	for _, o := range opts {
		if o.Key == key {
			return true
		}
	}
	return false
}
