package bank

import (
	"maps"
	"slices"
)

// Kind tags the variant of a question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple"
	KindMatching       Kind = "matching"
	KindImageMatching  Kind = "image-matching"
)

// AllKinds returns every question kind in display order.
func AllKinds() []Kind {
	return []Kind{KindMultipleChoice, KindMatching, KindImageMatching}
}

// KindDisplayName returns a human-readable name for a kind.
func KindDisplayName(k Kind) string {
	switch k {
	case KindMultipleChoice:
		return "Opción múltiple"
	case KindMatching:
		return "Coincidencia"
	case KindImageMatching:
		return "Observar las figuras"
	default:
		return string(k)
	}
}

// Option is a selectable answer identified by a key unique within its question.
type Option struct {
	Key  string `json:"key" yaml:"key"`
	Text string `json:"text" yaml:"text"`
}

// Row is a left-hand entry of a matching question.
type Row struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Figure is one image to be labeled in an image-matching question.
type Figure struct {
	ID         string `json:"id" yaml:"id"`
	Src        string `json:"src" yaml:"src"`
	CorrectKey string `json:"correct" yaml:"correct"`
}

// MultipleChoice holds the fields of a multiple-choice question.
// Statements is optional sub-content listed under the prompt.
type MultipleChoice struct {
	Prompt     string
	Statements []string
	Image      string
	Options    []Option
	Correct    []string
}

// Matching holds the fields of a matching question. Several rows may share
// the same right-hand key in Solution.
type Matching struct {
	Prompt   string
	Image    string
	Left     []Row
	Right    []Option
	Solution map[string]string
}

// ImageMatching holds the fields of an image-labeling question. Options are
// shared by every figure.
type ImageMatching struct {
	Prompt  string
	Images  []Figure
	Options []Option
}

// Question is a tagged union over the three variants. Exactly one of the
// variant pointers is set, matching Kind.
type Question struct {
	ID    int
	Kind  Kind
	Title string

	MultipleChoice *MultipleChoice
	Matching       *Matching
	ImageMatching  *ImageMatching
}

// Clone returns a deep copy of q, so callers cannot alter the bank.
func (q Question) Clone() Question {
	q.MultipleChoice = q.MultipleChoice.Clone()
	q.Matching = q.Matching.Clone()
	q.ImageMatching = q.ImageMatching.Clone()
	return q
}

func (mc *MultipleChoice) Clone() *MultipleChoice {
	if mc == nil {
		return nil
	}
	c := *mc
	c.Statements = slices.Clone(mc.Statements)
	c.Options = slices.Clone(mc.Options)
	c.Correct = slices.Clone(mc.Correct)
	return &c
}

func (m *Matching) Clone() *Matching {
	if m == nil {
		return nil
	}
	c := *m
	c.Left = slices.Clone(m.Left)
	c.Right = slices.Clone(m.Right)
	c.Solution = maps.Clone(m.Solution)
	return &c
}

func (im *ImageMatching) Clone() *ImageMatching {
	if im == nil {
		return nil
	}
	c := *im
	c.Images = slices.Clone(im.Images)
	c.Options = slices.Clone(im.Options)
	return &c
}

// Prompt returns the question prompt regardless of variant.
func (q Question) Prompt() string {
	switch q.Kind {
	case KindMultipleChoice:
		if q.MultipleChoice != nil {
			return q.MultipleChoice.Prompt
		}
	case KindMatching:
		if q.Matching != nil {
			return q.Matching.Prompt
		}
	case KindImageMatching:
		if q.ImageMatching != nil {
			return q.ImageMatching.Prompt
		}
	}
	return ""
}

// OptionText returns the text for key, or "" when the key does not resolve.
func OptionText(opts []Option, key string) string {
	for _, o := range opts {
		if o.Key == key {
			return o.Text
		}
	}
	return ""
}

// OptionKeys returns the keys of opts in order.
func OptionKeys(opts []Option) []string {
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key
	}
	return keys
}
