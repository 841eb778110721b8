package bank

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// questionDoc is the flat on-disk form of a question. Fields that do not
// belong to the declared kind are rejected during conversion.
type questionDoc struct {
	ID         int               `yaml:"id"`
	Kind       Kind              `yaml:"kind"`
	Title      string            `yaml:"title"`
	Prompt     string            `yaml:"prompt"`
	Statements []string          `yaml:"statements"`
	Image      string            `yaml:"image"`
	Options    []Option          `yaml:"options"`
	Correct    []string          `yaml:"correct"`
	Left       []Row             `yaml:"left"`
	Right      []Option          `yaml:"right"`
	Solution   map[string]string `yaml:"solution"`
	Images     []Figure          `yaml:"images"`
}

// Parse decodes, schema-checks and validates a YAML question bank.
// A *ValidationError is returned when the document is well formed but
// contains data-integrity defects.
func Parse(data []byte) ([]Question, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := checkSchema(generic); err != nil {
		return nil, fmt.Errorf("question bank: %w", err)
	}

	var docs []questionDoc
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&docs); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse question bank: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	var c issueCollector
	qs := make([]Question, 0, len(docs))
	for _, d := range docs {
		qs = append(qs, d.toQuestion(&c))
	}
	validateQuestions(qs, &c)
	if err := c.result(); err != nil {
		return nil, err
	}
	return qs, nil
}

// LoadFile reads and parses a question bank from path.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data)
}

func (d questionDoc) toQuestion(c *issueCollector) Question {
	q := Question{ID: d.ID, Kind: d.Kind, Title: d.Title}

	switch d.Kind {
	case KindMultipleChoice:
		d.rejectFields(c, "left", "right", "solution", "images")
		q.MultipleChoice = &MultipleChoice{
			Prompt:     d.Prompt,
			Statements: d.Statements,
			Image:      d.Image,
			Options:    d.Options,
			Correct:    d.Correct,
		}
	case KindMatching:
		d.rejectFields(c, "statements", "options", "correct", "images")
		q.Matching = &Matching{
			Prompt:   d.Prompt,
			Image:    d.Image,
			Left:     d.Left,
			Right:    d.Right,
			Solution: d.Solution,
		}
	case KindImageMatching:
		d.rejectFields(c, "statements", "image", "correct", "left", "right", "solution")
		q.ImageMatching = &ImageMatching{
			Prompt:  d.Prompt,
			Images:  d.Images,
			Options: d.Options,
		}
	}
	return q
}

// rejectFields flags any of the named fields that are set on d.
func (d questionDoc) rejectFields(c *issueCollector, fields ...string) {
	for _, f := range fields {
		if d.has(f) {
			c.add(d.ID, f, "not allowed for kind %q", d.Kind)
		}
	}
}

func (d questionDoc) has(field string) bool {
	switch field {
	case "statements":
		return len(d.Statements) > 0
	case "image":
		return d.Image != ""
	case "options":
		return len(d.Options) > 0
	case "correct":
		return len(d.Correct) > 0
	case "left":
		return len(d.Left) > 0
	case "right":
		return len(d.Right) > 0
	case "solution":
		return len(d.Solution) > 0
	case "images":
		return len(d.Images) > 0
	}
	return false
}
