package bank

import (
	"fmt"
	"strings"
)

// Issue is a single data-integrity defect found in a question bank.
type Issue struct {
	Question int
	Field    string
	Message  string
}

func (i Issue) String() string {
	if i.Question == 0 {
		return fmt.Sprintf("%s: %s", i.Field, i.Message)
	}
	return fmt.Sprintf("question %d: %s: %s", i.Question, i.Field, i.Message)
}

// ValidationError lists every defect found while validating a bank.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("question bank validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(question int, field, format string, args ...any) {
	c.issues = append(c.issues, Issue{Question: question, Field: field, Message: fmt.Sprintf(format, args...)})
}

// result returns a *ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate runs the structural checks on qs and reports every problem found.
func Validate(qs []Question) error {
	var c issueCollector
	validateQuestions(qs, &c)
	return c.result()
}

func validateQuestions(qs []Question, c *issueCollector) {
	if len(qs) == 0 {
		c.add(0, "bank", "no questions defined")
		return
	}

	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if q.ID <= 0 {
			c.add(q.ID, "id", "must be a positive integer")
		} else if seen[q.ID] {
			c.add(q.ID, "id", "duplicate question id")
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Title) == "" {
			c.add(q.ID, "title", "must not be empty")
		}

		switch q.Kind {
		case KindMultipleChoice:
			if q.MultipleChoice == nil {
				c.add(q.ID, "kind", "multiple-choice fields missing")
				continue
			}
			validateMultipleChoice(q.ID, q.MultipleChoice, c)
		case KindMatching:
			if q.Matching == nil {
				c.add(q.ID, "kind", "matching fields missing")
				continue
			}
			validateMatching(q.ID, q.Matching, c)
		case KindImageMatching:
			if q.ImageMatching == nil {
				c.add(q.ID, "kind", "image-matching fields missing")
				continue
			}
			validateImageMatching(q.ID, q.ImageMatching, c)
		default:
			c.add(q.ID, "kind", "unknown kind %q", q.Kind)
		}
	}
}

func validateMultipleChoice(id int, mc *MultipleChoice, c *issueCollector) {
	keys := validateOptions(id, "options", mc.Options, c)

	if len(mc.Correct) == 0 {
		c.add(id, "correct", "must name at least one option")
	}
	picked := make(map[string]bool, len(mc.Correct))
	for _, k := range mc.Correct {
		if !keys[k] {
			c.add(id, "correct", "references nonexistent option %q", k)
		}
		if picked[k] {
			c.add(id, "correct", "lists option %q twice", k)
		}
		picked[k] = true
	}
}

func validateMatching(id int, m *Matching, c *issueCollector) {
	keys := validateOptions(id, "right", m.Right, c)

	if len(m.Left) == 0 {
		c.add(id, "left", "must contain at least one row")
	}
	rows := make(map[string]bool, len(m.Left))
	for _, r := range m.Left {
		if r.ID == "" {
			c.add(id, "left", "row with empty id")
			continue
		}
		if rows[r.ID] {
			c.add(id, "left", "duplicate row id %q", r.ID)
		}
		rows[r.ID] = true

		k, ok := m.Solution[r.ID]
		if !ok {
			c.add(id, "solution", "row %q has no solution", r.ID)
			continue
		}
		if !keys[k] {
			c.add(id, "solution", "row %q references nonexistent option %q", r.ID, k)
		}
	}
	for rowID := range m.Solution {
		if !rows[rowID] {
			c.add(id, "solution", "references nonexistent row %q", rowID)
		}
	}
}

func validateImageMatching(id int, im *ImageMatching, c *issueCollector) {
	keys := validateOptions(id, "options", im.Options, c)

	if len(im.Images) == 0 {
		c.add(id, "images", "must contain at least one image")
	}
	ids := make(map[string]bool, len(im.Images))
	for _, img := range im.Images {
		if img.ID == "" {
			c.add(id, "images", "image with empty id")
			continue
		}
		if ids[img.ID] {
			c.add(id, "images", "duplicate image id %q", img.ID)
		}
		ids[img.ID] = true

		if strings.TrimSpace(img.Src) == "" {
			c.add(id, "images", "image %q has no src", img.ID)
		}
		if !keys[img.CorrectKey] {
			c.add(id, "images", "image %q references nonexistent option %q", img.ID, img.CorrectKey)
		}
	}
}

// validateOptions checks key uniqueness and returns the set of keys.
func validateOptions(id int, field string, opts []Option, c *issueCollector) map[string]bool {
	if len(opts) == 0 {
		c.add(id, field, "must contain at least one option")
	}
	keys := make(map[string]bool, len(opts))
	for _, o := range opts {
		if o.Key == "" {
			c.add(id, field, "option with empty key")
			continue
		}
		if keys[o.Key] {
			c.add(id, field, "duplicate option key %q", o.Key)
		}
		keys[o.Key] = true
	}
	return keys
}
