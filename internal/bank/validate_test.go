package bank

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_EmbeddedBankPasses(t *testing.T) {
	if err := Validate(Default().All()); err != nil {
		t.Fatalf("embedded bank validation failed: %v", err)
	}
}

func TestValidate_EmptyBank(t *testing.T) {
	err := Validate(nil)
	if err == nil {
		t.Fatal("expected error for empty bank, got nil")
	}
	if !strings.Contains(err.Error(), "no questions") {
		t.Errorf("error should mention missing questions, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateQuestionID(t *testing.T) {
	qs := []Question{minimalMultipleChoice(1), minimalMultipleChoice(1)}
	err := Validate(qs)
	if err == nil {
		t.Fatal("expected error for duplicate id, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate question id") {
		t.Errorf("error should mention duplicate id, got: %v", err)
	}
}

func TestValidate_DetectsDanglingCorrectKey(t *testing.T) {
	q := minimalMultipleChoice(1)
	q.MultipleChoice.Correct = []string{"a", "z"}
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for dangling correct key, got nil")
	}
	if !strings.Contains(err.Error(), `nonexistent option "z"`) {
		t.Errorf("error should mention the missing key, got: %v", err)
	}
}

func TestValidate_RequiresNonEmptyCorrect(t *testing.T) {
	q := minimalMultipleChoice(1)
	q.MultipleChoice.Correct = nil
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for empty correct set, got nil")
	}
	if !strings.Contains(err.Error(), "at least one option") {
		t.Errorf("error should mention the empty correct set, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateOptionKey(t *testing.T) {
	q := minimalMultipleChoice(1)
	q.MultipleChoice.Options = append(q.MultipleChoice.Options, Option{Key: "a", Text: "again"})
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for duplicate option key, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate option key "a"`) {
		t.Errorf("error should mention the duplicate key, got: %v", err)
	}
}

func TestValidate_MatchingSolutionMustCoverEveryRow(t *testing.T) {
	q := minimalMatching(5)
	delete(q.Matching.Solution, "2")
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for uncovered row, got nil")
	}
	if !strings.Contains(err.Error(), `row "2" has no solution`) {
		t.Errorf("error should mention the uncovered row, got: %v", err)
	}
}

func TestValidate_MatchingSolutionUnknownRow(t *testing.T) {
	q := minimalMatching(5)
	q.Matching.Solution["9"] = "a"
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for unknown row, got nil")
	}
	if !strings.Contains(err.Error(), `nonexistent row "9"`) {
		t.Errorf("error should mention the unknown row, got: %v", err)
	}
}

func TestValidate_MatchingSolutionDanglingKey(t *testing.T) {
	q := minimalMatching(5)
	q.Matching.Solution["1"] = "q"
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for dangling solution key, got nil")
	}
	if !strings.Contains(err.Error(), `nonexistent option "q"`) {
		t.Errorf("error should mention the missing key, got: %v", err)
	}
}

func TestValidate_MatchingAllowsSharedRightKey(t *testing.T) {
	q := minimalMatching(5)
	q.Matching.Solution["2"] = "a"
	if err := Validate([]Question{q}); err != nil {
		t.Fatalf("shared right key should be valid, got: %v", err)
	}
}

func TestValidate_ImageMatchingDanglingCorrectKey(t *testing.T) {
	q := minimalImageMatching(6)
	q.ImageMatching.Images[1].CorrectKey = "sideways"
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for dangling image key, got nil")
	}
	if !strings.Contains(err.Error(), `image "img2" references nonexistent option "sideways"`) {
		t.Errorf("error should mention the image and key, got: %v", err)
	}
}

func TestValidate_ImageMatchingDuplicateImageID(t *testing.T) {
	q := minimalImageMatching(6)
	q.ImageMatching.Images[1].ID = "img1"
	err := Validate([]Question{q})
	if err == nil {
		t.Fatal("expected error for duplicate image id, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate image id "img1"`) {
		t.Errorf("error should mention the duplicate image, got: %v", err)
	}
}

func TestValidate_ReportsAllIssues(t *testing.T) {
	mc := minimalMultipleChoice(1)
	mc.MultipleChoice.Correct = []string{"z"}
	m := minimalMatching(2)
	m.Matching.Solution["1"] = "q"

	err := Validate([]Question{mc, m})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(verr.Issues), verr)
	}
	if verr.Issues[0].Question != 1 || verr.Issues[1].Question != 2 {
		t.Errorf("issues should keep bank order, got %+v", verr.Issues)
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	err := Validate([]Question{{ID: 1, Kind: "essay", Title: "1) Ensayo"}})
	if err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
	if !strings.Contains(err.Error(), `unknown kind "essay"`) {
		t.Errorf("error should mention the kind, got: %v", err)
	}
}

func minimalMultipleChoice(id int) Question {
	return Question{
		ID:    id,
		Kind:  KindMultipleChoice,
		Title: "Opción múltiple",
		MultipleChoice: &MultipleChoice{
			Prompt:  "Marcar la(s) alternativa(s) correcta(s):",
			Options: []Option{{Key: "a", Text: "uno"}, {Key: "b", Text: "dos"}},
			Correct: []string{"a"},
		},
	}
}

func minimalMatching(id int) Question {
	return Question{
		ID:    id,
		Kind:  KindMatching,
		Title: "Coincidencia",
		Matching: &Matching{
			Left:     []Row{{ID: "1", Text: "uno"}, {ID: "2", Text: "dos"}},
			Right:    []Option{{Key: "a", Text: "A"}, {Key: "b", Text: "B"}},
			Solution: map[string]string{"1": "a", "2": "b"},
		},
	}
}

func minimalImageMatching(id int) Question {
	return Question{
		ID:    id,
		Kind:  KindImageMatching,
		Title: "Observar las figuras",
		ImageMatching: &ImageMatching{
			Prompt: "Selecciona el tipo:",
			Images: []Figure{
				{ID: "img1", Src: "/images/a.png", CorrectKey: "x"},
				{ID: "img2", Src: "/images/b.png", CorrectKey: "y"},
			},
			Options: []Option{{Key: "x", Text: "Equis"}, {Key: "y", Text: "Ye"}},
		},
	}
}
