package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pmquiz/internal/bank"
)

func mount(t *testing.T, id int) Widget {
	t.Helper()
	q, err := bank.Default().Get(id)
	require.NoError(t, err)
	w, err := Mount(q, NewRand(5))
	require.NoError(t, err)
	return w
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name      string
		selection []string
		correct   []string
		want      bool
	}{
		{"exact set", []string{"a", "e"}, []string{"a", "e"}, true},
		{"order ignored", []string{"e", "a"}, []string{"a", "e"}, true},
		{"subset", []string{"a"}, []string{"a", "e"}, false},
		{"superset", []string{"a", "b", "e"}, []string{"a", "e"}, false},
		{"empty selection", nil, []string{"a"}, false},
		{"disjoint", []string{"b"}, []string{"a"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckAnswer(tt.selection, tt.correct))
		})
	}
}

func TestMount_PicksWidgetByKind(t *testing.T) {
	assert.IsType(t, &MultipleChoice{}, mount(t, 1))
	assert.IsType(t, &Matching{}, mount(t, 5))
	assert.IsType(t, &ImageMatching{}, mount(t, 6))

	_, err := Mount(bank.Question{ID: 3, Kind: "essay"}, nil)
	assert.ErrorContains(t, err, `unknown kind "essay"`)

	_, err = Mount(bank.Question{ID: 4, Kind: bank.KindMatching}, nil)
	assert.ErrorContains(t, err, "matching fields missing")
}

func TestMount_FreshInstanceEachTime(t *testing.T) {
	a := mount(t, 1)
	b := mount(t, 1)
	assert.NotEmpty(t, a.Instance())
	assert.NotEqual(t, a.Instance(), b.Instance())
	assert.True(t, a.Pristine())
}

func TestMultipleChoice_Toggle(t *testing.T) {
	mc := mount(t, 1).(*MultipleChoice)

	mc.Toggle("a")
	assert.True(t, mc.IsSelected("a"))
	mc.Toggle("a")
	assert.False(t, mc.IsSelected("a"))
	assert.True(t, mc.Pristine())

	mc.Toggle("zz")
	assert.Empty(t, mc.State.Selected, "unknown keys are ignored")
}

func TestMultipleChoice_DoubleToggleMatchesMountState(t *testing.T) {
	mc := mount(t, 1).(*MultipleChoice)
	fresh, err := json.Marshal(mc.State)
	require.NoError(t, err)

	mc.Toggle("a")
	mc.Toggle("a")
	assert.Nil(t, mc.State.Selected)

	got, err := json.Marshal(mc.State)
	require.NoError(t, err)
	assert.JSONEq(t, string(fresh), string(got))
}

func TestQuestion_ReturnsCopy(t *testing.T) {
	mc := mount(t, 1).(*MultipleChoice)
	mc.Question().Correct[0] = "z"
	mc.Question().Options[0].Text = "changed"
	assert.Equal(t, []string{"a", "e"}, mc.Question().Correct)
	assert.NotEqual(t, "changed", mc.Question().Options[0].Text)

	m := mount(t, 5).(*Matching)
	m.Question().Solution["1"] = "z"
	m.Select("1", "a")
	assert.Equal(t, Correct, m.EvaluateRow("1"))

	q, err := bank.Default().Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "e"}, q.MultipleChoice.Correct)
}

func TestMultipleChoice_VerdictFollowsCurrentSelection(t *testing.T) {
	mc := mount(t, 1).(*MultipleChoice)

	mc.Toggle("a")
	mc.Toggle("e")
	assert.Equal(t, Unanswered, mc.Verdict())

	mc.Check()
	assert.Equal(t, Correct, mc.Verdict())

	mc.Toggle("e")
	assert.Equal(t, Incorrect, mc.Verdict())

	mc.Toggle("e")
	assert.Equal(t, Correct, mc.Verdict())
}

func TestMultipleChoice_EmptyCheckIsIncorrect(t *testing.T) {
	mc := mount(t, 3).(*MultipleChoice)
	mc.Check()
	assert.Equal(t, Incorrect, mc.Verdict())
}

func TestMultipleChoice_CorrectText(t *testing.T) {
	mc := mount(t, 1).(*MultipleChoice)
	assert.Equal(t, "El proyecto dura 12 semanas., 40 es el máximo de personas que se necesitan en una semana.", mc.CorrectText())
}

func TestMultipleChoice_OptionsStableAcrossCalls(t *testing.T) {
	mc := mount(t, 2).(*MultipleChoice)
	first := mc.Options()
	mc.Toggle("c")
	assert.Equal(t, first, mc.Options())
	assert.ElementsMatch(t, mc.Question().Options, first)
}

func TestMatching_QuestionFive(t *testing.T) {
	m := mount(t, 5).(*Matching)

	for row, key := range map[string]string{"1": "a", "2": "b", "3": "c", "4": "d", "5": "e", "6": "f", "7": "g"} {
		assert.Equal(t, Unanswered, m.EvaluateRow(row), "row %s before answering", row)
		m.Select(row, key)
		assert.Equal(t, Correct, m.EvaluateRow(row), "row %s", row)
	}

	m.Select("3", "a")
	assert.Equal(t, Incorrect, m.EvaluateRow("3"))
	assert.Equal(t, "Se relacionan actividades del proyecto con actividades que son ajenas a éste", m.SolutionText("3"))

	m.Clear("3")
	assert.Equal(t, Unanswered, m.EvaluateRow("3"))
	assert.Equal(t, 6, m.Answered())
}

func TestMatching_IgnoresUnknownRowsAndKeys(t *testing.T) {
	m := mount(t, 5).(*Matching)
	m.Select("99", "a")
	m.Select("1", "zz")
	assert.True(t, m.Pristine())
}

func TestEvaluateRow(t *testing.T) {
	solution := map[string]string{"1": "a", "2": "a"}
	assert.Equal(t, Correct, EvaluateRow(solution, "1", "a"))
	assert.Equal(t, Correct, EvaluateRow(solution, "2", "a"))
	assert.Equal(t, Incorrect, EvaluateRow(solution, "1", "b"))
	assert.Equal(t, Unanswered, EvaluateRow(solution, "1", ""))
}

func TestImageMatching_GateOpensWhenAllAnswered(t *testing.T) {
	m := mount(t, 6).(*ImageMatching)
	labels := map[string]string{
		"img1": "adelanto",
		"img2": "retraso",
		"img3": "start-start",
		"img4": "finish-finish",
		"img5": "start-finish",
	}

	for _, id := range []string{"img1", "img2", "img3", "img4"} {
		m.Select(id, labels[id])
		assert.False(t, m.CheckAnswers(), "gate opened with %s", id)
	}
	assert.False(t, m.Revealed())
	assert.Equal(t, Unanswered, m.Feedback("img1"))

	m.Select("img5", "adelanto")
	require.True(t, m.AllAnswered())
	require.True(t, m.CheckAnswers())

	for _, id := range []string{"img1", "img2", "img3", "img4"} {
		assert.True(t, m.IsCorrect(id))
		assert.Equal(t, Correct, m.Feedback(id))
	}
	assert.False(t, m.IsCorrect("img5"))
	assert.Equal(t, Incorrect, m.Feedback("img5"))
	assert.Equal(t, "Start-to-Finish (SF)", m.CorrectText("img5"))
	assert.False(t, m.AllCorrect())
	assert.Equal(t, Incorrect, m.Summary())

	m.Select("img5", labels["img5"])
	assert.True(t, m.AllCorrect())
	assert.Equal(t, Correct, m.Summary())
}

func TestImageMatching_IgnoresUnknownFigures(t *testing.T) {
	m := mount(t, 6).(*ImageMatching)
	m.Select("img9", "adelanto")
	m.Select("img1", "sideways")
	assert.True(t, m.Pristine())
	assert.False(t, m.IsCorrect("img9"))
}

func TestReset_IsIdempotentForEveryKind(t *testing.T) {
	for _, id := range []int{1, 5, 6} {
		w := mount(t, id)
		order := orderOf(w)

		switch w := w.(type) {
		case *MultipleChoice:
			w.Toggle("a")
			w.Check()
		case *Matching:
			w.Select("1", "a")
		case *ImageMatching:
			for _, img := range w.Question().Images {
				w.Select(img.ID, img.CorrectKey)
			}
			require.True(t, w.CheckAnswers())
		}
		require.False(t, w.Pristine(), "question %d", id)

		w.Reset()
		assert.True(t, w.Pristine(), "question %d after reset", id)
		w.Reset()
		assert.True(t, w.Pristine(), "question %d after second reset", id)
		assert.Equal(t, order, orderOf(w), "reset keeps shuffle order")
	}
}

func TestState_IsSerializable(t *testing.T) {
	m := mount(t, 6).(*ImageMatching)
	m.Select("img1", "adelanto")

	data, err := json.Marshal(m.State)
	require.NoError(t, err)

	var got ImageMatchingState
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.State, got)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "unanswered", Unanswered.String())
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "incorrect", Incorrect.String())
}

func orderOf(w Widget) []string {
	switch w := w.(type) {
	case *MultipleChoice:
		return w.State.Order
	case *Matching:
		return w.State.Order
	case *ImageMatching:
		return w.State.Order
	}
	return nil
}
