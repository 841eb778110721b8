package quiz

// Verdict is the feedback state of an answer.
type Verdict int

const (
	Unanswered Verdict = iota // no feedback shown
	Correct
	Incorrect
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

func verdictOf(ok bool) Verdict {
	if ok {
		return Correct
	}
	return Incorrect
}
