package questions

import (
	"strings"

	"bombtrivia/internal/utility"
)

type Kind string

const (
	KindOpen      = Kind("open")
	KindTrueFalse = Kind("tf")
)

type Question struct {
	Kind   Kind
	Prompt string
	Answer string
}

// Matches reports whether a submitted answer is correct. Comparison is
// case-insensitive with surrounding whitespace ignored.
func (q Question) Matches(submitted string) bool {
	return Normalize(submitted) == Normalize(q.Answer)
}

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Source yields one question per draw. Implementations must be safe for
// concurrent use.
type Source interface {
	Draw() Question
}

// Bank is a fixed in-memory question source.
type Bank struct {
	questions []Question
}

func NewBank() *Bank {
	return &Bank{questions: generalKnowledge}
}

func (b *Bank) Len() int {
	return len(b.questions)
}

func (b *Bank) Draw() Question {
	return utility.PickRandom(b.questions)
}
