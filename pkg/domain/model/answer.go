package model

// AnswerKind discriminates the raw value type of a questionnaire answer
type AnswerKind int

const (
	// AnswerAbsent means the question had no usable value (empty cell, null)
	AnswerAbsent AnswerKind = iota
	// AnswerText is a free-form textual response
	AnswerText
	// AnswerNumber is a numeric response
	AnswerNumber
)

// Answer is a tagged variant holding one raw questionnaire response.
// The zero value is an absent answer.
type Answer struct {
	kind   AnswerKind
	text   string
	number float64
}

// TextAnswer returns a textual answer
func TextAnswer(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

// NumberAnswer returns a numeric answer
func NumberAnswer(v float64) Answer {
	return Answer{kind: AnswerNumber, number: v}
}

// AbsentAnswer returns an answer with no value
func AbsentAnswer() Answer {
	return Answer{}
}

// Kind returns the discriminator of the answer
func (x Answer) Kind() AnswerKind {
	return x.kind
}

// Text returns the textual value. ok is false unless the answer is textual.
func (x Answer) Text() (string, bool) {
	return x.text, x.kind == AnswerText
}

// Number returns the numeric value. ok is false unless the answer is numeric.
func (x Answer) Number() (float64, bool) {
	return x.number, x.kind == AnswerNumber
}
