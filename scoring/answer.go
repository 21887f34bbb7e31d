package scoring

// Value is one respondent's reply to a single question. It is a closed set
// of variants so scoring never has to type-switch on raw interface values.
type Value interface {
	kind() Kind
}

// ScaleValue is a numeric self-assessment on a 0-10 scale.
type ScaleValue float64

// ChoiceValue is one of a question's ranked options.
type ChoiceValue string

// TextValue is free text. Text answers are never scored.
type TextValue string

func (ScaleValue) kind() Kind  { return KindScale }
func (ChoiceValue) kind() Kind { return KindMultipleChoice }
func (TextValue) kind() Kind   { return KindText }

// Answer is one respondent's reply to one catalog question. Category is
// copied from the question at answer time and trusted from then on.
type Answer struct {
	QuestionID int
	Category   string
	Value      Value
}

// ScaleAnswer builds an answer to a scale question.
func ScaleAnswer(questionID int, category string, v float64) Answer {
	return Answer{QuestionID: questionID, Category: category, Value: ScaleValue(v)}
}

// ChoiceAnswer builds an answer to a multiple-choice question.
func ChoiceAnswer(questionID int, category string, option string) Answer {
	return Answer{QuestionID: questionID, Category: category, Value: ChoiceValue(option)}
}

// TextAnswer builds an answer to a free-text question.
func TextAnswer(questionID int, category string, text string) Answer {
	return Answer{QuestionID: questionID, Category: category, Value: TextValue(text)}
}
