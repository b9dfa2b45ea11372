package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	FillInTheBlank QuestionType = "fill-in-the-blank"
)

// Answer is either a boolean (true-false questions) or text (everything else).
type Answer struct {
	isBool bool
	flag   bool
	text   string
}

func BoolAnswer(b bool) Answer      { return Answer{isBool: true, flag: b} }
func TextAnswer(s string) Answer    { return Answer{text: s} }
func (a Answer) IsBool() bool       { return a.isBool }
func (a Answer) Bool() (bool, bool) { return a.flag, a.isBool }

// String renders the answer as text; booleans become "true"/"false".
func (a Answer) String() string {
	if a.isBool {
		return strconv.FormatBool(a.flag)
	}
	return a.text
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isBool {
		return json.Marshal(a.flag)
	}
	return json.Marshal(a.text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = BoolAnswer(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("answer must be a boolean or a string: %s", data)
	}
	*a = TextAnswer(s)
	return nil
}

type QuizQuestion struct {
	Type        QuestionType `json:"type"`
	Question    string       `json:"question"`
	Code        string       `json:"code,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Answer      Answer       `json:"answer"`
	Explanation string       `json:"explanation"`
}

func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	type plain QuizQuestion
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	qq := QuizQuestion(p)
	if err := qq.Validate(); err != nil {
		return err
	}
	*q = qq
	return nil
}

var (
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrAnswerShape         = errors.New("answer does not match question type")
	ErrNoOptions           = errors.New("multiple-choice question has no options")
	ErrAnswerNotInOptions  = errors.New("multiple-choice answer is not one of the options")
)

// Validate checks that the answer shape matches the question type.
func (q QuizQuestion) Validate() error {
	switch q.Type {
	case TrueFalse:
		if !q.Answer.IsBool() {
			return ErrAnswerShape
		}
	case FillInTheBlank:
		if q.Answer.IsBool() {
			return ErrAnswerShape
		}
	case MultipleChoice:
		if q.Answer.IsBool() {
			return ErrAnswerShape
		}
		if len(q.Options) == 0 {
			return ErrNoOptions
		}
		for _, o := range q.Options {
			if o == q.Answer.String() {
				return nil
			}
		}
		return ErrAnswerNotInOptions
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQuestionType, q.Type)
	}
	return nil
}
