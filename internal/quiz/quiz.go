// Package quiz steps a learner through a list of questions and scores the
// answers. A Session holds no I/O and is owned by a single learner.
package quiz

import (
	"errors"
	"math"
	"strings"

	"portfolio-backend/internal/models"
)

type Phase int

const (
	Empty Phase = iota
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in-progress"
	case Finished:
		return "finished"
	default:
		return "empty"
	}
}

var (
	ErrNotInProgress   = errors.New("quiz is not in progress")
	ErrFeedbackPending = errors.New("answer already submitted for this question")
	ErrNoFeedback      = errors.New("no answer submitted for this question")
)

type Feedback struct {
	Correct     bool
	Explanation string
}

// State is a snapshot of a session. In Finished, Index equals the number of
// questions.
type State struct {
	Phase    Phase
	Index    int
	Score    int
	Feedback *Feedback
}

type Session struct {
	questions []models.QuizQuestion
	st        State
}

// New starts a session at the first question, or Empty for no questions.
func New(questions []models.QuizQuestion) *Session {
	s := &Session{questions: questions}
	s.Reset()
	return s
}

func (s *Session) State() State {
	st := s.st
	if st.Feedback != nil {
		fb := *st.Feedback
		st.Feedback = &fb
	}
	return st
}

func (s *Session) Total() int { return len(s.questions) }

// Current returns the question being asked. ok is false outside InProgress.
func (s *Session) Current() (q models.QuizQuestion, ok bool) {
	if s.st.Phase != InProgress {
		return models.QuizQuestion{}, false
	}
	return s.questions[s.st.Index], true
}

// Submit grades answer against the current question. Only one answer is
// accepted per question; Advance must be called before the next one.
func (s *Session) Submit(answer models.Answer) (Feedback, error) {
	if s.st.Phase != InProgress {
		return Feedback{}, ErrNotInProgress
	}
	if s.st.Feedback != nil {
		return Feedback{}, ErrFeedbackPending
	}

	q := s.questions[s.st.Index]
	fb := Feedback{Correct: IsCorrect(q, answer), Explanation: q.Explanation}
	if fb.Correct {
		s.st.Score++
	}
	s.st.Feedback = &fb
	return fb, nil
}

// Advance clears feedback and moves to the next question, finishing after
// the last one.
func (s *Session) Advance() error {
	if s.st.Phase != InProgress {
		return ErrNotInProgress
	}
	if s.st.Feedback == nil {
		return ErrNoFeedback
	}
	s.st.Feedback = nil
	s.st.Index++
	if s.st.Index >= len(s.questions) {
		s.st.Phase = Finished
		s.st.Index = len(s.questions)
	}
	return nil
}

// Reset returns to the first question with a zero score.
func (s *Session) Reset() {
	if len(s.questions) == 0 {
		s.st = State{Phase: Empty}
		return
	}
	s.st = State{Phase: InProgress}
}

// IsCorrect compares booleans for true-false questions and lowercased text
// for everything else. A text answer never matches a true-false question.
func IsCorrect(q models.QuizQuestion, answer models.Answer) bool {
	if q.Type == models.TrueFalse {
		want, ok := q.Answer.Bool()
		got, gotOK := answer.Bool()
		return ok && gotOK && want == got
	}
	return strings.ToLower(answer.String()) == strings.ToLower(q.Answer.String())
}

// ProgressPercent is the share of questions already passed, 0..100.
func (s *Session) ProgressPercent() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return 100 * float64(s.st.Index) / float64(len(s.questions))
}

// FinalPercent is the rounded score percentage.
func (s *Session) FinalPercent() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.st.Score) / float64(len(s.questions))))
}

type Tier int

const (
	NeedsImprovement Tier = iota
	Good
	Perfect
)

const goodThreshold = 0.7

func (s *Session) Tier() Tier {
	total := len(s.questions)
	switch {
	case total > 0 && s.st.Score == total:
		return Perfect
	case total > 0 && float64(s.st.Score)/float64(total) >= goodThreshold:
		return Good
	default:
		return NeedsImprovement
	}
}

func (t Tier) Headline() string {
	if t == Perfect {
		return "Perfect Score! 🎉"
	}
	return ""
}

func (t Tier) Message() string {
	switch t {
	case Perfect:
		return "Excellent work! You've mastered this topic!"
	case Good:
		return "Good job! Keep practicing to improve your skills."
	default:
		return "Keep learning and try again to improve your score."
	}
}
