package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"portfolio-backend/internal/models"
)

var ErrInvalidState = errors.New("invalid quiz state")

// Restore rebuilds a session from a snapshot held by the client. The
// snapshot is checked against questions; feedback explanations are taken
// from the questions, not from the snapshot.
func Restore(questions []models.QuizQuestion, st State) (*Session, error) {
	n := len(questions)
	switch st.Phase {
	case Empty:
		if n != 0 {
			return nil, fmt.Errorf("%w: empty state for %d questions", ErrInvalidState, n)
		}
		return New(questions), nil

	case InProgress:
		if st.Index < 0 || st.Index >= n {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidState, st.Index)
		}
		answered := st.Index
		if st.Feedback != nil {
			answered++
		}
		if st.Score < 0 || st.Score > answered {
			return nil, fmt.Errorf("%w: score %d after %d answers", ErrInvalidState, st.Score, answered)
		}
		if st.Feedback != nil && st.Feedback.Correct && st.Score == 0 {
			return nil, fmt.Errorf("%w: correct feedback with zero score", ErrInvalidState)
		}

	case Finished:
		if n == 0 || st.Score < 0 || st.Score > n {
			return nil, fmt.Errorf("%w: score %d of %d", ErrInvalidState, st.Score, n)
		}
		st.Index = n
		st.Feedback = nil

	default:
		return nil, fmt.Errorf("%w: unknown phase %d", ErrInvalidState, st.Phase)
	}

	if st.Feedback != nil {
		st.Feedback = &Feedback{Correct: st.Feedback.Correct, Explanation: questions[st.Index].Explanation}
	}
	return &Session{questions: questions, st: st}, nil
}

// Encode packs a state into a compact token such as "in-progress.2.1.correct".
func (st State) Encode() string {
	fb := "none"
	if st.Feedback != nil {
		fb = "wrong"
		if st.Feedback.Correct {
			fb = "correct"
		}
	}
	return fmt.Sprintf("%s.%d.%d.%s", st.Phase, st.Index, st.Score, fb)
}

func DecodeState(token string) (State, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidState, token)
	}

	var st State
	switch parts[0] {
	case Empty.String():
		st.Phase = Empty
	case InProgress.String():
		st.Phase = InProgress
	case Finished.String():
		st.Phase = Finished
	default:
		return State{}, fmt.Errorf("%w: phase %q", ErrInvalidState, parts[0])
	}

	var err error
	if st.Index, err = strconv.Atoi(parts[1]); err != nil {
		return State{}, fmt.Errorf("%w: index %q", ErrInvalidState, parts[1])
	}
	if st.Score, err = strconv.Atoi(parts[2]); err != nil {
		return State{}, fmt.Errorf("%w: score %q", ErrInvalidState, parts[2])
	}
	switch parts[3] {
	case "none":
	case "correct":
		st.Feedback = &Feedback{Correct: true}
	case "wrong":
		st.Feedback = &Feedback{Correct: false}
	default:
		return State{}, fmt.Errorf("%w: feedback %q", ErrInvalidState, parts[3])
	}
	return st, nil
}

// ParseAnswer converts a submitted form value into an answer for q.
// True-false questions accept only "true" or "false".
func ParseAnswer(q models.QuizQuestion, raw string) (models.Answer, error) {
	if q.Type != models.TrueFalse {
		return models.TextAnswer(raw), nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil || (raw != "true" && raw != "false") {
		return models.Answer{}, fmt.Errorf("true-false answer must be true or false, got %q", raw)
	}
	return models.BoolAnswer(b), nil
}
