package repository

import (
	"context"
	"encoding/json"

	"portfolio-backend/internal/models"
)

func (r *ContentRepo) Quiz(ctx context.Context, skill string, ordinal int) ([]models.QuizQuestion, error) {
	path, ok := r.reg.quizzes[skill][ordinal]
	if !ok {
		return nil, ErrNotRegistered
	}
	raw, err := r.read(ctx, path, r.quiz)
	if err != nil {
		return nil, err
	}
	var questions []models.QuizQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return questions, nil
}
