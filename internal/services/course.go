package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

// LessonLoadErrorTitle is the placeholder title for a lesson that failed to
// load in a course listing.
const LessonLoadErrorTitle = "Error loading lesson"

// ContentStore is the read side of the content repository.
type ContentStore interface {
	Courses(ctx context.Context) []models.Course
	Course(ctx context.Context, id string) (models.Course, bool)
	Lesson(ctx context.Context, skill string, ordinal int) (*models.Lesson, error)
	Quiz(ctx context.Context, skill string, ordinal int) ([]models.QuizQuestion, error)
}

type CourseService struct {
	store ContentStore
	cache Cache
	log   *logger.Logger
}

func NewCourseService(store ContentStore, cache Cache, log *logger.Logger) *CourseService {
	if cache == nil {
		cache = NoopCache{}
	}
	return &CourseService{store: store, cache: cache, log: log}
}

// ListCourses summarises every course from the catalogue alone.
func (s *CourseService) ListCourses(ctx context.Context) []models.CourseSummary {
	courses := s.store.Courses(ctx)
	out := make([]models.CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, models.CourseSummary{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			Icon:         c.Icon,
			Link:         c.Link,
			TotalLessons: len(c.Lessons),
			TotalQuizzes: len(c.Quiz),
		})
	}
	return out
}

// GetCourse expands each lesson of skill into a summary. A lesson that fails
// to load becomes a placeholder entry.
func (s *CourseService) GetCourse(ctx context.Context, skill string) (*models.CourseDetail, error) {
	course, ok := s.store.Course(ctx, skill)
	if !ok {
		return nil, &CourseNotFoundError{Skill: skill}
	}

	key := "course:" + skill
	if detail, ok := s.cachedDetail(ctx, key); ok {
		return detail, nil
	}

	detail := &models.CourseDetail{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		Icon:        course.Icon,
		Link:        course.Link,
		Lessons:     make([]models.LessonSummary, 0, len(course.Lessons)),
		Quiz:        course.Quiz,
	}
	complete := true
	for _, ref := range course.Lessons {
		lesson, err := s.store.Lesson(ctx, skill, ref.Ordinal)
		if err != nil {
			s.log.Warn("Failed to load lesson for course summary", "skill", skill, "lesson", ref.Ordinal, "error", err)
			detail.Lessons = append(detail.Lessons, models.LessonSummary{ID: ref.Ordinal, Title: LessonLoadErrorTitle})
			complete = false
			continue
		}
		detail.Lessons = append(detail.Lessons, models.LessonSummary{
			ID:          ref.Ordinal,
			Title:       lesson.Title,
			Description: lesson.Description,
			Chapters:    len(lesson.Sections),
		})
	}

	// Placeholders are not cached so a fixed document shows up on the next request.
	if complete {
		s.storeDetail(ctx, key, detail)
	}
	return detail, nil
}

// GetLesson resolves lesson lessonID of skill and the quiz with the same
// ordinal. The two are loaded independently; a failure on one leaves the
// other intact.
func (s *CourseService) GetLesson(ctx context.Context, skill, lessonID string) (*models.LessonResponse, error) {
	ordinal, err := parseOrdinal("lessonId", lessonID)
	if err != nil {
		return nil, err
	}
	course, ok := s.store.Course(ctx, skill)
	if !ok {
		return nil, &CourseNotFoundError{Skill: skill}
	}
	if ordinal > len(course.Lessons) {
		return nil, &NotFoundError{Message: fmt.Sprintf("Lesson %d not found", ordinal)}
	}

	resp := &models.LessonResponse{Ordinal: ordinal, Course: course, Quiz: []models.QuizQuestion{}}

	lesson, lessonErr := s.store.Lesson(ctx, skill, ordinal)
	if lessonErr != nil {
		s.log.Warn("Failed to load lesson", "skill", skill, "lesson", ordinal, "error", lessonErr)
	} else {
		resp.Lesson = lesson
	}

	quiz, quizErr := s.store.Quiz(ctx, skill, ordinal)
	switch {
	case quizErr == nil:
		resp.Quiz = quiz
	case errors.Is(quizErr, repository.ErrNotRegistered):
	default:
		s.log.Warn("Failed to load quiz", "skill", skill, "quiz", ordinal, "error", quizErr)
	}

	if lessonErr != nil && len(resp.Quiz) == 0 {
		return nil, &ResourceLoadError{Resource: fmt.Sprintf("%s lesson %d", skill, ordinal), Err: lessonErr}
	}
	return resp, nil
}

// GetQuiz returns the questions of quiz quizID of skill.
func (s *CourseService) GetQuiz(ctx context.Context, skill, quizID string) ([]models.QuizQuestion, error) {
	ordinal, err := parseOrdinal("quizId", quizID)
	if err != nil {
		return nil, err
	}
	if _, ok := s.store.Course(ctx, skill); !ok {
		return nil, &CourseNotFoundError{Skill: skill}
	}

	quiz, err := s.store.Quiz(ctx, skill, ordinal)
	if errors.Is(err, repository.ErrNotRegistered) {
		return nil, &NotFoundError{Message: fmt.Sprintf("Quiz %d not found", ordinal)}
	}
	if err != nil {
		s.log.Error("Failed to load quiz", "skill", skill, "quiz", ordinal, "error", err)
		return nil, &ResourceLoadError{Resource: fmt.Sprintf("%s quiz %d", skill, ordinal), Err: err}
	}
	return quiz, nil
}

func parseOrdinal(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, &ValidationError{Fields: map[string]string{field: "must be a positive integer"}}
	}
	return n, nil
}

func (s *CourseService) cachedDetail(ctx context.Context, key string) (*models.CourseDetail, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("Cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var detail models.CourseDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		s.log.Warn("Discarding undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	return &detail, true
}

func (s *CourseService) storeDetail(ctx context.Context, key string, detail *models.CourseDetail) {
	raw, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.Warn("Cache write failed", "key", key, "error", err)
	}
}
