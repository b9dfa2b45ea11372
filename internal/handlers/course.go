package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
)

// CourseService is what the course handlers need from the service layer.
type CourseService interface {
	ListCourses(ctx context.Context) []models.CourseSummary
	GetCourse(ctx context.Context, skill string) (*models.CourseDetail, error)
	GetLesson(ctx context.Context, skill, lessonID string) (*models.LessonResponse, error)
	GetQuiz(ctx context.Context, skill, quizID string) ([]models.QuizQuestion, error)
}

type CourseHandler struct {
	courses CourseService
	log     *logger.Logger
}

func NewCourseHandler(courses CourseService, log *logger.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, log: log}
}

func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.courses.ListCourses(r.Context()))
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	detail, err := h.courses.GetCourse(r.Context(), chi.URLParam(r, "skill"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	skill, lessonID := chi.URLParam(r, "skill"), chi.URLParam(r, "lessonId")
	resp, err := h.courses.GetLesson(r.Context(), skill, lessonID)
	if err != nil {
		h.log.Debug("GetLesson failed", "skill", skill, "lesson", lessonID, "error", err)
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CourseHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.courses.GetQuiz(r.Context(), chi.URLParam(r, "skill"), chi.URLParam(r, "quizId"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "Server is healthy!"})
}
