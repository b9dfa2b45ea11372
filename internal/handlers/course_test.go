package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type stubCourseService struct {
	courses   []models.CourseSummary
	detail    *models.CourseDetail
	lesson    *models.LessonResponse
	quiz      []models.QuizQuestion
	err       error
	lastSkill string
	lastID    string
}

func (s *stubCourseService) ListCourses(ctx context.Context) []models.CourseSummary {
	return s.courses
}

func (s *stubCourseService) GetCourse(ctx context.Context, skill string) (*models.CourseDetail, error) {
	s.lastSkill = skill
	return s.detail, s.err
}

func (s *stubCourseService) GetLesson(ctx context.Context, skill, lessonID string) (*models.LessonResponse, error) {
	s.lastSkill, s.lastID = skill, lessonID
	return s.lesson, s.err
}

func (s *stubCourseService) GetQuiz(ctx context.Context, skill, quizID string) ([]models.QuizQuestion, error) {
	s.lastSkill, s.lastID = skill, quizID
	return s.quiz, s.err
}

func withParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCourseHandler_GetCourses(t *testing.T) {
	svc := &stubCourseService{courses: []models.CourseSummary{{ID: "javascript", Name: "JavaScript", TotalLessons: 3, TotalQuizzes: 2}}}
	h := NewCourseHandler(svc, logger.Nop())

	rr := httptest.NewRecorder()
	h.GetCourses(rr, httptest.NewRequest(http.MethodGet, "/api/course/getCourses", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var got []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0]["totalLessons"] != float64(3) || got[0]["totalQuizzes"] != float64(2) {
		t.Errorf("unexpected body %v", got)
	}
}

func TestCourseHandler_GetLesson_PassesParams(t *testing.T) {
	svc := &stubCourseService{lesson: &models.LessonResponse{
		Course: models.Course{ID: "javascript", Name: "JavaScript"},
		Quiz:   []models.QuizQuestion{},
	}}
	h := NewCourseHandler(svc, logger.Nop())

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/course/getLesson/javascript/2", nil), "skill", "javascript", "lessonId", "2")
	rr := httptest.NewRecorder()
	h.GetLesson(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if svc.lastSkill != "javascript" || svc.lastID != "2" {
		t.Errorf("service called with %q/%q", svc.lastSkill, svc.lastID)
	}
	var body map[string]json.RawMessage
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body["lesson"]) != "null" || string(body["quiz"]) != "[]" {
		t.Errorf("lesson=%s quiz=%s", body["lesson"], body["quiz"])
	}
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"course not found", &services.CourseNotFoundError{Skill: "cobol"}, http.StatusNotFound, "COURSE_NOT_FOUND"},
		{"quiz not found", &services.NotFoundError{Message: "Quiz 9 not found"}, http.StatusNotFound, "NOT_FOUND"},
		{"bad ordinal", &services.ValidationError{Fields: map[string]string{"quizId": "must be a positive integer"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"load failure", &services.ResourceLoadError{Resource: "x", Err: errors.New("eof")}, http.StatusInternalServerError, "LOAD_ERROR"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewCourseHandler(&stubCourseService{err: tc.err}, logger.Nop())
			req := withParams(httptest.NewRequest(http.MethodGet, "/api/course/getQuiz/x/1", nil), "skill", "x", "quizId", "1")
			req.Header.Set("X-Request-ID", "req-1")
			rr := httptest.NewRecorder()
			h.GetQuiz(rr, req)

			if rr.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rr.Code)
			}
			var body models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tc.wantErr {
				t.Errorf("error code = %q, want %q", body.Error.Code, tc.wantErr)
			}
			if body.Error.RequestID != "req-1" {
				t.Errorf("request id = %q", body.Error.RequestID)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	if body["status"] != "Server is healthy!" {
		t.Errorf("status = %q", body["status"])
	}
}
