package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/middleware"
)

func New(
	log *logger.Logger,
	courseHandler *handlers.CourseHandler,
	pageHandler *handlers.PageHandler,
	limiter *middleware.RateLimiter,
	frontendURLs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(frontendURLs))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/learn", http.StatusFound)
	})
	r.Handle("/static/*", handlers.Static())

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Get("/health", handlers.Health)

		// ──── Course Routes ────
		r.Route("/course", func(r chi.Router) {
			r.Get("/getCourses", courseHandler.GetCourses)
			r.Get("/getCourse/{skill}", courseHandler.GetCourse)
			r.Get("/getLesson/{skill}/{lessonId}", courseHandler.GetLesson)
			r.Get("/getQuiz/{skill}/{quizId}", courseHandler.GetQuiz)
		})
	})

	// ──── Learn Pages ────
	r.Route("/learn", func(r chi.Router) {
		r.Get("/", pageHandler.Catalogue)
		r.Get("/{skill}", pageHandler.Course)
		r.Get("/{skill}/lesson/{lessonId}", pageHandler.Lesson)
		r.Post("/{skill}/lesson/{lessonId}/quiz", pageHandler.Quiz)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			handlers.NotFoundJSON(w, req)
			return
		}
		pageHandler.NotFound(w, req)
	})

	return r
}

// DefaultRateLimiter builds the per-IP limiter for the API from a per-minute budget.
func DefaultRateLimiter(perMinute int) *middleware.RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(perMinute, time.Minute)
}
