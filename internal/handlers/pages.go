package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/navigator"
	"portfolio-backend/internal/quiz"
	"portfolio-backend/internal/render"
	"portfolio-backend/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// lessonTrigger is the element the floating lesson nav stays hidden behind.
const lessonTrigger = "lesson-intro"

type crumb struct {
	Label string
	Href  string
}

type page struct {
	Title  string
	Crumbs []crumb
	Data   interface{}
}

type lessonPage struct {
	Course       models.Course
	Lesson       *render.Lesson
	TOC          []navigator.Entry
	NavbarHeight float64
	Tolerance    float64
	TriggerID    string
	Active       string
	NavVisible   bool
	Quiz         *quizView
	PrevHref     string
	NextHref     string
}

type quizView struct {
	Phase         string
	Type          string
	Question      models.QuizQuestion
	CodeHTML      template.HTML
	Number        int
	Total         int
	ProgressWidth string
	Feedback      *quiz.Feedback
	State         string
	Score         int
	Percent       int
	Headline      string
	Message       string
	Action        string
	NavbarHeight  float64
}

// PageHandler serves the server-rendered learn pages. Quiz progress lives in
// the form posted back by the browser; nothing is kept between requests.
type PageHandler struct {
	courses  CourseService
	renderer *render.Renderer
	log      *logger.Logger
	pages    map[string]*template.Template
}

func NewPageHandler(courses CourseService, renderer *render.Renderer, log *logger.Logger) (*PageHandler, error) {
	h := &PageHandler{courses: courses, renderer: renderer, log: log, pages: make(map[string]*template.Template)}
	for _, name := range []string{"catalogue", "course", "lesson", "notfound"} {
		t, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		h.pages[name] = t
	}
	return h, nil
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, p page) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "base", p); err != nil {
		h.log.Error("Failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *PageHandler) Catalogue(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "catalogue", page{
		Title:  "Courses",
		Crumbs: []crumb{{Label: "Learn"}},
		Data:   h.courses.ListCourses(r.Context()),
	})
}

func (h *PageHandler) Course(w http.ResponseWriter, r *http.Request) {
	skill := chi.URLParam(r, "skill")
	detail, err := h.courses.GetCourse(r.Context(), skill)
	if err != nil && h.notFound(w, r, err) {
		return
	}

	p := page{Crumbs: []crumb{{Label: "Learn", Href: "/learn"}}}
	if detail != nil {
		p.Title = detail.Name
		p.Crumbs = append(p.Crumbs, crumb{Label: detail.Name})
		p.Data = detail
	}
	h.render(w, http.StatusOK, "course", p)
}

func (h *PageHandler) Lesson(w http.ResponseWriter, r *http.Request) {
	h.lesson(w, r, http.StatusOK, nil)
}

// Quiz applies one quiz transition posted from the lesson page and renders
// the page again with the new state.
func (h *PageHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("Invalid quiz form", "path", r.URL.Path, "error", err)
		h.lesson(w, r, http.StatusBadRequest, nil)
		return
	}
	h.lesson(w, r, http.StatusOK, func(questions []models.QuizQuestion) *quiz.Session {
		return applyQuizForm(questions, r.PostForm.Get("state"), r.PostForm.Get("action"), r.PostForm.Get("answer"))
	})
}

func applyQuizForm(questions []models.QuizQuestion, token, action, answer string) *quiz.Session {
	sess := quiz.New(questions)
	if st, err := quiz.DecodeState(token); err == nil {
		if restored, err := quiz.Restore(questions, st); err == nil {
			sess = restored
		}
	}

	// Rejected transitions leave the state as it was.
	switch action {
	case "submit":
		if q, ok := sess.Current(); ok {
			if a, err := quiz.ParseAnswer(q, answer); err == nil {
				_, _ = sess.Submit(a)
			}
		}
	case "next":
		_ = sess.Advance()
	case "reset":
		sess.Reset()
	}
	return sess
}

func (h *PageHandler) lesson(w http.ResponseWriter, r *http.Request, status int, session func([]models.QuizQuestion) *quiz.Session) {
	skill, lessonID := chi.URLParam(r, "skill"), chi.URLParam(r, "lessonId")
	resp, err := h.courses.GetLesson(r.Context(), skill, lessonID)
	if err != nil && h.notFound(w, r, err) {
		return
	}

	p := page{Crumbs: []crumb{{Label: "Learn", Href: "/learn"}}}
	data := lessonPage{TriggerID: lessonTrigger}
	nav := navigator.New(lessonTrigger)
	data.NavbarHeight, data.Tolerance = nav.NavbarHeight, nav.Tolerance

	if resp != nil {
		ordinal := resp.Ordinal
		data.Course = resp.Course
		p.Crumbs = append(p.Crumbs, crumb{Label: resp.Course.Name, Href: "/learn/" + skill})
		if ordinal > 1 {
			data.PrevHref = fmt.Sprintf("/learn/%s/lesson/%d", skill, ordinal-1)
		}
		if ordinal < len(resp.Course.Lessons) {
			data.NextHref = fmt.Sprintf("/learn/%s/lesson/%d", skill, ordinal+1)
		}

		if resp.Lesson != nil {
			rendered := h.renderer.Lesson(resp.Lesson)
			data.Lesson = &rendered
			data.TOC = navigator.TOC(resp.Lesson)
			// Initial nav state at the top of the page; the script refines it.
			top := nav.Estimate(&rendered, navigator.DefaultViewportHeight).Project(0)
			data.Active = nav.Update(top)
			data.NavVisible = nav.Visible(top)
			p.Title = resp.Lesson.Title
			p.Crumbs = append(p.Crumbs, crumb{Label: resp.Lesson.Title})
		}

		sess := quiz.New(resp.Quiz)
		if session != nil {
			sess = session(resp.Quiz)
		}
		data.Quiz = h.quizView(sess, fmt.Sprintf("/learn/%s/lesson/%d/quiz#section-quiz", skill, ordinal))
		if data.Quiz != nil {
			data.Quiz.NavbarHeight = nav.NavbarHeight
		}
	}

	p.Data = data
	h.render(w, status, "lesson", p)
}

func (h *PageHandler) quizView(sess *quiz.Session, action string) *quizView {
	st := sess.State()
	if st.Phase == quiz.Empty {
		return nil
	}
	v := &quizView{
		Phase:         st.Phase.String(),
		Total:         sess.Total(),
		Number:        st.Index + 1,
		ProgressWidth: strconv.FormatFloat(sess.ProgressPercent(), 'f', 0, 64),
		Feedback:      st.Feedback,
		State:         st.Encode(),
		Score:         st.Score,
		Action:        action,
	}
	if st.Phase == quiz.Finished {
		v.Percent = sess.FinalPercent()
		v.Headline = sess.Tier().Headline()
		v.Message = sess.Tier().Message()
		return v
	}

	q, _ := sess.Current()
	v.Question = q
	v.Type = string(q.Type)
	if q.Code != "" {
		if b, ok := h.renderer.Block(models.CodeBlock{Content: q.Code}); ok {
			v.CodeHTML = b.HTML
		}
	}
	return v
}

// notFound renders the not-found page for lookup errors and reports whether
// it did. Load failures are left to the caller's placeholder.
func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request, err error) bool {
	var (
		courseErr *services.CourseNotFoundError
		missing   *services.NotFoundError
		invalid   *services.ValidationError
	)
	if errors.As(err, &courseErr) || errors.As(err, &missing) || errors.As(err, &invalid) {
		h.NotFound(w, r)
		return true
	}
	h.log.Warn("Rendering placeholder after load failure", "path", r.URL.Path, "error", err)
	return false
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "notfound", page{Title: "Not found"})
}
