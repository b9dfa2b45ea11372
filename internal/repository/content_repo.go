package repository

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
)

//go:embed schema/*.json
var schemaFS embed.FS

// ContentRepo resolves (skill, ordinal) keys to lesson and quiz documents.
// The registry is built once in NewContentRepo and never mutated, so a
// ContentRepo is safe for concurrent use.
type ContentRepo struct {
	fsys   fs.FS
	reg    *registry
	lesson *gojsonschema.Schema
	quiz   *gojsonschema.Schema
	log    *logger.Logger
}

func NewContentRepo(fsys fs.FS, log *logger.Logger) (*ContentRepo, error) {
	raw, err := fs.ReadFile(fsys, CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	reg, err := parseCatalog(raw)
	if err != nil {
		return nil, err
	}

	lessonSchema, err := loadSchema("schema/lesson.schema.json")
	if err != nil {
		return nil, err
	}
	quizSchema, err := loadSchema("schema/quiz.schema.json")
	if err != nil {
		return nil, err
	}

	r := &ContentRepo{fsys: fsys, reg: reg, lesson: lessonSchema, quiz: quizSchema, log: log}
	r.checkPaths()
	return r, nil
}

func loadSchema(name string) (*gojsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return s, nil
}

// checkPaths warns about registered documents that are missing. They are
// still served as load failures at request time.
func (r *ContentRepo) checkPaths() {
	for _, c := range r.reg.courses {
		for _, set := range []map[int]string{r.reg.lessons[c.ID], r.reg.quizzes[c.ID]} {
			for n, p := range set {
				if _, err := fs.Stat(r.fsys, p); err != nil {
					r.log.Warn("Catalogue entry points at a missing document", "course", c.ID, "ordinal", n, "path", p)
				}
			}
		}
	}
}

// Courses returns every course in catalogue order.
func (r *ContentRepo) Courses(ctx context.Context) []models.Course {
	out := make([]models.Course, len(r.reg.courses))
	copy(out, r.reg.courses)
	return out
}

func (r *ContentRepo) Course(ctx context.Context, id string) (models.Course, bool) {
	i, ok := r.reg.byID[id]
	if !ok {
		return models.Course{}, false
	}
	return r.reg.courses[i], true
}

func (r *ContentRepo) Lesson(ctx context.Context, skill string, ordinal int) (*models.Lesson, error) {
	path, ok := r.reg.lessons[skill][ordinal]
	if !ok {
		return nil, ErrNotRegistered
	}
	raw, err := r.read(ctx, path, r.lesson)
	if err != nil {
		return nil, err
	}
	var l models.Lesson
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &l, nil
}

func (r *ContentRepo) read(ctx context.Context, path string, schema *gojsonschema.Schema) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(r.fsys, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &LoadError{Path: path, Err: errors.New(strings.Join(msgs, "; "))}
	}
	return raw, nil
}
