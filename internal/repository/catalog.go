package repository

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"portfolio-backend/internal/models"
)

// CatalogFile is the path of the catalogue inside the content tree.
const CatalogFile = "catalog.yaml"

type catalogFile struct {
	Courses []catalogCourse `yaml:"courses"`
}

type catalogCourse struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Icon        string     `yaml:"icon"`
	Link        string     `yaml:"link"`
	Lessons     []docEntry `yaml:"lessons"`
	Quizzes     []docEntry `yaml:"quizzes"`
}

type docEntry struct {
	Ordinal int    `yaml:"ordinal"`
	Path    string `yaml:"path"`
}

type registry struct {
	courses []models.Course
	byID    map[string]int
	lessons map[string]map[int]string
	quizzes map[string]map[int]string
}

func parseCatalog(raw []byte) (*registry, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	reg := &registry{
		byID:    make(map[string]int, len(cf.Courses)),
		lessons: make(map[string]map[int]string, len(cf.Courses)),
		quizzes: make(map[string]map[int]string, len(cf.Courses)),
	}
	for _, cc := range cf.Courses {
		if cc.ID == "" {
			return nil, fmt.Errorf("catalogue: course %q has no id", cc.Name)
		}
		if _, dup := reg.byID[cc.ID]; dup {
			return nil, fmt.Errorf("catalogue: duplicate course id %q", cc.ID)
		}

		lessons, err := indexEntries(cc.ID, "lesson", cc.Lessons)
		if err != nil {
			return nil, err
		}
		for n := 1; n <= len(lessons); n++ {
			if _, ok := lessons[n]; !ok {
				return nil, fmt.Errorf("catalogue: course %q lessons must be numbered 1..%d, missing %d", cc.ID, len(lessons), n)
			}
		}
		quizzes, err := indexEntries(cc.ID, "quiz", cc.Quizzes)
		if err != nil {
			return nil, err
		}
		for n := range quizzes {
			if n > len(lessons) {
				return nil, fmt.Errorf("catalogue: course %q quiz %d has no matching lesson", cc.ID, n)
			}
		}

		course := models.Course{
			ID:          cc.ID,
			Name:        cc.Name,
			Description: cc.Description,
			Icon:        cc.Icon,
			Link:        cc.Link,
			Lessons:     make([]models.LessonRef, 0, len(lessons)),
			Quiz:        make([]models.QuizRef, 0, len(quizzes)),
		}
		for n := 1; n <= len(lessons); n++ {
			course.Lessons = append(course.Lessons, models.LessonRef{Ordinal: n})
		}
		for n := range quizzes {
			course.Quiz = append(course.Quiz, models.QuizRef{Ordinal: n})
		}
		sort.Slice(course.Quiz, func(i, j int) bool { return course.Quiz[i].Ordinal < course.Quiz[j].Ordinal })

		reg.byID[cc.ID] = len(reg.courses)
		reg.courses = append(reg.courses, course)
		reg.lessons[cc.ID] = lessons
		reg.quizzes[cc.ID] = quizzes
	}
	return reg, nil
}

func indexEntries(courseID, kind string, entries []docEntry) (map[int]string, error) {
	out := make(map[int]string, len(entries))
	for _, e := range entries {
		if e.Ordinal < 1 {
			return nil, fmt.Errorf("catalogue: course %q %s ordinal %d must be positive", courseID, kind, e.Ordinal)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("catalogue: course %q %s %d has no path", courseID, kind, e.Ordinal)
		}
		if _, dup := out[e.Ordinal]; dup {
			return nil, fmt.Errorf("catalogue: course %q has two %ss numbered %d", courseID, kind, e.Ordinal)
		}
		out[e.Ordinal] = e.Path
	}
	return out, nil
}
