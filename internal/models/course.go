package models

// Course is a skill track. Ordinal n of Lessons/Quiz is "lesson n" in URLs.
type Course struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Link        string      `json:"link"`
	Lessons     []LessonRef `json:"lessons"`
	Quiz        []QuizRef   `json:"quiz"`
}

// LessonRef locates a lesson document inside the content store.
type LessonRef struct {
	Ordinal int `json:"ordinal"`
}

// QuizRef locates a quiz document inside the content store.
type QuizRef struct {
	Ordinal int `json:"ordinal"`
}

// HasQuiz reports whether a quiz is registered for the given ordinal.
func (c Course) HasQuiz(ordinal int) bool {
	for _, q := range c.Quiz {
		if q.Ordinal == ordinal {
			return true
		}
	}
	return false
}

type CourseSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Link         string `json:"link"`
	TotalLessons int    `json:"totalLessons"`
	TotalQuizzes int    `json:"totalQuizzes"`
}

type LessonSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Chapters    int    `json:"chapters"`
}

// CourseDetail is a course with its lesson refs expanded for catalogue display.
type CourseDetail struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Link        string          `json:"link"`
	Lessons     []LessonSummary `json:"lessons"`
	Quiz        []QuizRef       `json:"quiz"`
}

type LessonResponse struct {
	// Ordinal is the lesson number as resolved from the request.
	Ordinal int            `json:"-"`
	Course  Course         `json:"course"`
	Lesson  *Lesson        `json:"lesson"`
	Quiz    []QuizQuestion `json:"quiz"`
}
