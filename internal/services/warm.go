package services

import (
	"context"
	"fmt"

	"portfolio-backend/internal/worker"
)

// WarmJobs returns one job per course that builds its detail (filling the
// cache) and one per registered quiz. Failures surface as job errors so a
// broken document is reported at startup rather than on first request.
func (s *CourseService) WarmJobs() []worker.Job {
	var jobs []worker.Job
	for _, c := range s.store.Courses(context.Background()) {
		skill := c.ID
		jobs = append(jobs, worker.Job{
			Name: "course:" + skill,
			Run: func(ctx context.Context) error {
				detail, err := s.GetCourse(ctx, skill)
				if err != nil {
					return err
				}
				for _, l := range detail.Lessons {
					if l.Title == LessonLoadErrorTitle {
						return fmt.Errorf("lesson %d of %s failed to load", l.ID, skill)
					}
				}
				return nil
			},
		})
		for _, q := range c.Quiz {
			ordinal := q.Ordinal
			jobs = append(jobs, worker.Job{
				Name: fmt.Sprintf("quiz:%s:%d", skill, ordinal),
				Run: func(ctx context.Context) error {
					_, err := s.store.Quiz(ctx, skill, ordinal)
					return err
				},
			})
		}
	}
	return jobs
}
