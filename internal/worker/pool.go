// Package worker runs batches of independent jobs on a fixed number of
// goroutines.
package worker

import (
	"context"
	"fmt"
	"sync"

	"portfolio-backend/internal/logger"
)

type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result is the outcome of one job.
type Result struct {
	Name string
	Err  error
}

type Pool struct {
	workerCount int
	log         *logger.Logger
}

func NewPool(workerCount int, log *logger.Logger) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Pool{workerCount: workerCount, log: log}
}

// Run executes jobs and returns their results in job order. Jobs still
// queued when ctx is cancelled report ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	queue := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for idx := range queue {
				results[idx] = p.run(ctx, id, jobs[idx])
			}
		}(i)
	}

	for idx := range jobs {
		select {
		case queue <- idx:
		case <-ctx.Done():
			for rest := idx; rest < len(jobs); rest++ {
				results[rest] = Result{Name: jobs[rest].Name, Err: ctx.Err()}
			}
			close(queue)
			wg.Wait()
			return results
		}
	}
	close(queue)
	wg.Wait()
	return results
}

func (p *Pool) run(ctx context.Context, id int, job Job) (res Result) {
	res.Name = job.Name
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
		if res.Err != nil {
			p.log.Warn("Job failed", "worker", id, "job", job.Name, "error", res.Err)
		}
	}()
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	res.Err = job.Run(ctx)
	return res
}
