package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/worker"
)

func TestWarmJobs_ReportsBrokenDocuments(t *testing.T) {
	svc := NewCourseService(newStub(), nil, logger.Nop())

	jobs := svc.WarmJobs()
	require.Len(t, jobs, 3)

	results := worker.NewPool(2, logger.Nop()).Run(context.Background(), jobs)
	byName := map[string]error{}
	for _, r := range results {
		byName[r.Name] = r.Err
	}
	assert.Error(t, byName["course:go"], "lesson 2 is broken")
	assert.NoError(t, byName["quiz:go:2"])
	assert.Error(t, byName["quiz:go:3"])
}

func TestWarmJobs_EmbeddedContentIsClean(t *testing.T) {
	svc := newEmbeddedService(t)

	for _, r := range worker.NewPool(4, logger.Nop()).Run(context.Background(), svc.WarmJobs()) {
		assert.NoError(t, r.Err, r.Name)
	}
}
