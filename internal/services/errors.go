package services

import "fmt"

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type CourseNotFoundError struct{ Skill string }

func (e *CourseNotFoundError) Error() string { return fmt.Sprintf("Course %q not found", e.Skill) }

// ResourceLoadError means a registered document exists but could not be
// served. Callers that can degrade to a partial result never see it.
type ResourceLoadError struct {
	Resource string
	Err      error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }
