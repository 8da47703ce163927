package services

// Service error taxonomy. Handlers map these to HTTP statuses in one place.

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

// ExternalServiceError covers the AI provider being unreachable, replying
// with an unparseable payload, or not being configured at all.
type ExternalServiceError struct{ Message string }

func (e *ExternalServiceError) Error() string { return e.Message }
