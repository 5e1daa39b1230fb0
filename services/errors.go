package services

// ServiceError represents a typed error with an HTTP status code. All store
// failures are degraded to one of these at the service boundary; the original
// error detail is logged, never returned to the caller.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func errNotFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: 404, Message: msg}
}

func errBadRequest(msg string) *ServiceError {
	return &ServiceError{StatusCode: 400, Message: msg}
}

func errConflict(msg string) *ServiceError {
	return &ServiceError{StatusCode: 409, Message: msg}
}

func errInternal(msg string) *ServiceError {
	return &ServiceError{StatusCode: 500, Message: msg}
}
