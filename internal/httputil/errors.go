package httputil

import "errors"

// Errors for requests that cannot be bound. Handlers respond with 400.
var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)
