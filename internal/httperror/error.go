// Package httperror contains the error body sent by handlers outside
// of the resource controllers.
package httperror

type Error struct {
	Message string `json:"error" example:"this HTTP method is not allowed for the endpoint you called"`
}

// New returns the body for the error.
func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
