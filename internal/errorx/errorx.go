package errorx

import (
	"context"
	"errors"
	"net/http"
)

// CodeError carries an HTTP status alongside a user-visible message. Input
// errors map to 400, everything else raised by the pipeline maps to 500.
type CodeError struct {
	Code int    `json:"-"`
	Msg  string `json:"error"`
}

func (e *CodeError) Error() string { return e.Msg }

// NewInputError reports a client-side problem detected before the pipeline runs.
func NewInputError(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// NewServerError reports a pipeline or transport failure.
func NewServerError(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// Handler adapts CodeError for httpx.SetErrorHandlerCtx. Unknown errors are
// treated as server errors carrying their description.
func Handler(_ context.Context, err error) (int, any) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code, ce
	}
	return http.StatusInternalServerError, &CodeError{
		Code: http.StatusInternalServerError,
		Msg:  err.Error(),
	}
}
