package apierror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to routes instead of raw
// errors. The value itself is the JSON body; Code is the HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

// Error kinds. Each kind maps to exactly one status code, so clients can
// switch on either.
const (
	KindBadRequest      = "bad_request"
	KindUnauthorized    = "unauthorized"
	KindForbidden       = "forbidden"
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindUpstreamFailure = "upstream_failure"
	KindInternal        = "internal"
)

type apiError struct {
	status  int
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *apiError) Code() int     { return e.status }
func (e *apiError) Error() string { return e.Message }

var (
	InternalServerError = New(http.StatusInternalServerError, KindInternal, "something went wrong on our side")
	MalformedBodyError  = New(http.StatusBadRequest, KindBadRequest, "request body could not be parsed")
	MissingTokenError   = New(http.StatusUnauthorized, KindUnauthorized, "missing bearer credential")
	InvalidTokenError   = New(http.StatusForbidden, KindForbidden, "credential is invalid or expired")
	NotFoundError       = New(http.StatusNotFound, KindNotFound, "resource not found")
	ForbiddenError      = New(http.StatusForbidden, KindForbidden, "you are not allowed to do that")
)

func New(status int, kind, message string) ErrorResponse {
	return &apiError{status: status, Kind: kind, Message: message}
}

func NewConflict(message string) ErrorResponse {
	return New(http.StatusConflict, KindConflict, message)
}

func NewForbidden(message string) ErrorResponse {
	return New(http.StatusForbidden, KindForbidden, message)
}

func NewNotFound(message string) ErrorResponse {
	return New(http.StatusNotFound, KindNotFound, message)
}

func NewUpstreamFailure(message string) ErrorResponse {
	return New(http.StatusBadGateway, KindUpstreamFailure, message)
}

func NewMissingParamError(name string) ErrorResponse {
	return New(http.StatusBadRequest, KindBadRequest, fmt.Sprintf("missing required parameter %q", name))
}

// FromValidationError flattens a validator error into a single
// bad-request response naming the offending fields.
func FromValidationError(err error) ErrorResponse {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return MalformedBodyError
	}

	fields := make([]string, len(verrs))
	for i, ve := range verrs {
		fields[i] = fmt.Sprintf("%s (%s)", ve.Field(), ve.Tag())
	}
	msg := "invalid fields: " + strings.Join(fields, ", ")
	return New(http.StatusBadRequest, KindBadRequest, msg)
}
