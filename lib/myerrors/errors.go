package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
	details  string
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

// NewAuthRequiredError is returned when a call carries no usable credential at all.
func NewAuthRequiredError(err error) *httpError {
	return newError(http.StatusUnauthorized, err)
}

// NewUnauthorizedError is returned when the vendor rejected the credential that was used.
func NewUnauthorizedError(err error) *httpError {
	return newError(http.StatusUnauthorized, err)
}

// NewVendorError wraps a non-2xx answer of the vendor api, details holds the vendor body.
func NewVendorError(err error, details string) *httpError {
	e := newError(http.StatusInternalServerError, err)
	e.details = details
	return e
}

func NewNetworkError(err error) *httpError {
	e := newError(http.StatusServiceUnavailable, err)
	e.details = err.Error()
	return e
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}

// GetMessage returns the human readable part of the error without the status prefix.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var he *httpError
	if errors.As(err, &he) {
		return he.err.Error()
	}
	return err.Error()
}

func GetDetails(err error) string {
	var he *httpError
	if err != nil && errors.As(err, &he) {
		return he.details
	}
	return ""
}

func IsNotFound(err error) bool {
	return GetHTTPStatus(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	return GetHTTPStatus(err) == http.StatusUnauthorized
}
