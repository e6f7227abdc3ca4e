package myerrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		httpStatus int
		errorText  string
	}{
		{
			name:       "No http error",
			in:         myErr,
			httpStatus: 500,
			errorText:  "my error",
		},
		{
			name:       "Invalid input error",
			in:         NewInvalidInputError(myErr),
			httpStatus: 400,
			errorText:  "status: 400, err: my error",
		},
		{
			name:       "Invalid input errorf",
			in:         NewInvalidInputErrorf("%s: %d", myErr.Error(), 123),
			httpStatus: 400,
			errorText:  "status: 400, err: my error: 123",
		},
		{
			name:       "Auth required error",
			in:         NewAuthRequiredError(myErr),
			httpStatus: 401,
			errorText:  "status: 401, err: my error",
		},
		{
			name:       "Unauthorized error",
			in:         NewUnauthorizedError(myErr),
			httpStatus: 401,
			errorText:  "status: 401, err: my error",
		},
		{
			name:       "Not found error",
			in:         NewNotFoundError(myErr),
			httpStatus: 404,
			errorText:  "status: 404, err: my error",
		},
		{
			name:       "Vendor error",
			in:         NewVendorError(myErr, `{"message":"boom"}`),
			httpStatus: 500,
			errorText:  "status: 500, err: my error",
		},
		{
			name:       "Internal error",
			in:         NewInternalError(myErr),
			httpStatus: 500,
			errorText:  "status: 500, err: my error",
		},
		{
			name:       "Network error",
			in:         NewNetworkError(myErr),
			httpStatus: 503,
			errorText:  "status: 503, err: my error",
		},
		{
			name:       "Wrapped not found error",
			in:         fmt.Errorf("error deleting line item: %w", NewNotFoundError(myErr)),
			httpStatus: 404,
			errorText:  "error deleting line item: status: 404, err: my error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpStatus := GetHTTPStatus(tc.in)
			if httpStatus != tc.httpStatus {
				t.Errorf("HttpStatus: got %v, want %v", httpStatus, tc.httpStatus)
			}
			if tc.errorText != tc.in.Error() {
				t.Errorf("%s: ErrorText: got %v, want %v", tc.name, tc.in.Error(), tc.errorText)
			}
		})
	}
}

func TestMessageAndDetails(t *testing.T) {
	t.Run("Vendor error keeps details", func(t *testing.T) {
		err := fmt.Errorf("pay: %w", NewVendorError(fmt.Errorf("Failed to process payment"), `{"message":"tender disabled"}`))
		assert.Equal(t, "Failed to process payment", GetMessage(err))
		assert.Equal(t, `{"message":"tender disabled"}`, GetDetails(err))
	})

	t.Run("Plain error", func(t *testing.T) {
		err := fmt.Errorf("plain")
		assert.Equal(t, "plain", GetMessage(err))
		assert.Equal(t, "", GetDetails(err))
		assert.False(t, IsNotFound(err))
	})

	t.Run("Classification", func(t *testing.T) {
		assert.True(t, IsNotFound(NewNotFoundError(fmt.Errorf("x"))))
		assert.True(t, IsUnauthorized(NewUnauthorizedError(fmt.Errorf("x"))))
		assert.False(t, IsUnauthorized(nil))
	})
}
