package myhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// DecodeJSONBody decodes the request body into dest, an empty body leaves dest untouched.
func DecodeJSONBody(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dest)
	if err != nil && err != io.EOF {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err))
	}
	return nil
}
