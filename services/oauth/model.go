package oauth

import (
	"fmt"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"
)

// AuthorizeParams are the query parameters of the authorize redirect.
type AuthorizeParams struct {
	State string `form:"state"`
}

// CallbackParams are the query parameters the vendor appends when redirecting back after consent.
type CallbackParams struct {
	Code             string `form:"code"`
	State            string `form:"state"`
	MerchantID       string `form:"merchant_id"`
	Error            string `form:"error"`
	ErrorDescription string `form:"error_description"`
}

func decodeQuery(values url.Values, dest interface{}) error {
	err := formcodec.NewDecoder().Decode(dest, values)
	if err != nil {
		return fmt.Errorf("error decoding query: %s", err)
	}
	return nil
}

// HelperPage is rendered by the oauth landing page.
type HelperPage struct {
	CallbackParams
	Command string
}

func (p CallbackParams) finishCommand() string {
	if p.Code == "" {
		return ""
	}
	parts := []string{"poscli connect finish", "--code " + p.Code}
	if p.State != "" {
		parts = append(parts, "--state "+p.State)
	}
	if p.MerchantID != "" {
		parts = append(parts, "--merchant-id "+p.MerchantID)
	}
	return strings.Join(parts, " ")
}
