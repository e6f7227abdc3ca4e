package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MarcGrol/cloverconnect/lib/myhttp"
	"github.com/MarcGrol/cloverconnect/lib/myhttpclient"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

var (
	ErrExchange                 = errors.New("token exchange failed")
	ErrRefresh                  = errors.New("token refresh failed")
	ErrCSRFMismatch             = errors.New("invalid state parameter: possible CSRF attack")
	ErrReauthenticationRequired = errors.New("re-authentication required")
)

//go:generate mockgen -source=exchange.go -package session -destination exchange_mock.go TokenExchanger
type TokenExchanger interface {
	Exchange(c context.Context, code string, redirectURI string, merchantID string) (posapi.TokenResponse, error)
	Refresh(c context.Context, refreshToken string) (posapi.TokenResponse, error)
}

// exchangeClient talks to the token endpoints of the relay, which adds the application secret.
type exchangeClient struct {
	relayURL string
	sender   myhttpclient.HTTPSender
}

func NewExchangeClient(relayURL string, sender myhttpclient.HTTPSender) *exchangeClient {
	return &exchangeClient{
		relayURL: relayURL,
		sender:   sender,
	}
}

func (ec *exchangeClient) Exchange(c context.Context, code string, redirectURI string, merchantID string) (posapi.TokenResponse, error) {
	resp, err := ec.post(c, "/api/oauth/token", posapi.TokenRequest{
		Code:        code,
		RedirectURI: redirectURI,
		MerchantID:  merchantID,
	})
	if err != nil {
		return posapi.TokenResponse{}, fmt.Errorf("%w: %w", ErrExchange, err)
	}
	if resp.MerchantID == "" {
		resp.MerchantID = merchantID
	}
	return resp, nil
}

func (ec *exchangeClient) Refresh(c context.Context, refreshToken string) (posapi.TokenResponse, error) {
	resp, err := ec.post(c, "/api/oauth/refresh", posapi.RefreshRequest{
		RefreshToken: refreshToken,
	})
	if err != nil {
		return posapi.TokenResponse{}, fmt.Errorf("%w: %w", ErrRefresh, err)
	}
	return resp, nil
}

func (ec *exchangeClient) post(c context.Context, path string, req any) (posapi.TokenResponse, error) {
	requestBody, err := json.Marshal(req)
	if err != nil {
		return posapi.TokenResponse{}, fmt.Errorf("error marshalling request: %s", err)
	}

	httpRespCode, respBody, err := ec.sender.Send(c, http.MethodPost, ec.relayURL+path, requestBody)
	if err != nil {
		return posapi.TokenResponse{}, err
	}

	if httpRespCode < 200 || httpRespCode >= 300 {
		return posapi.TokenResponse{}, relayFailure(httpRespCode, respBody)
	}

	resp := posapi.TokenResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return posapi.TokenResponse{}, fmt.Errorf("error parsing response: %s", err)
	}
	if !resp.Success || resp.AccessToken == "" {
		return posapi.TokenResponse{}, errors.New("no access token received")
	}

	return resp, nil
}

// RelayError is a failure answer of the relay, message and details are kept verbatim.
type RelayError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *RelayError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func relayFailure(httpRespCode int, respBody []byte) error {
	failure := myhttp.ErrorResponse{}
	err := json.Unmarshal(respBody, &failure)
	if err != nil || failure.Error == "" {
		return &RelayError{
			StatusCode: httpRespCode,
			Message:    fmt.Sprintf("Request failed with status code %d", httpRespCode),
		}
	}
	return &RelayError{
		StatusCode: httpRespCode,
		Message:    failure.Error,
		Details:    failure.Details,
	}
}
