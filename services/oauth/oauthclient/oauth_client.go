package oauthclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/MarcGrol/cloverconnect/lib/myhttpclient"
)

type GetTokenRequest struct {
	Code string
}

type RefreshTokenRequest struct {
	RefreshToken string
}

// GetTokenResponse is the answer of the vendor token endpoints, expirations are unix seconds.
type GetTokenResponse struct {
	AccessToken            string `json:"access_token"`
	RefreshToken           string `json:"refresh_token,omitempty"`
	AccessTokenExpiration  int64  `json:"access_token_expiration,omitempty"`
	RefreshTokenExpiration int64  `json:"refresh_token_expiration,omitempty"`
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Code         string `json:"code"`
}

type refreshRequest struct {
	ClientID     string `json:"client_id"`
	RefreshToken string `json:"refresh_token"`
}

type vendorFailure struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

//go:generate mockgen -source=oauth_client.go -package oauthclient -destination oauth_client_mock.go OauthClient
type OauthClient interface {
	ComposeAuthURL(c context.Context, state string, redirectURI string) string
	GetAccessToken(c context.Context, req GetTokenRequest) (GetTokenResponse, error)
	RefreshAccessToken(c context.Context, req RefreshTokenRequest) (GetTokenResponse, error)
}

type oauthClient struct {
	appID     string
	appSecret string
	baseURL   string
	sender    myhttpclient.HTTPSender
}

func NewOAuthClient(appID string, appSecret string, baseURL string, sender myhttpclient.HTTPSender) *oauthClient {
	return &oauthClient{
		appID:     appID,
		appSecret: appSecret,
		baseURL:   baseURL,
		sender:    sender,
	}
}

func (oc oauthClient) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     oc.appID,
		ClientSecret: oc.appSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  oc.baseURL + "/oauth/v2/authorize",
			TokenURL: oc.baseURL + "/oauth/v2/token",
		},
		RedirectURL: redirectURI,
	}
}

func (oc oauthClient) ComposeAuthURL(c context.Context, state string, redirectURI string) string {
	/* Example:
	https://sandbox.dev.clover.com/oauth/v2/authorize
		?client_id=APP123
		&redirect_uri=http%3A%2F%2Flocalhost%3A3000%2Foauth%2Fcallback
		&response_type=code
		&state=4f1c...
	*/
	return oc.config(redirectURI).AuthCodeURL(state)
}

func (oc oauthClient) GetAccessToken(c context.Context, req GetTokenRequest) (GetTokenResponse, error) {
	requestBody, err := json.Marshal(tokenRequest{
		ClientID:     oc.appID,
		ClientSecret: oc.appSecret,
		Code:         req.Code,
	})
	if err != nil {
		return GetTokenResponse{}, fmt.Errorf("error marshalling token request: %s", err)
	}

	return oc.post(c, oc.baseURL+"/oauth/v2/token", requestBody, "No access token received from v2/OAuth")
}

func (oc oauthClient) RefreshAccessToken(c context.Context, req RefreshTokenRequest) (GetTokenResponse, error) {
	requestBody, err := json.Marshal(refreshRequest{
		ClientID:     oc.appID,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return GetTokenResponse{}, fmt.Errorf("error marshalling refresh request: %s", err)
	}

	return oc.post(c, oc.baseURL+"/oauth/v2/refresh", requestBody, "No access token received from v2/OAuth refresh")
}

func (oc oauthClient) post(c context.Context, url string, requestBody []byte, missingTokenMessage string) (GetTokenResponse, error) {
	httpRespCode, respBody, err := oc.sender.Send(c, http.MethodPost, url, requestBody)
	if err != nil {
		return GetTokenResponse{}, err
	}

	if httpRespCode < 200 || httpRespCode >= 300 {
		return GetTokenResponse{}, errors.New(failureMessage(httpRespCode, respBody))
	}

	resp := GetTokenResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return GetTokenResponse{}, fmt.Errorf("error parsing response: %s", err)
	}

	if resp.AccessToken == "" {
		return GetTokenResponse{}, errors.New(missingTokenMessage)
	}

	return resp, nil
}

func failureMessage(httpRespCode int, respBody []byte) string {
	failure := vendorFailure{}
	err := json.Unmarshal(respBody, &failure)
	if err == nil {
		if failure.Message != "" {
			return failure.Message
		}
		if failure.Error != "" {
			return failure.Error
		}
	}
	return fmt.Sprintf("Request failed with status code %d", httpRespCode)
}
