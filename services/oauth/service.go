package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/services/oauth/oauthclient"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

const (
	helperPagePath = "/oauth"
	callbackPath   = "/oauth/callback"
)

type service struct {
	oauthClient oauthclient.OauthClient
	logger      mylog.Logger
}

func newService(oauthClient oauthclient.OauthClient) *service {
	return &service{
		oauthClient: oauthClient,
		logger:      mylog.New("oauth"),
	}
}

func (s *service) authorizeURL(c context.Context, params AuthorizeParams, redirectURI string) (string, error) {
	if params.State == "" {
		return "", myerrors.NewInvalidInputError(errors.New("State is required"))
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Start oauth flow with callback %s", redirectURI)

	return s.oauthClient.ComposeAuthURL(c, params.State, redirectURI), nil
}

// callbackRedirect forwards the outcome of the consent screen to the helper page.
func (s *service) callbackRedirect(c context.Context, params CallbackParams) string {
	s.logger.Log(c, params.MerchantID, mylog.SeverityInfo, "OAuth callback received: code present:%t, merchant:%s, error:%s",
		params.Code != "", params.MerchantID, params.Error)

	values := url.Values{}
	if params.Code != "" {
		values.Set("code", params.Code)
		if params.State != "" {
			values.Set("state", params.State)
		}
		if params.MerchantID != "" {
			values.Set("merchant_id", params.MerchantID)
		}
	} else if params.Error != "" {
		values.Set("error", params.Error)
		if params.State != "" {
			values.Set("state", params.State)
		}
	}

	if len(values) == 0 {
		return helperPagePath
	}
	return fmt.Sprintf("%s?%s", helperPagePath, values.Encode())
}

func (s *service) exchangeToken(c context.Context, req posapi.TokenRequest) (posapi.TokenResponse, error) {
	if req.Code == "" {
		return posapi.TokenResponse{}, myerrors.NewInvalidInputError(errors.New("Authorization code is required"))
	}

	s.logger.Log(c, req.MerchantID, mylog.SeverityInfo, "Exchange authorization code for merchant %s (redirect %s)", req.MerchantID, req.RedirectURI)

	resp, err := s.oauthClient.GetAccessToken(c, oauthclient.GetTokenRequest{
		Code: req.Code,
	})
	if err != nil {
		s.logger.Log(c, req.MerchantID, mylog.SeverityError, "Token exchange failed: %s", err)
		return posapi.TokenResponse{}, myerrors.NewVendorError(errors.New("v2/OAuth token exchange failed"), myerrors.GetMessage(err))
	}

	s.logger.Log(c, req.MerchantID, mylog.SeverityInfo, "Token exchange successful: access token %s, refresh token present:%t, expires at %d",
		mylog.Redact(resp.AccessToken), resp.RefreshToken != "", resp.AccessTokenExpiration)

	return posapi.TokenResponse{
		Success:                true,
		AccessToken:            resp.AccessToken,
		RefreshToken:           resp.RefreshToken,
		MerchantID:             req.MerchantID,
		AccessTokenExpiration:  resp.AccessTokenExpiration,
		RefreshTokenExpiration: resp.RefreshTokenExpiration,
	}, nil
}

func (s *service) refreshToken(c context.Context, req posapi.RefreshRequest) (posapi.TokenResponse, error) {
	if req.RefreshToken == "" {
		return posapi.TokenResponse{}, myerrors.NewInvalidInputError(errors.New("Refresh token is required"))
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Refresh access token")

	resp, err := s.oauthClient.RefreshAccessToken(c, oauthclient.RefreshTokenRequest{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Token refresh failed: %s", err)
		return posapi.TokenResponse{}, myerrors.NewVendorError(errors.New("v2/OAuth token refresh failed"), myerrors.GetMessage(err))
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Token refresh successful: new refresh token:%t, expires at %d",
		resp.RefreshToken != "", resp.AccessTokenExpiration)

	return posapi.TokenResponse{
		Success:                true,
		AccessToken:            resp.AccessToken,
		RefreshToken:           resp.RefreshToken,
		AccessTokenExpiration:  resp.AccessTokenExpiration,
		RefreshTokenExpiration: resp.RefreshTokenExpiration,
	}, nil
}
