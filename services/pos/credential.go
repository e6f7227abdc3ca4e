package pos

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
)

type CredentialSource int

const (
	// SourceOAuthSession is a bearer token obtained by the caller via the oauth flow
	SourceOAuthSession CredentialSource = iota + 1
	// SourceStaticConfig is the token and merchant configured on the server
	SourceStaticConfig
)

func (s CredentialSource) String() string {
	switch s {
	case SourceOAuthSession:
		return "oauth-session"
	case SourceStaticConfig:
		return "static-config"
	default:
		return "none"
	}
}

type resolvedCredential struct {
	Source CredentialSource
	posclient.Credential
}

// resolveCredential picks the credential of a request exactly once: an explicit bearer token wins,
// otherwise the static server configuration is used. Having neither is rejected before any vendor call.
func resolveCredential(r *http.Request, static posclient.Credential, pathMerchantID string) (resolvedCredential, error) {
	if token := bearerToken(r); token != "" {
		merchantID := pathMerchantID
		if merchantID == "" {
			merchantID = r.Header.Get("X-Merchant-Id")
		}
		if merchantID == "" {
			return resolvedCredential{}, myerrors.NewAuthRequiredError(errors.New("No merchant ID available. Please provide the X-Merchant-Id header."))
		}
		return resolvedCredential{
			Source:     SourceOAuthSession,
			Credential: posclient.Credential{AccessToken: token, MerchantID: merchantID},
		}, nil
	}

	if static.AccessToken == "" {
		return resolvedCredential{}, myerrors.NewAuthRequiredError(errors.New("Authentication required"))
	}

	merchantID := pathMerchantID
	if merchantID == "" {
		merchantID = static.MerchantID
	}
	if merchantID == "" {
		return resolvedCredential{}, myerrors.NewAuthRequiredError(errors.New("Authentication required"))
	}

	return resolvedCredential{
		Source:     SourceStaticConfig,
		Credential: posclient.Credential{AccessToken: static.AccessToken, MerchantID: merchantID},
	}, nil
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}
