package session

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/services/oauth/challenge"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

// Connector drives the oauth flow of the client and owns the stored session.
type Connector struct {
	relayURL  string
	store     CredentialStore
	exchanger TokenExchanger
	stringer  challenge.RandomStringer
	doer      Doer
	scheduler *Scheduler
	nower     mytime.Nower
	notify    Notifier
	logger    mylog.Logger
}

func NewConnector(relayURL string, store CredentialStore, exchanger TokenExchanger, stringer challenge.RandomStringer, doer Doer, scheduler *Scheduler, nower mytime.Nower, notify Notifier) *Connector {
	if notify == nil {
		notify = func(kind NotificationKind, message string) {}
	}
	return &Connector{
		relayURL:  relayURL,
		store:     store,
		exchanger: exchanger,
		stringer:  stringer,
		doer:      doer,
		scheduler: scheduler,
		nower:     nower,
		notify:    notify,
		logger:    mylog.New("session"),
	}
}

// StartFlow remembers a fresh state and returns the url that sends the user to the consent screen.
func (cn *Connector) StartFlow(c context.Context) (string, error) {
	state, err := cn.stringer.Create()
	if err != nil {
		return "", fmt.Errorf("error creating state: %s", err)
	}

	err = cn.store.Set(c, KeyOAuthState, state)
	if err != nil {
		return "", err
	}

	cn.logger.Log(c, "", mylog.SeverityInfo, "Started oauth flow")

	return fmt.Sprintf("%s/oauth/authorize?state=%s", cn.relayURL, url.QueryEscape(state)), nil
}

// CompleteFlow exchanges the authorization code once the returned state matches the stored one.
func (cn *Connector) CompleteFlow(c context.Context, code string, state string, merchantID string) (Credential, error) {
	expectedState, exists, err := cn.store.Get(c, KeyOAuthState)
	if err != nil {
		return Credential{}, err
	}
	if !exists || state != expectedState {
		cn.logger.Log(c, merchantID, mylog.SeverityWarn, "State mismatch: stored state present:%t", exists)
		return Credential{}, ErrCSRFMismatch
	}

	tokens, err := cn.exchanger.Exchange(c, code, cn.relayURL+"/oauth/callback", merchantID)
	if err != nil {
		cn.notify(NotifyError, fmt.Sprintf("Authentication failed: %s", err))
		return Credential{}, err
	}

	if tokens.MerchantID != "" {
		merchantID = tokens.MerchantID
	}

	err = storeTokens(c, cn.store, tokens)
	if err != nil {
		return Credential{}, err
	}
	err = cn.store.Set(c, KeyMerchantID, merchantID)
	if err != nil {
		return Credential{}, err
	}

	merchant := posapi.MerchantResponse{}
	err = cn.doer.Do(c, http.MethodGet, "/api/merchant/"+url.PathEscape(merchantID), nil, &merchant)
	if err != nil {
		cn.notify(NotifyError, "Authentication failed: Failed to fetch merchant information")
		return Credential{}, fmt.Errorf("failed to fetch merchant information: %w", err)
	}

	currency := merchant.Merchant.Currency
	if currency == "" {
		currency = posapi.DefaultCurrency
	}
	err = cn.store.Set(c, KeyMerchantName, merchant.Merchant.Name)
	if err != nil {
		return Credential{}, err
	}
	err = cn.store.Set(c, KeyMerchantCurrency, currency)
	if err != nil {
		return Credential{}, err
	}

	err = cn.store.Remove(c, KeyOAuthState)
	if err != nil {
		return Credential{}, err
	}

	err = cn.scheduler.Schedule(c)
	if err != nil {
		return Credential{}, err
	}

	cn.logger.Log(c, merchantID, mylog.SeverityInfo, "Connected merchant %s (%s)", merchantID, merchant.Merchant.Name)
	cn.notify(NotifySuccess, "Successfully connected with Clover v2/OAuth!")

	return LoadCredential(c, cn.store)
}

// CheckExistingAuth restores a stored session at startup: an expired access token is refreshed
// first, a valid one gets its refresh scheduled.
func (cn *Connector) CheckExistingAuth(c context.Context) (Credential, error) {
	cred, err := LoadCredential(c, cn.store)
	if err != nil {
		return Credential{}, err
	}

	if !cred.Authenticated() {
		return cred, nil
	}

	if cred.AccessExpired(cn.nower.Now()) {
		cn.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Stored access token expired: attempt refresh")
		err = cn.scheduler.AttemptRefresh(c)
		if err != nil {
			return Credential{}, err
		}
		return LoadCredential(c, cn.store)
	}

	err = cn.scheduler.Schedule(c)
	if err != nil {
		return Credential{}, err
	}

	return cred, nil
}

func (cn *Connector) Status(c context.Context) (Credential, error) {
	return LoadCredential(c, cn.store)
}

func (cn *Connector) Disconnect(c context.Context) error {
	cn.scheduler.Stop()

	err := cn.store.Clear(c)
	if err != nil {
		return err
	}

	cn.logger.Log(c, "", mylog.SeverityInfo, "Disconnected")
	cn.notify(NotifyInfo, "Successfully disconnected from Clover")

	return nil
}
