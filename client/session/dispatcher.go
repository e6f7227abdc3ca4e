package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/MarcGrol/cloverconnect/lib/myhttpclient"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
)

//go:generate mockgen -source=dispatcher.go -package session -destination dispatcher_mock.go Doer
type Doer interface {
	Do(c context.Context, method string, path string, req any, resp any) error
}

// SenderFactory creates the sender for a single relay call, cred is empty when not connected.
type SenderFactory func(c context.Context, cred Credential) myhttpclient.HTTPSender

// RelaySender authenticates with the oauth2 bearer transport and names the merchant in a header.
func RelaySender(c context.Context, cred Credential) myhttpclient.HTTPSender {
	if !cred.Authenticated() {
		return myhttpclient.NewJSONHTTPClient(nil, nil)
	}
	return myhttpclient.NewJSONHTTPClient(oauth2.NewClient(c, oauth2.StaticTokenSource(cred.Token())), map[string]string{
		"X-Merchant-Id": cred.MerchantID,
	})
}

// Dispatcher sends relay calls with the stored credential. A rejected bearer token is refreshed and
// the call is retried exactly once.
type Dispatcher struct {
	relayURL  string
	store     CredentialStore
	scheduler *Scheduler
	nower     mytime.Nower
	newSender SenderFactory
	logger    mylog.Logger
}

func NewDispatcher(relayURL string, store CredentialStore, scheduler *Scheduler, nower mytime.Nower, newSender SenderFactory) *Dispatcher {
	return &Dispatcher{
		relayURL:  relayURL,
		store:     store,
		scheduler: scheduler,
		nower:     nower,
		newSender: newSender,
		logger:    mylog.New("session"),
	}
}

func (d *Dispatcher) Do(c context.Context, method string, path string, req any, resp any) error {
	var requestBody []byte
	if req != nil {
		var err error
		requestBody, err = json.Marshal(req)
		if err != nil {
			return fmt.Errorf("error marshalling request: %s", err)
		}
	}

	cred, err := LoadCredential(c, d.store)
	if err != nil {
		return err
	}

	if cred.Authenticated() && cred.AccessExpired(d.nower.Now()) {
		d.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Access token expired: refresh before %s %s", method, path)
		cred, err = d.refresh(c)
		if err != nil {
			return err
		}
	}

	httpRespCode, respBody, err := d.newSender(c, cred).Send(c, method, d.relayURL+path, requestBody)
	if err != nil {
		return err
	}

	if httpRespCode == http.StatusUnauthorized && cred.Authenticated() {
		d.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Bearer token rejected on %s %s: refresh and retry", method, path)
		cred, err = d.refresh(c)
		if err != nil {
			return err
		}
		httpRespCode, respBody, err = d.newSender(c, cred).Send(c, method, d.relayURL+path, requestBody)
		if err != nil {
			return err
		}
	}

	if httpRespCode < 200 || httpRespCode >= 300 {
		return relayFailure(httpRespCode, respBody)
	}

	if resp == nil {
		return nil
	}
	err = json.Unmarshal(respBody, resp)
	if err != nil {
		return fmt.Errorf("error parsing response of %s %s: %s", method, path, err)
	}
	return nil
}

func (d *Dispatcher) refresh(c context.Context) (Credential, error) {
	err := d.scheduler.AttemptRefresh(c)
	if err != nil {
		if errors.Is(err, ErrReauthenticationRequired) {
			return Credential{}, err
		}
		return Credential{}, fmt.Errorf("%w: %s", ErrReauthenticationRequired, err)
	}
	return LoadCredential(c, d.store)
}
