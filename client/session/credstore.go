package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/MarcGrol/cloverconnect/lib/mystore"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

const (
	KeyAccessToken      = "clover_access_token"
	KeyRefreshToken     = "clover_refresh_token"
	KeyMerchantID       = "clover_merchant_id"
	KeyMerchantName     = "clover_merchant_name"
	KeyMerchantCurrency = "clover_merchant_currency"
	KeyTokenExpires     = "clover_token_expires"
	KeyRefreshExpires   = "clover_refresh_expires"
	KeyOAuthState       = "oauth_state"
)

var allKeys = []string{
	KeyAccessToken,
	KeyRefreshToken,
	KeyMerchantID,
	KeyMerchantName,
	KeyMerchantCurrency,
	KeyTokenExpires,
	KeyRefreshExpires,
	KeyOAuthState,
}

// Entry is a single persisted key/value pair of the credential store.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CredentialStore is a key/value store without multi-key atomicity.
type CredentialStore interface {
	Get(c context.Context, key string) (string, bool, error)
	Set(c context.Context, key string, value string) error
	Remove(c context.Context, key string) error
	Clear(c context.Context) error
}

type credStore struct {
	store mystore.Store[Entry]
}

func NewCredentialStore(store mystore.Store[Entry]) *credStore {
	return &credStore{
		store: store,
	}
}

func (s *credStore) Get(c context.Context, key string) (string, bool, error) {
	entry, exists, err := s.store.Get(c, key)
	if err != nil {
		return "", false, fmt.Errorf("error reading %s: %s", key, err)
	}
	if !exists || entry.Value == "" {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *credStore) Set(c context.Context, key string, value string) error {
	err := s.store.Put(c, key, Entry{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("error writing %s: %s", key, err)
	}
	return nil
}

func (s *credStore) Remove(c context.Context, key string) error {
	err := s.store.Delete(c, key)
	if err != nil {
		return fmt.Errorf("error removing %s: %s", key, err)
	}
	return nil
}

func (s *credStore) Clear(c context.Context) error {
	return s.store.RunInTransaction(c, func(c context.Context) error {
		for _, key := range allKeys {
			err := s.Remove(c, key)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Credential is the stored oauth session. Zero expiry means unknown.
type Credential struct {
	AccessToken      string
	RefreshToken     string
	MerchantID       string
	MerchantName     string
	MerchantCurrency string
	AccessExpiry     time.Time
	RefreshExpiry    time.Time
}

// Authenticated is false as soon as the access token or merchant id is missing.
func (cred Credential) Authenticated() bool {
	return cred.AccessToken != "" && cred.MerchantID != ""
}

func (cred Credential) AccessExpired(now time.Time) bool {
	return !cred.AccessExpiry.IsZero() && !now.Before(cred.AccessExpiry)
}

func (cred Credential) RefreshExpired(now time.Time) bool {
	return !cred.RefreshExpiry.IsZero() && !now.Before(cred.RefreshExpiry)
}

func (cred Credential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  cred.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: cred.RefreshToken,
		Expiry:       cred.AccessExpiry,
	}
}

func LoadCredential(c context.Context, store CredentialStore) (Credential, error) {
	values := map[string]string{}
	for _, key := range allKeys {
		value, _, err := store.Get(c, key)
		if err != nil {
			return Credential{}, err
		}
		values[key] = value
	}

	return Credential{
		AccessToken:      values[KeyAccessToken],
		RefreshToken:     values[KeyRefreshToken],
		MerchantID:       values[KeyMerchantID],
		MerchantName:     values[KeyMerchantName],
		MerchantCurrency: values[KeyMerchantCurrency],
		AccessExpiry:     parseMillis(values[KeyTokenExpires]),
		RefreshExpiry:    parseMillis(values[KeyRefreshExpires]),
	}, nil
}

// storeTokens persists a token answer of the relay. The refresh token is only rotated when a new one
// is returned.
func storeTokens(c context.Context, store CredentialStore, tokens posapi.TokenResponse) error {
	err := store.Set(c, KeyAccessToken, tokens.AccessToken)
	if err != nil {
		return err
	}
	if tokens.RefreshToken != "" {
		err = store.Set(c, KeyRefreshToken, tokens.RefreshToken)
		if err != nil {
			return err
		}
	}
	if tokens.AccessTokenExpiration != 0 {
		err = store.Set(c, KeyTokenExpires, formatMillis(time.Unix(tokens.AccessTokenExpiration, 0)))
		if err != nil {
			return err
		}
	}
	if tokens.RefreshTokenExpiration != 0 {
		err = store.Set(c, KeyRefreshExpires, formatMillis(time.Unix(tokens.RefreshTokenExpiration, 0)))
		if err != nil {
			return err
		}
	}
	return nil
}

func parseMillis(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return mytime.FromUnixMillis(millis)
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
