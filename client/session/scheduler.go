package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
)

// RefreshLeadTime is how long before expiry of the access token a refresh is attempted.
const RefreshLeadTime = 5 * time.Minute

type State int

const (
	Idle State = iota
	Scheduled
)

func (s State) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	default:
		return "idle"
	}
}

type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

type Notifier func(kind NotificationKind, message string)

// Scheduler keeps at most one pending refresh of the stored access token.
type Scheduler struct {
	sync.Mutex
	refreshing sync.Mutex
	store      CredentialStore
	exchanger  TokenExchanger
	nower      mytime.Nower
	afterFunc  mytime.AfterFunc
	notify     Notifier
	onReauth   func()
	state      State
	timer      mytime.Timer
	logger     mylog.Logger
}

func NewScheduler(store CredentialStore, exchanger TokenExchanger, nower mytime.Nower, afterFunc mytime.AfterFunc, notify Notifier, onReauth func()) *Scheduler {
	if notify == nil {
		notify = func(kind NotificationKind, message string) {}
	}
	if onReauth == nil {
		onReauth = func() {}
	}
	return &Scheduler{
		store:     store,
		exchanger: exchanger,
		nower:     nower,
		afterFunc: afterFunc,
		notify:    notify,
		onReauth:  onReauth,
		state:     Idle,
		logger:    mylog.New("session"),
	}
}

func (s *Scheduler) State() State {
	s.Lock()
	defer s.Unlock()

	return s.state
}

// Schedule (re)arms the refresh timer from the stored expiry. Without a valid refresh token or known
// expiry there is nothing to schedule and the scheduler stays idle.
func (s *Scheduler) Schedule(c context.Context) error {
	cred, err := LoadCredential(c, s.store)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	s.stopTimer()

	if cred.RefreshToken == "" || cred.AccessExpiry.IsZero() {
		s.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "No refresh scheduled: refresh token present:%t, expiry known:%t",
			cred.RefreshToken != "", !cred.AccessExpiry.IsZero())
		return nil
	}

	if cred.RefreshExpired(s.nower.Now()) {
		s.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "No refresh scheduled: refresh token expired at %s", cred.RefreshExpiry)
		return nil
	}

	delay := RefreshDelay(cred.AccessExpiry, s.nower.Now())
	s.timer = s.afterFunc(delay, func() {
		// outcome is reported through notify and onReauth
		_ = s.AttemptRefresh(context.Background())
	})
	s.state = Scheduled

	s.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Token refresh scheduled in %s", delay)

	return nil
}

// RefreshDelay is the wait until RefreshLeadTime before expiry, never negative.
func RefreshDelay(expiry time.Time, now time.Time) time.Duration {
	delay := expiry.Sub(now) - RefreshLeadTime
	if delay < 0 {
		return 0
	}
	return delay
}

// Stop cancels a pending refresh.
func (s *Scheduler) Stop() {
	s.Lock()
	defer s.Unlock()

	s.stopTimer()
}

func (s *Scheduler) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = Idle
}

// AttemptRefresh exchanges the stored refresh token for a new access token. Any failure clears the
// credentials and signals that the user has to connect again.
func (s *Scheduler) AttemptRefresh(c context.Context) error {
	s.refreshing.Lock()
	defer s.refreshing.Unlock()

	cred, err := LoadCredential(c, s.store)
	if err != nil {
		return err
	}

	if cred.RefreshToken == "" {
		return s.reauthenticate(c, "No refresh token available")
	}

	if cred.RefreshExpired(s.nower.Now()) {
		return s.reauthenticate(c, "Refresh token expired")
	}

	s.logger.Log(c, cred.MerchantID, mylog.SeverityInfo, "Refresh access token %s", mylog.Redact(cred.AccessToken))

	tokens, err := s.exchanger.Refresh(c, cred.RefreshToken)
	if err != nil {
		return s.reauthenticate(c, err.Error())
	}

	err = storeTokens(c, s.store, tokens)
	if err != nil {
		return s.reauthenticate(c, err.Error())
	}

	s.notify(NotifySuccess, "Access token refreshed automatically")

	return s.Schedule(c)
}

func (s *Scheduler) reauthenticate(c context.Context, reason string) error {
	s.logger.Log(c, "", mylog.SeverityWarn, "Re-authentication required: %s", reason)

	s.Stop()

	err := s.store.Clear(c)
	if err != nil {
		return err
	}

	s.notify(NotifyWarning, "Session expired, please reconnect")
	s.onReauth()

	return fmt.Errorf("%w: %s", ErrReauthenticationRequired, reason)
}
