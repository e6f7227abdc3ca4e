package session

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/services/oauth/challenge"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

func TestConnector(t *testing.T) {
	ctx := context.TODO()

	t.Run("Start flow stores state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, deps := setupConnector(t, ctrl)

		// given
		deps.stringer.EXPECT().Create().Return("abc123", nil)

		// when
		authURL, err := sut.StartFlow(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/oauth/authorize?state=abc123", authURL)
		state, exists, err := store.Get(ctx, KeyOAuthState)
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "abc123", state)
	})

	t.Run("Complete flow without stored state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, _, _ := setupConnector(t, ctrl)

		// when
		_, err := sut.CompleteFlow(ctx, "C1", "abc123", "M123")

		// then
		assert.Equal(t, ErrCSRFMismatch, err)
	})

	t.Run("Complete flow with other state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, _ := setupConnector(t, ctrl)

		// given
		seed(t, store, map[string]string{KeyOAuthState: "abc123"})

		// when
		_, err := sut.CompleteFlow(ctx, "C1", "forged", "M123")

		// then
		assert.Equal(t, ErrCSRFMismatch, err)
		state, exists, err := store.Get(ctx, KeyOAuthState)
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "abc123", state)
	})

	t.Run("Complete flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, deps := setupConnector(t, ctrl)

		// given
		seed(t, store, map[string]string{KeyOAuthState: "abc123"})
		deps.exchanger.EXPECT().Exchange(gomock.Any(), "C1", "http://localhost:3000/oauth/callback", "M123").Return(posapi.TokenResponse{
			Success:                true,
			AccessToken:            "AT1",
			RefreshToken:           "RT1",
			MerchantID:             "M123",
			AccessTokenExpiration:  mytime.ExampleTime.Add(time.Hour).Unix(),
			RefreshTokenExpiration: mytime.ExampleTime.Add(24 * time.Hour).Unix(),
		}, nil)
		deps.doer.EXPECT().Do(gomock.Any(), http.MethodGet, "/api/merchant/M123", nil, gomock.Any()).
			DoAndReturn(func(c context.Context, method string, path string, req any, resp any) error {
				*resp.(*posapi.MerchantResponse) = posapi.MerchantResponse{
					Success:  true,
					Merchant: posapi.Merchant{ID: "M123", Name: "Corner Cafe", Currency: "EUR"},
				}
				return nil
			})

		// when
		cred, err := sut.CompleteFlow(ctx, "C1", "abc123", "M123")

		// then
		assert.NoError(t, err)
		assert.Equal(t, "AT1", cred.AccessToken)
		assert.Equal(t, "RT1", cred.RefreshToken)
		assert.Equal(t, "M123", cred.MerchantID)
		assert.Equal(t, "Corner Cafe", cred.MerchantName)
		assert.Equal(t, "EUR", cred.MerchantCurrency)
		_, exists, err := store.Get(ctx, KeyOAuthState)
		assert.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, Scheduled, deps.scheduler.State())
		assert.Equal(t, 55*time.Minute, deps.clock.timers[0].delay)
		assert.Equal(t, []string{"success: Successfully connected with Clover v2/OAuth!"}, deps.rec.notifications)
	})

	t.Run("Complete flow with failing exchange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, deps := setupConnector(t, ctrl)

		// given
		seed(t, store, map[string]string{KeyOAuthState: "abc123"})
		deps.exchanger.EXPECT().Exchange(gomock.Any(), "C1", gomock.Any(), "M123").Return(posapi.TokenResponse{}, ErrExchange)

		// when
		_, err := sut.CompleteFlow(ctx, "C1", "abc123", "M123")

		// then
		assert.True(t, errors.Is(err, ErrExchange))
		cred, err := LoadCredential(ctx, store)
		assert.NoError(t, err)
		assert.False(t, cred.Authenticated())
	})

	t.Run("Existing session with expired token is refreshed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, deps := setupConnector(t, ctrl)

		// given
		seed(t, store, fullSession())
		seed(t, store, map[string]string{KeyTokenExpires: formatMillis(mytime.ExampleTime.Add(-time.Minute))})
		deps.exchanger.EXPECT().Refresh(gomock.Any(), "RT1").Return(newTokens("AT2"), nil)

		// when
		cred, err := sut.CheckExistingAuth(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "AT2", cred.AccessToken)
		assert.Equal(t, Scheduled, deps.scheduler.State())
	})

	t.Run("Existing valid session is scheduled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, deps := setupConnector(t, ctrl)

		// given
		seed(t, store, fullSession())

		// when
		cred, err := sut.CheckExistingAuth(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "AT1", cred.AccessToken)
		assert.Equal(t, time.Minute, deps.clock.timers[0].delay)
	})

	t.Run("No existing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, _, deps := setupConnector(t, ctrl)

		// when
		cred, err := sut.CheckExistingAuth(ctx)

		// then
		assert.NoError(t, err)
		assert.False(t, cred.Authenticated())
		assert.Equal(t, Idle, deps.scheduler.State())
	})

	t.Run("Disconnect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, store, deps := setupConnector(t, ctrl)

		// given
		seed(t, store, fullSession())
		err := deps.scheduler.Schedule(ctx)
		assert.NoError(t, err)

		// when
		err = sut.Disconnect(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, Idle, deps.scheduler.State())
		cred, err := sut.Status(ctx)
		assert.NoError(t, err)
		assert.Equal(t, Credential{}, cred)
		assert.Equal(t, []string{"info: Successfully disconnected from Clover"}, deps.rec.notifications)
	})
}

type connectorDeps struct {
	exchanger *MockTokenExchanger
	stringer  *challenge.MockRandomStringer
	doer      *MockDoer
	scheduler *Scheduler
	clock     *fakeClock
	rec       *recorder
}

func setupConnector(t *testing.T, ctrl *gomock.Controller) (*Connector, *credStore, connectorDeps) {
	scheduler, store, exchanger, clock, _ := setupScheduler(t, ctrl)
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	stringer := challenge.NewMockRandomStringer(ctrl)
	doer := NewMockDoer(ctrl)
	rec := &recorder{}

	sut := NewConnector("http://localhost:3000", store, exchanger, stringer, doer, scheduler, nower, rec.notify)

	return sut, store, connectorDeps{
		exchanger: exchanger,
		stringer:  stringer,
		doer:      doer,
		scheduler: scheduler,
		clock:     clock,
		rec:       rec,
	}
}
