package pos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/lib/myuuid"
	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
	"github.com/MarcGrol/cloverconnect/services/transactions"
)

var (
	oauthCred  = posclient.Credential{AccessToken: "abc123", MerchantID: "M123"}
	staticCred = posclient.Credential{AccessToken: "static456", MerchantID: "MSTATIC"}
)

func TestMerchant(t *testing.T) {

	t.Run("Get merchant with bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetMerchant(gomock.Any(), oauthCred).Return(posclient.Merchant{
			ID:       "M123",
			Name:     "Corner Cafe",
			Timezone: "Europe/Amsterdam",
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant/M123", nil)
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"merchant":{"id":"M123","name":"Corner Cafe","currency":"USD","timezone":"Europe/Amsterdam"}}`, response.Body.String())
	})

	t.Run("Legacy merchant falls back to static configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetMerchant(gomock.Any(), staticCred).Return(posclient.Merchant{
			ID:       "MSTATIC",
			Name:     "Demo shop",
			Currency: "EUR",
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"currency": "EUR"`)
		assert.NotContains(t, response.Body.String(), "static456")
	})

	t.Run("No credential at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl, posclient.Credential{})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 401, response.Code)
		assert.Contains(t, response.Body.String(), `"error": "Authentication required"`)
	})

	t.Run("Bearer without merchant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setup(t, ctrl, staticCred)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant", nil)
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 401, response.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetMerchant(gomock.Any(), oauthCred).Return(posclient.Merchant{},
			myerrors.NewUnauthorizedError(errors.New("Unauthorized - Invalid or expired access token")))

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant/M123", nil)
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 401, response.Code)
		assert.Contains(t, response.Body.String(), "Unauthorized - Invalid or expired access token")
	})

	t.Run("Legacy merchant not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetMerchant(gomock.Any(), oauthCred).Return(posclient.Merchant{},
			myerrors.NewNotFoundError(errors.New("Failed to fetch merchant information: not found")))

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant", nil)
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		request.Header.Set("X-Merchant-Id", "M123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
		assert.Contains(t, response.Body.String(), `"error": "Merchant not found"`)
	})

	t.Run("Merchant by id not found is a fetch failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetMerchant(gomock.Any(), oauthCred).Return(posclient.Merchant{},
			myerrors.NewNotFoundError(errors.New("Failed to fetch merchant information: not found")))

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/merchant/M123", nil)
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		assert.Contains(t, response.Body.String(), `"error": "Failed to fetch merchant information"`)
	})
}

func TestOrders(t *testing.T) {

	t.Run("Create order converts prices to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().CreateAtomicOrder(gomock.Any(), oauthCred, posclient.AtomicOrderRequest{
			OrderCart: posclient.OrderCart{
				LineItems: []posclient.AtomicLineItem{
					{Name: "Coffee", Price: 350, Quantity: 2, UnitName: "each"},
				},
				GroupLineItems: false,
			},
		}).DoAndReturn(func(c context.Context, cred posclient.Credential, req posclient.AtomicOrderRequest) (posclient.Order, error) {
			total := int64(0)
			elements := []posclient.LineItem{}
			for _, li := range req.OrderCart.LineItems {
				total += li.Price * int64(li.Quantity)
				elements = append(elements, posclient.LineItem{ID: "L1", Name: li.Name, Price: li.Price, UnitQty: li.Quantity})
			}
			return posclient.Order{ID: "O1", Total: total, State: "open", LineItems: &posclient.LineItems{Elements: elements}, CreatedTime: 1677542339000}, nil
		})

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":[{"name":"Coffee","price":3.50,"quantity":2}]}`))
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		request.Header.Set("X-Merchant-Id", "M123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"order":{"id":"O1","total":700,"currency":"USD","state":"open","createdTime":1677542339000,
			"lineItems":[{"id":"L1","name":"Coffee","price":350,"unitQty":2}]}}`, response.Body.String())
	})

	t.Run("Create order rejects invalid items without calling the vendor", func(t *testing.T) {
		bodies := map[string]string{
			"no items":       `{}`,
			"empty items":    `{"items":[]}`,
			"zero price":     `{"items":[{"name":"Coffee","price":0,"quantity":1}]}`,
			"negative price": `{"items":[{"name":"Coffee","price":-1,"quantity":1}]}`,
			"empty name":     `{"items":[{"name":"","price":3.5,"quantity":1}]}`,
			"zero quantity":  `{"items":[{"name":"Coffee","price":3.5,"quantity":0}]}`,
			"malformed":      `{"items":`,
		}
		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				// setup
				_, router, _, _, _, _ := setup(t, ctrl, staticCred)

				// when
				request, err := http.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
				assert.NoError(t, err)
				response := httptest.NewRecorder()
				router.ServeHTTP(response, request)

				// then
				assert.Equal(t, 400, response.Code)
				assert.Contains(t, response.Body.String(), `"success": false`)
			})
		}
	})

	t.Run("Get order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", true).Return(posclient.Order{ID: "O1", Total: 700, Currency: "EUR", ModifiedTime: 1677542340000}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/orders/O1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"order":{"id":"O1","total":700,"currency":"EUR","lineItems":[],"modifiedTime":1677542340000}}`, response.Body.String())
	})

	t.Run("Add line item with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().AddLineItem(gomock.Any(), staticCred, "O1", posclient.CreateLineItemRequest{
			Name:     "Muffin",
			Price:    275,
			UnitQty:  1,
			UnitName: "each",
		}).Return(posclient.LineItem{ID: "L2", Name: "Muffin", Price: 275, UnitQty: 1, UnitName: "each"}, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders/O1/line_items", strings.NewReader(`{"name":"Muffin","price":2.75}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"lineItem":{"id":"L2","name":"Muffin","price":275,"unitQty":1,"unitName":"each"}}`, response.Body.String())
	})

	t.Run("Delete line item twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		gomock.InOrder(
			posClient.EXPECT().DeleteLineItem(gomock.Any(), staticCred, "O1", "L1").Return(nil),
			posClient.EXPECT().DeleteLineItem(gomock.Any(), staticCred, "O1", "L1").Return(
				myerrors.NewNotFoundError(errors.New("Failed to delete line item: not found"))),
		)

		// when
		codes := []int{}
		for i := 0; i < 2; i++ {
			request, err := http.NewRequest(http.MethodDelete, "/api/orders/O1/line_items/L1", nil)
			assert.NoError(t, err)
			response := httptest.NewRecorder()
			router.ServeHTTP(response, request)
			codes = append(codes, response.Code)
		}

		// then
		assert.Equal(t, []int{200, 404}, codes)
	})

	t.Run("Vendor failure keeps details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", true).Return(posclient.Order{},
			myerrors.NewVendorError(errors.New("Failed to fetch order"), "Internal error at vendor"))

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/orders/O1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to fetch order","details":"Internal error at vendor","errorCode":2}`, response.Body.String())
	})
}

func TestPayments(t *testing.T) {

	t.Run("Pay order without total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, txLog := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", false).Return(posclient.Order{ID: "O1", Total: 0}, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders/O1/pay", strings.NewReader(`{"cardToken":"tok"}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "Order has no total amount")
		assert.Empty(t, txLog.List(context.TODO()))
	})

	t.Run("Pay order with cash tender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, nower, _, txLog := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", false).Return(posclient.Order{ID: "O1", Total: 700}, nil)
		posClient.EXPECT().ListTenders(gomock.Any(), staticCred).Return([]posclient.Tender{
			{ID: "T0", Label: "Credit Card", LabelKey: "com.clover.tender.credit_card"},
			{ID: "T1", Label: "Cash", LabelKey: "com.clover.tender.cash"},
		}, nil)
		posClient.EXPECT().CreatePayment(gomock.Any(), staticCred, "O1", posclient.CreatePaymentRequest{
			Amount: 700,
			Tender: posclient.Reference{ID: "T1"},
		}).Return(posclient.Payment{ID: "P1", Amount: 700, Result: "SUCCESS"}, nil)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders/O1/pay", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"payment":{"id":"P1","status":"SUCCESS","amount":700,"currency":"USD","orderId":"O1",
			"tender":{"id":"T1","label":"Cash"},"order":{"id":"O1","total":700,"currency":""}}}`, response.Body.String())

		recorded := txLog.List(context.TODO())
		assert.Len(t, recorded, 1)
		assert.Equal(t, "P1", recorded[0].ID)
		assert.Equal(t, "O1", recorded[0].OrderID)
		assert.Equal(t, 7.0, recorded[0].Amount)
		assert.Equal(t, "SUCCESS", recorded[0].Status)
		assert.Equal(t, "2023-02-27T23:58:59.000Z", recorded[0].Timestamp)
	})

	t.Run("External tender wins over cash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, nower, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", false).Return(posclient.Order{ID: "O1", Total: 1250, Currency: "EUR"}, nil)
		posClient.EXPECT().ListTenders(gomock.Any(), staticCred).Return([]posclient.Tender{
			{ID: "T1", Label: "Cash", LabelKey: "com.clover.tender.cash"},
			{ID: "T2", Label: "External Payment", LabelKey: "com.clover.tender.external_payment"},
		}, nil)
		posClient.EXPECT().CreatePayment(gomock.Any(), staticCred, "O1", posclient.CreatePaymentRequest{
			Amount: 1250,
			Tender: posclient.Reference{ID: "T2"},
		}).Return(posclient.Payment{ID: "P2", Amount: 1250}, nil)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders/O1/pay", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"label": "External Payment"`)
		assert.Contains(t, response.Body.String(), `"currency": "EUR"`)
	})

	t.Run("Demo payment when no tender qualifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, uuider, txLog := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", false).Return(posclient.Order{ID: "O1", Total: 700}, nil)
		posClient.EXPECT().ListTenders(gomock.Any(), staticCred).Return([]posclient.Tender{
			{ID: "T0", Label: "Credit Card", LabelKey: "com.clover.tender.credit_card"},
		}, nil)
		uuider.EXPECT().Create().Return("abcdef")

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders/O1/pay", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"payment":{"id":"demo_abcdef","status":"SUCCESS","amount":700,"currency":"USD","orderId":"O1",
			"type":"DEMO_EXTERNAL_PAYMENT","simulated":true,
			"message":"Demo payment processed successfully. In production, use external payment processors or cash tenders.",
			"order":{"id":"O1","total":700,"currency":""}}}`, response.Body.String())
		assert.Empty(t, txLog.List(context.TODO()))
	})

	t.Run("No tenders at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetOrder(gomock.Any(), staticCred, "O1", false).Return(posclient.Order{ID: "O1", Total: 700}, nil)
		posClient.EXPECT().ListTenders(gomock.Any(), staticCred).Return([]posclient.Tender{}, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/orders/O1/pay", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "No suitable payment tender available")
	})

	t.Run("List order payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().ListOrderPayments(gomock.Any(), staticCred, "O1").Return([]posclient.Payment{
			{ID: "P1", Amount: 700, TipAmount: 50, Result: "SUCCESS", CreatedTime: 1677542339000,
				CardTransaction: &posclient.CardTransaction{CardType: "VISA", Last4: "4242", AuthCode: "OK1"}},
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/orders/O1/payments", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"payments":[{"id":"P1","amount":700,"tipAmount":50,"result":"SUCCESS","createdTime":1677542339000,
			"cardType":"VISA","last4":"4242","authCode":"OK1"}]}`, response.Body.String())
	})

	t.Run("Get payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, posClient, _, _, _ := setup(t, ctrl, staticCred)

		// given
		posClient.EXPECT().GetPayment(gomock.Any(), oauthCred, "P1").Return(posclient.Payment{
			ID: "P1", Amount: 700, Result: "SUCCESS", Order: &posclient.Reference{ID: "O1"},
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/payments/P1", nil)
		assert.NoError(t, err)
		request.Header.Set("Authorization", "Bearer abc123")
		request.Header.Set("X-Merchant-Id", "M123")
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"success":true,"payment":{"id":"P1","amount":700,"result":"SUCCESS","orderId":"O1","order":{"id":"O1","total":0,"currency":""}}}`, response.Body.String())
	})
}

func TestSelectTender(t *testing.T) {
	testCases := []struct {
		name    string
		tenders []posclient.Tender
		want    string
		found   bool
	}{
		{name: "Empty", tenders: nil, found: false},
		{name: "Editable counts as external", tenders: []posclient.Tender{{ID: "T1", Label: "Cash"}, {ID: "T2", Label: "Gift", Editable: true}}, want: "T2", found: true},
		{name: "External by label", tenders: []posclient.Tender{{ID: "T1", Label: "My EXTERNAL terminal"}}, want: "T1", found: true},
		{name: "Cash by label", tenders: []posclient.Tender{{ID: "T0", Label: "Check"}, {ID: "T1", Label: "cash drawer"}}, want: "T1", found: true},
		{name: "Nothing qualifies", tenders: []posclient.Tender{{ID: "T0", Label: "Credit Card"}}, found: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tender, found := selectTender(tc.tenders)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.want, tender.ID)
		})
	}
}

func TestCredentialSource(t *testing.T) {
	t.Run("Bearer wins over static", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/orders/O1", nil)
		request.Header.Set("Authorization", "bearer abc123")
		request.Header.Set("X-Merchant-Id", "M123")

		cred, err := resolveCredential(request, staticCred, "")
		assert.NoError(t, err)
		assert.Equal(t, SourceOAuthSession, cred.Source)
		assert.Equal(t, oauthCred, cred.Credential)
	})

	t.Run("Static fallback", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/orders/O1", nil)

		cred, err := resolveCredential(request, staticCred, "")
		assert.NoError(t, err)
		assert.Equal(t, SourceStaticConfig, cred.Source)
		assert.Equal(t, "static-config", cred.Source.String())
		assert.Equal(t, staticCred, cred.Credential)
	})

	t.Run("Neither", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/orders/O1", nil)

		_, err := resolveCredential(request, posclient.Credential{}, "")
		assert.Equal(t, 401, myerrors.GetHTTPStatus(err))
	})
}

func setup(t *testing.T, ctrl *gomock.Controller, static posclient.Credential) (context.Context, *mux.Router, *posclient.MockPosClient, *mytime.MockNower, *myuuid.MockUUIDer, *transactions.Log) {
	ctx := context.TODO()
	router := mux.NewRouter()
	posClient := posclient.NewMockPosClient(ctrl)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	txLog := transactions.NewLog()

	sut := NewService(posClient, txLog, static, nower, uuider)
	err := sut.RegisterEndpoints(ctx, router)
	assert.NoError(t, err)

	return ctx, router, posClient, nower, uuider, txLog
}
