package checkout

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MarcGrol/cloverconnect/client/session"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

//go:generate mockgen -source=api.go -package checkout -destination api_mock.go PosAPI
type PosAPI interface {
	Health(c context.Context) (posapi.HealthResponse, error)
	Merchant(c context.Context, merchantID string) (posapi.Merchant, error)
	CreateOrder(c context.Context, req posapi.CreateOrderRequest) (posapi.Order, error)
	GetOrder(c context.Context, orderID string) (posapi.Order, error)
	AddLineItem(c context.Context, orderID string, req posapi.AddLineItemRequest) (posapi.LineItem, error)
	DeleteLineItem(c context.Context, orderID string, lineItemID string) error
	PayOrder(c context.Context, orderID string, req posapi.PayRequest) (posapi.Payment, error)
	OrderPayments(c context.Context, orderID string) ([]posapi.Payment, error)
	GetPayment(c context.Context, paymentID string) (posapi.Payment, error)
	Transactions(c context.Context) ([]posapi.Transaction, error)
}

type posAPI struct {
	doer session.Doer
}

// NewPosAPI exposes the relay endpoints as typed calls over an authenticated dispatcher.
func NewPosAPI(doer session.Doer) *posAPI {
	return &posAPI{
		doer: doer,
	}
}

func (a *posAPI) Health(c context.Context) (posapi.HealthResponse, error) {
	resp := posapi.HealthResponse{}
	err := a.doer.Do(c, http.MethodGet, "/api/health", nil, &resp)
	if err != nil {
		return posapi.HealthResponse{}, err
	}
	return resp, nil
}

// Merchant fetches the given merchant, or the one the relay derives from headers or its own
// configuration when merchantID is empty.
func (a *posAPI) Merchant(c context.Context, merchantID string) (posapi.Merchant, error) {
	path := "/api/merchant"
	if merchantID != "" {
		path += "/" + url.PathEscape(merchantID)
	}
	resp := posapi.MerchantResponse{}
	err := a.doer.Do(c, http.MethodGet, path, nil, &resp)
	if err != nil {
		return posapi.Merchant{}, err
	}
	return resp.Merchant, nil
}

func (a *posAPI) CreateOrder(c context.Context, req posapi.CreateOrderRequest) (posapi.Order, error) {
	resp := posapi.OrderResponse{}
	err := a.doer.Do(c, http.MethodPost, "/api/orders", req, &resp)
	if err != nil {
		return posapi.Order{}, err
	}
	return resp.Order, nil
}

func (a *posAPI) GetOrder(c context.Context, orderID string) (posapi.Order, error) {
	resp := posapi.OrderResponse{}
	err := a.doer.Do(c, http.MethodGet, orderPath(orderID), nil, &resp)
	if err != nil {
		return posapi.Order{}, err
	}
	return resp.Order, nil
}

func (a *posAPI) AddLineItem(c context.Context, orderID string, req posapi.AddLineItemRequest) (posapi.LineItem, error) {
	resp := posapi.LineItemResponse{}
	err := a.doer.Do(c, http.MethodPost, orderPath(orderID)+"/line_items", req, &resp)
	if err != nil {
		return posapi.LineItem{}, err
	}
	return resp.LineItem, nil
}

func (a *posAPI) DeleteLineItem(c context.Context, orderID string, lineItemID string) error {
	return a.doer.Do(c, http.MethodDelete, orderPath(orderID)+"/line_items/"+url.PathEscape(lineItemID), nil, nil)
}

func (a *posAPI) PayOrder(c context.Context, orderID string, req posapi.PayRequest) (posapi.Payment, error) {
	resp := posapi.PaymentResponse{}
	err := a.doer.Do(c, http.MethodPost, orderPath(orderID)+"/pay", req, &resp)
	if err != nil {
		return posapi.Payment{}, err
	}
	return resp.Payment, nil
}

func (a *posAPI) OrderPayments(c context.Context, orderID string) ([]posapi.Payment, error) {
	resp := posapi.PaymentsResponse{}
	err := a.doer.Do(c, http.MethodGet, orderPath(orderID)+"/payments", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Payments, nil
}

func (a *posAPI) GetPayment(c context.Context, paymentID string) (posapi.Payment, error) {
	resp := posapi.PaymentResponse{}
	err := a.doer.Do(c, http.MethodGet, "/api/payments/"+url.PathEscape(paymentID), nil, &resp)
	if err != nil {
		return posapi.Payment{}, err
	}
	return resp.Payment, nil
}

func (a *posAPI) Transactions(c context.Context) ([]posapi.Transaction, error) {
	resp := posapi.TransactionsResponse{}
	err := a.doer.Do(c, http.MethodGet, "/api/transactions", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func orderPath(orderID string) string {
	return "/api/orders/" + url.PathEscape(orderID)
}
