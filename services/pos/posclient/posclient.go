package posclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/myhttpclient"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
)

//go:generate mockgen -source=posclient.go -package posclient -destination posclient_mock.go PosClient
type PosClient interface {
	GetMerchant(c context.Context, cred Credential) (Merchant, error)
	CreateAtomicOrder(c context.Context, cred Credential, req AtomicOrderRequest) (Order, error)
	GetOrder(c context.Context, cred Credential, orderID string, expandLineItems bool) (Order, error)
	AddLineItem(c context.Context, cred Credential, orderID string, req CreateLineItemRequest) (LineItem, error)
	DeleteLineItem(c context.Context, cred Credential, orderID string, lineItemID string) error
	ListTenders(c context.Context, cred Credential) ([]Tender, error)
	CreatePayment(c context.Context, cred Credential, orderID string, req CreatePaymentRequest) (Payment, error)
	ListOrderPayments(c context.Context, cred Credential, orderID string) ([]Payment, error)
	GetPayment(c context.Context, cred Credential, paymentID string) (Payment, error)
}

// SenderFactory creates a transport that authenticates every request with the given bearer token.
type SenderFactory func(c context.Context, accessToken string) myhttpclient.HTTPSender

type posClient struct {
	baseURL   string
	newSender SenderFactory
	logger    mylog.Logger
}

func New(baseURL string) *posClient {
	return NewWithSender(baseURL, BearerSender)
}

func NewWithSender(baseURL string, newSender SenderFactory) *posClient {
	return &posClient{
		baseURL:   baseURL,
		newSender: newSender,
		logger:    mylog.New("posclient"),
	}
}

func BearerSender(c context.Context, accessToken string) myhttpclient.HTTPSender {
	client := oauth2.NewClient(c, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	return myhttpclient.NewJSONHTTPClient(client, nil)
}

func (pc *posClient) merchantURL(cred Credential, format string, args ...any) string {
	return fmt.Sprintf("%s/v3/merchants/%s", pc.baseURL, url.PathEscape(cred.MerchantID)) + fmt.Sprintf(format, args...)
}

func (pc *posClient) GetMerchant(c context.Context, cred Credential) (Merchant, error) {
	merchant := Merchant{}
	err := pc.call(c, cred, http.MethodGet, pc.merchantURL(cred, ""), nil, &merchant, "Failed to fetch merchant information")
	if err != nil {
		return Merchant{}, err
	}
	return merchant, nil
}

func (pc *posClient) CreateAtomicOrder(c context.Context, cred Credential, req AtomicOrderRequest) (Order, error) {
	order := Order{}
	err := pc.call(c, cred, http.MethodPost, pc.merchantURL(cred, "/atomic_order/orders"), req, &order, "Failed to create order")
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func (pc *posClient) GetOrder(c context.Context, cred Credential, orderID string, expandLineItems bool) (Order, error) {
	u := pc.merchantURL(cred, "/orders/%s", url.PathEscape(orderID))
	if expandLineItems {
		u += "?expand=lineItems"
	}

	order := Order{}
	err := pc.call(c, cred, http.MethodGet, u, nil, &order, "Failed to fetch order")
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

func (pc *posClient) AddLineItem(c context.Context, cred Credential, orderID string, req CreateLineItemRequest) (LineItem, error) {
	lineItem := LineItem{}
	err := pc.call(c, cred, http.MethodPost, pc.merchantURL(cred, "/orders/%s/line_items", url.PathEscape(orderID)), req, &lineItem, "Failed to add line item")
	if err != nil {
		return LineItem{}, err
	}
	return lineItem, nil
}

func (pc *posClient) DeleteLineItem(c context.Context, cred Credential, orderID string, lineItemID string) error {
	return pc.call(c, cred, http.MethodDelete, pc.merchantURL(cred, "/orders/%s/line_items/%s", url.PathEscape(orderID), url.PathEscape(lineItemID)), nil, nil, "Failed to delete line item")
}

func (pc *posClient) ListTenders(c context.Context, cred Credential) ([]Tender, error) {
	resp := tenders{}
	err := pc.call(c, cred, http.MethodGet, pc.merchantURL(cred, "/tenders"), nil, &resp, "Failed to fetch tenders")
	if err != nil {
		return nil, err
	}
	if resp.Elements == nil {
		return []Tender{}, nil
	}
	return resp.Elements, nil
}

func (pc *posClient) CreatePayment(c context.Context, cred Credential, orderID string, req CreatePaymentRequest) (Payment, error) {
	payment := Payment{}
	err := pc.call(c, cred, http.MethodPost, pc.merchantURL(cred, "/orders/%s/payments", url.PathEscape(orderID)), req, &payment, "Failed to process payment")
	if err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (pc *posClient) ListOrderPayments(c context.Context, cred Credential, orderID string) ([]Payment, error) {
	resp := payments{}
	err := pc.call(c, cred, http.MethodGet, pc.merchantURL(cred, "/orders/%s/payments", url.PathEscape(orderID)), nil, &resp, "Failed to fetch order payments")
	if err != nil {
		return nil, err
	}
	if resp.Elements == nil {
		return []Payment{}, nil
	}
	return resp.Elements, nil
}

func (pc *posClient) GetPayment(c context.Context, cred Credential, paymentID string) (Payment, error) {
	payment := Payment{}
	err := pc.call(c, cred, http.MethodGet, pc.merchantURL(cred, "/payments/%s", url.PathEscape(paymentID)), nil, &payment, "Failed to fetch payment status")
	if err != nil {
		return Payment{}, err
	}
	return payment, nil
}

func (pc *posClient) call(c context.Context, cred Credential, method string, u string, req any, resp any, failure string) error {
	var body []byte
	if req != nil {
		var err error
		body, err = json.Marshal(req)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error marshalling request for %s %s: %s", method, u, err))
		}
	}

	pc.logger.Log(c, cred.MerchantID, mylog.SeverityDebug, "%s %s (token %s)", method, u, mylog.Redact(cred.AccessToken))

	status, respBody, err := pc.newSender(c, cred.AccessToken).Send(c, method, u, body)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}

	err = mapStatus(status, respBody, failure)
	if err != nil {
		pc.logger.Log(c, cred.MerchantID, mylog.SeverityWarn, "%s %s -> %d: %s", method, u, status, string(respBody))
		return err
	}

	if resp == nil || len(respBody) == 0 {
		return nil
	}

	err = json.Unmarshal(respBody, resp)
	if err != nil {
		return myerrors.NewVendorError(errors.New(failure), fmt.Sprintf("error parsing response: %s", err))
	}

	return nil
}

func mapStatus(status int, respBody []byte, failure string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return myerrors.NewUnauthorizedError(errors.New("Unauthorized - Invalid or expired access token"))
	case status == http.StatusNotFound:
		return myerrors.NewNotFoundError(fmt.Errorf("%s: not found", failure))
	default:
		return myerrors.NewVendorError(errors.New(failure), vendorDetails(status, respBody))
	}
}

// vendorDetails prefers the message field of a json error body, falling back to the raw body.
func vendorDetails(status int, respBody []byte) string {
	vendorErr := struct {
		Message string `json:"message"`
	}{}
	if json.Unmarshal(respBody, &vendorErr) == nil && vendorErr.Message != "" {
		return vendorErr.Message
	}
	if len(respBody) > 0 {
		return string(respBody)
	}
	return fmt.Sprintf("vendor responded with http status %d", status)
}
