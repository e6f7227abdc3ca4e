package pos

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cloverconnect/lib/mycontext"
	"github.com/MarcGrol/cloverconnect/lib/myhttp"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/lib/myuuid"
	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

type webService struct {
	service *service
	static  posclient.Credential
	logger  mylog.Logger
}

// NewService wires the vendor facing endpoints. The static credential is used for requests without a
// bearer token and is never returned to callers.
func NewService(posClient posclient.PosClient, transactions TransactionRecorder, static posclient.Credential, nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	return &webService{
		service: newService(posClient, transactions, nower, uuider),
		static:  static,
		logger:  mylog.New("pos"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/merchant/{merchantId}", s.merchantPage()).Methods("GET")
	router.HandleFunc("/api/merchant", s.legacyMerchantPage()).Methods("GET")

	router.HandleFunc("/api/orders", s.createOrderPage()).Methods("POST")
	router.HandleFunc("/api/orders/{orderId}", s.getOrderPage()).Methods("GET")
	router.HandleFunc("/api/orders/{orderId}/line_items", s.addLineItemPage()).Methods("POST")
	router.HandleFunc("/api/orders/{orderId}/line_items/{lineItemId}", s.deleteLineItemPage()).Methods("DELETE")
	router.HandleFunc("/api/orders/{orderId}/pay", s.payOrderPage()).Methods("POST")
	router.HandleFunc("/api/orders/{orderId}/payments", s.listOrderPaymentsPage()).Methods("GET")

	router.HandleFunc("/api/payments/{paymentId}", s.getPaymentPage()).Methods("GET")

	return nil
}

func (s *webService) merchantPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cred, err := resolveCredential(r, s.static, mux.Vars(r)["merchantId"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		merchant, err := s.service.getMerchant(c, cred, false)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.MerchantResponse{
			Success:  true,
			Merchant: merchant,
		})
	}
}

func (s *webService) legacyMerchantPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		merchant, err := s.service.getMerchant(c, cred, true)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.MerchantResponse{
			Success:  true,
			Merchant: merchant,
		})
	}
}

func (s *webService) createOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := posapi.CreateOrderRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		order, err := s.service.createOrder(c, cred, req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.OrderResponse{
			Success: true,
			Order:   order,
		})
	}
}

func (s *webService) getOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		order, err := s.service.getOrder(c, cred, mux.Vars(r)["orderId"])
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.OrderResponse{
			Success: true,
			Order:   order,
		})
	}
}

func (s *webService) addLineItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := posapi.AddLineItemRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		lineItem, err := s.service.addLineItem(c, cred, mux.Vars(r)["orderId"], req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.LineItemResponse{
			Success:  true,
			LineItem: lineItem,
		})
	}
}

func (s *webService) deleteLineItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		err = s.service.deleteLineItem(c, cred, mux.Vars(r)["orderId"], mux.Vars(r)["lineItemId"])
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Success: true,
			Message: "Line item deleted successfully",
		})
	}
}

func (s *webService) payOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		// the card token is accepted for compatibility, tenders are charged without it
		req := posapi.PayRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		payment, err := s.service.payOrder(c, cred, mux.Vars(r)["orderId"])
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.PaymentResponse{
			Success: true,
			Payment: payment,
		})
	}
}

func (s *webService) listOrderPaymentsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		payments, err := s.service.listOrderPayments(c, cred, mux.Vars(r)["orderId"])
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.PaymentsResponse{
			Success:  true,
			Payments: payments,
		})
	}
}

func (s *webService) getPaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cred, err := resolveCredential(r, s.static, "")
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		payment, err := s.service.getPayment(c, cred, mux.Vars(r)["paymentId"])
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, posapi.PaymentResponse{
			Success: true,
			Payment: payment,
		})
	}
}
