package transactions

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cloverconnect/lib/mycontext"
	"github.com/MarcGrol/cloverconnect/lib/myhttp"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

type webService struct {
	log    *Log
	logger mylog.Logger
}

func NewService(log *Log) *webService {
	return &webService{
		log:    log,
		logger: mylog.New("transactions"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/transactions", s.listPage()).Methods("GET")

	return nil
}

func (s *webService) listPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, posapi.TransactionsResponse{
			Success:      true,
			Transactions: s.log.List(c),
		})
	}
}
