package health

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cloverconnect/lib/mycontext"
	"github.com/MarcGrol/cloverconnect/lib/myhttp"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

const (
	statusOK      = "OK"
	statusMessage = "Clover Payment Server is running"
)

type webService struct {
	logger mylog.Logger
}

func NewService() *webService {
	return &webService{
		logger: mylog.New("health"),
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/health", s.healthPage()).Methods("GET")
	router.HandleFunc("/_ah/warmup", s.healthPage()).Methods("GET")

	return nil
}

func (s *webService) healthPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, posapi.HealthResponse{
			Status:  statusOK,
			Message: statusMessage,
		})
	}
}
