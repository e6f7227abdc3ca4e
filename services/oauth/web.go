package oauth

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cloverconnect/lib/mycontext"
	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/myhttp"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/services/oauth/oauthclient"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

type webService struct {
	service     *service
	redirectURL string
	logger      mylog.Logger
}

// NewService relays the token endpoints of the vendor. The application id and secret live in the
// oauth client and are never exposed. An empty redirectURL means the callback of this host is used.
func NewService(oauthClient oauthclient.OauthClient, redirectURL string) *webService {
	return &webService{
		service:     newService(oauthClient),
		redirectURL: redirectURL,
		logger:      mylog.New("oauth"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/oauth", s.helperPage()).Methods("GET")
	router.HandleFunc("/oauth/authorize", s.authorizePage()).Methods("GET")
	router.HandleFunc("/oauth/callback", s.callbackPage()).Methods("GET")

	router.HandleFunc("/api/oauth/token", s.tokenPage()).Methods("POST")
	router.HandleFunc("/api/oauth/refresh", s.refreshPage()).Methods("POST")

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	helperPageTemplate *template.Template
)

func init() {
	helperPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/oauth.html"))
}

func (s *webService) callbackURL(r *http.Request) string {
	if s.redirectURL != "" {
		return s.redirectURL
	}
	return myhttp.HostnameWithScheme(r) + callbackPath
}

func (s *webService) helperPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		params := CallbackParams{}
		err := decodeQuery(r.URL.Query(), &params)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = helperPageTemplate.Execute(w, HelperPage{
			CallbackParams: params,
			Command:        params.finishCommand(),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *webService) authorizePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		params := AuthorizeParams{}
		err := decodeQuery(r.URL.Query(), &params)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		authURL, err := s.service.authorizeURL(c, params, s.callbackURL(r))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		http.Redirect(w, r, authURL, http.StatusSeeOther)
	}
}

func (s *webService) callbackPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		params := CallbackParams{}
		err := decodeQuery(r.URL.Query(), &params)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		http.Redirect(w, r, s.service.callbackRedirect(c, params), http.StatusSeeOther)
	}
}

func (s *webService) tokenPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := posapi.TokenRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.exchangeToken(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) refreshPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := posapi.RefreshRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.refreshToken(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
