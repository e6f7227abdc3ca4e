package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cloverconnect/lib/myconfig"
	"github.com/MarcGrol/cloverconnect/lib/myhttpclient"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/lib/myuuid"
	"github.com/MarcGrol/cloverconnect/services/health"
	"github.com/MarcGrol/cloverconnect/services/oauth"
	"github.com/MarcGrol/cloverconnect/services/oauth/oauthclient"
	"github.com/MarcGrol/cloverconnect/services/pos"
	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
	"github.com/MarcGrol/cloverconnect/services/transactions"
)

func main() {
	c := context.Background()

	cfg, err := myconfig.Load(".env", "backend/.env")
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	router := mux.NewRouter()

	err = health.NewService().RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering health service: %s", err)
	}

	oauthClient := oauthclient.NewOAuthClient(cfg.AppID, cfg.AppSecret, cfg.CloverOAuthURL, myhttpclient.NewJSONHTTPClient(nil, nil))
	err = oauth.NewService(oauthClient, cfg.OAuthRedirectURL).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering oauth service: %s", err)
	}

	transactionLog := transactions.NewLog()
	err = transactions.NewService(transactionLog).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering transactions service: %s", err)
	}

	static := posclient.Credential{
		AccessToken: cfg.AccessToken,
		MerchantID:  cfg.MerchantID,
	}
	err = pos.NewService(posclient.New(cfg.CloverBaseURL), transactionLog, static, mytime.RealNower{}, myuuid.RealUUIDer{}).RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering pos service: %s", err)
	}

	logStartup(c, cfg)

	startWebServerBlocking(cfg.Port, router)
}

func logStartup(c context.Context, cfg myconfig.Config) {
	logger := mylog.New("main")
	logger.Log(c, "", mylog.SeverityInfo, "Clover api: %s, oauth: %s", cfg.CloverBaseURL, cfg.CloverOAuthURL)
	if cfg.HasStaticCredential() {
		logger.Log(c, "", mylog.SeverityInfo, "Static credential configured for merchant %s (token %s)", cfg.MerchantID, mylog.Redact(cfg.AccessToken))
	} else {
		logger.Log(c, "", mylog.SeverityWarn, "No static credential configured: requests without bearer token will be rejected")
	}
	if !cfg.HasOAuthApp() {
		logger.Log(c, "", mylog.SeverityWarn, "APP_ID and APP_SECRET are not configured: the oauth flow will fail")
	}
}

func startWebServerBlocking(port string, router *mux.Router) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s/api/health)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
