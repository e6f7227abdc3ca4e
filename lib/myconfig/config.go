package myconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "3000"
	DefaultCloverBaseURL = "https://sandbox.dev.clover.com"
)

type Config struct {
	Port string
	// CloverBaseURL is the root of the vendor rest api
	CloverBaseURL string
	// CloverOAuthURL is the root of the vendor authorize, token and refresh endpoints
	CloverOAuthURL string
	// MerchantID and AccessToken form the static credential used when a request carries none
	MerchantID  string
	AccessToken string
	AppID       string
	AppSecret   string
	// OAuthRedirectURL overrides the callback url derived from the incoming request
	OAuthRedirectURL string
}

func (c Config) HasStaticCredential() bool {
	return c.MerchantID != "" && c.AccessToken != ""
}

func (c Config) HasOAuthApp() bool {
	return c.AppID != "" && c.AppSecret != ""
}

// Load reads the first existing env file, then lets process environment variables override it.
func Load(envFiles ...string) (Config, error) {
	fileEnv := map[string]string{}
	for _, envFile := range envFiles {
		values, err := godotenv.Read(envFile)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("error reading env file %s: %s", envFile, err)
		}
		fileEnv = values
		break
	}

	get := func(key, def string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}
		if val, ok := fileEnv[key]; ok && val != "" {
			return val
		}
		return def
	}

	cfg := Config{
		Port:             get("PORT", DefaultPort),
		CloverBaseURL:    strings.TrimSuffix(get("CLOVER_BASE_URL", DefaultCloverBaseURL), "/"),
		MerchantID:       get("MERCHANT_ID", ""),
		AccessToken:      get("ACCESS_TOKEN", ""),
		AppID:            get("APP_ID", ""),
		AppSecret:        get("APP_SECRET", ""),
		OAuthRedirectURL: get("OAUTH_REDIRECT_URL", ""),
	}
	cfg.CloverOAuthURL = strings.TrimSuffix(get("CLOVER_OAUTH_URL", cfg.CloverBaseURL), "/")

	return cfg, nil
}
