package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/MarcGrol/cloverconnect/lib/myerrors"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
)

const (
	DefaultTimeout = 10 * time.Second
)

//go:generate mockgen -source=httpClient.go -package myhttpclient -destination httpClient_mock.go HTTPSender
type HTTPSender interface {
	Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error)
}

type jsonHTTPClient struct {
	client  *http.Client
	headers map[string]string
	logger  mylog.Logger
	debug   bool
}

// NewJSONHTTPClient sends json requests with the given client. Authentication is the concern of the
// client's transport (for example an oauth2 transport), extra headers are added to every request.
func NewJSONHTTPClient(client *http.Client, headers map[string]string) HTTPSender {
	if client == nil {
		client = &http.Client{}
	}
	if client.Timeout == 0 {
		client.Timeout = DefaultTimeout
	}
	return &jsonHTTPClient{
		client:  client,
		headers: headers,
		logger:  mylog.New("httpclient"),
		debug:   os.Getenv("HTTP_DEBUG") != "",
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %s", method, url, err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	if c.debug {
		reqDump, err := httputil.DumpRequestOut(httpReq, true)
		if err == nil {
			fmt.Printf("HTTP-req:\n%s", string(reqDump))
		}
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, myerrors.NewNetworkError(fmt.Errorf("error sending %s %s: %s", method, url, err))
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, myerrors.NewNetworkError(fmt.Errorf("error reading response %s %s: %s", method, url, err))
	}

	c.logger.Log(ctx, "", mylog.SeverityDebug, "HTTP call: %s %s -> %d", method, url, httpResp.StatusCode)

	return httpResp.StatusCode, respPayload, nil
}
