package safecharge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stremovskyy/recorder"

	"github.com/safecharge/safecharge-go/cashier"
	"github.com/safecharge/safecharge-go/consts"
	"github.com/safecharge/safecharge-go/internal/checksum"
	sdklog "github.com/safecharge/safecharge-go/log"
)

const (
	testMerchantKey    = "testKey"
	testMerchantID     = "m-100"
	testMerchantSiteID = "s-200"
)

func testClient(t *testing.T, serverURL string, extra ...Option) Safecharge {
	t.Helper()

	opts := append([]Option{
		WithMerchantCredentials(testMerchantKey, testMerchantID, testMerchantSiteID),
		WithServerHost(serverURL),
	}, extra...)
	client, err := NewClient(opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

// verifyChecksum recomputes the request checksum the way the gateway does
// and fails the surrounding handler on mismatch.
func verifyChecksum(t *testing.T, body []byte, mapping checksum.OrderMapping) map[string]string {
	t.Helper()

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Errorf("decode request body: %v", err)
		return nil
	}
	params := make(map[string]string, len(payload))
	for k, v := range payload {
		if s, ok := v.(string); ok {
			params[k] = s
		}
	}

	want, err := checksum.Calculate(consts.HashSHA256, testMerchantKey, mapping, params)
	if err != nil {
		t.Errorf("recompute checksum: %v", err)
		return params
	}
	if params["checksum"] != want {
		t.Errorf("checksum mismatch:\n got %s\nwant %s", params["checksum"], want)
	}
	return params
}

func TestGetSessionTokenStampsAndChecksumsRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getSessionToken.do" {
			http.NotFound(w, r)
			t.Errorf("unexpected path: %s", r.URL.Path)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		params := verifyChecksum(t, body, checksum.APIBasic)
		if params["merchantId"] != testMerchantID || params["merchantSiteId"] != testMerchantSiteID {
			t.Errorf("merchant identity not stamped: %v", params)
		}
		if params["clientRequestId"] == "" || params["timeStamp"] == "" {
			t.Errorf("clientRequestId and timeStamp must be generated: %v", params)
		}

		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionToken":"tok-1","internalRequestId":17}`))
	}))
	defer ts.Close()

	client := testClient(t, ts.URL)

	resp, err := client.Session().GetSessionToken(context.Background(), nil)
	if err != nil {
		t.Fatalf("get session token: %v", err)
	}
	if !resp.Success() || resp.SessionToken != "tok-1" || resp.InternalRequestID != 17 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPrebuiltRequestIsSentUnchanged(t *testing.T) {
	merchant := cashier.NewMerchantInfo(testMerchantKey, testMerchantID, testMerchantSiteID, "")

	req, err := cashier.NewGetSessionTokenBuilder(merchant).
		ClientRequestID("prebuilt-1").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	builtChecksum := req.Checksum

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		params := verifyChecksum(t, body, checksum.APIBasic)
		if params["clientRequestId"] != "prebuilt-1" {
			t.Errorf("prebuilt clientRequestId must survive, got %q", params["clientRequestId"])
		}
		if params["checksum"] != builtChecksum {
			t.Errorf("prebuilt checksum must not be recomputed")
		}
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionToken":"tok-2"}`))
	}))
	defer ts.Close()

	client := testClient(t, ts.URL)

	resp, err := client.Session().GetSessionToken(context.Background(), req)
	if err != nil {
		t.Fatalf("get session token: %v", err)
	}
	if resp.SessionToken != "tok-2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGatewayErrorKeepsResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ERROR","errCode":1001,"reason":"Invalid checksum"}`))
	}))
	defer ts.Close()

	client := testClient(t, ts.URL)

	resp, err := client.Session().GetSessionToken(context.Background(), nil)
	if !IsGatewayError(err) {
		t.Fatalf("expected *GatewayError, got %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), "Invalid checksum") {
		t.Fatalf("expected reason in error, got %q", err.Error())
	}
	if resp == nil || resp.ErrCode != 1001 {
		t.Fatalf("full error response must be returned alongside the error: %+v", resp)
	}
}

func TestHTTPErrorBecomesAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer ts.Close()

	client := testClient(t, ts.URL)

	_, err := client.Session().GetSessionToken(context.Background(), nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", apiErr.StatusCode)
	}
}

func TestMissingMerchantCredentials(t *testing.T) {
	client, err := NewDefaultClient()
	if err != nil {
		t.Fatalf("new default client: %v", err)
	}

	_, err = client.Session().GetSessionToken(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "WithMerchantCredentials") {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestValidationErrorBlocksHTTPCall(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer ts.Close()

	client := testClient(t, ts.URL)

	// Missing session token, currency, amount and items.
	_, err := client.Orders().OpenOrder(context.Background(), &cashier.OpenOrderRequest{})
	if !IsValidationError(err) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("invalid request must not reach the wire, got %d calls", hits)
	}
}

func TestDryRunSkipsHTTPCall(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer ts.Close()

	client := testClient(t, ts.URL)

	var (
		called    bool
		gotMethod string
		gotURL    string
		gotReq    *cashier.GetSessionTokenRequest
	)
	_, err := client.Session().GetSessionToken(context.Background(), nil, DryRun(func(method string, url string, payload any) {
		called = true
		gotMethod = method
		gotURL = url
		if v, ok := payload.(*cashier.GetSessionTokenRequest); ok {
			gotReq = v
		}
	}))
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}

	if !called {
		t.Fatalf("dry run handler was not called")
	}
	if gotMethod != "POST" {
		t.Fatalf("unexpected method: %q", gotMethod)
	}
	if gotURL != ts.URL+"/getSessionToken.do" {
		t.Fatalf("unexpected url: %q", gotURL)
	}
	if gotReq == nil || gotReq.Checksum == "" {
		t.Fatalf("dry run payload must be the finalized request: %+v", gotReq)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("expected no HTTP calls, got %d", hits)
	}
}

func TestNewClientWithRecorderRecordsTraffic(t *testing.T) {
	rec := &testRecorder{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionToken":"tok-1"}`))
	}))
	defer ts.Close()

	client, err := NewClientWithRecorder(rec,
		WithMerchantCredentials(testMerchantKey, testMerchantID, testMerchantSiteID),
		WithServerHost(ts.URL),
	)
	if err != nil {
		t.Fatalf("new client with recorder: %v", err)
	}

	if _, err := client.Session().GetSessionToken(context.Background(), nil); err != nil {
		t.Fatalf("get session token: %v", err)
	}

	if rec.requestCount != 1 {
		t.Fatalf("expected 1 recorded request, got %d", rec.requestCount)
	}
	if rec.responseCount != 1 {
		t.Fatalf("expected 1 recorded response, got %d", rec.responseCount)
	}
	if rec.errorCount != 0 {
		t.Fatalf("expected 0 recorded errors, got %d", rec.errorCount)
	}
}

func TestSetLogLevelTogglesDebugLogging(t *testing.T) {
	logger := &testLogger{level: sdklog.LevelInfo}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionToken":"tok-1"}`))
	}))
	defer ts.Close()

	client := testClient(t, ts.URL, WithLogger(logger))

	if _, err := client.Session().GetSessionToken(context.Background(), nil); err != nil {
		t.Fatalf("get session token before debug: %v", err)
	}
	if logger.debugCount != 0 {
		t.Fatalf("expected 0 debug logs before enabling debug, got %d", logger.debugCount)
	}

	client.SetLogLevel(sdklog.LevelDebug)

	if _, err := client.Session().GetSessionToken(context.Background(), nil); err != nil {
		t.Fatalf("get session token after debug: %v", err)
	}
	if logger.debugCount == 0 {
		t.Fatalf("expected debug logs after enabling debug level")
	}
}

type testRecorder struct {
	requestCount  int
	responseCount int
	errorCount    int
}

func (t *testRecorder) RecordRequest(context.Context, *string, string, []byte, map[string]string) error {
	t.requestCount++
	return nil
}

func (t *testRecorder) RecordResponse(context.Context, *string, string, []byte, map[string]string) error {
	t.responseCount++
	return nil
}

func (t *testRecorder) RecordError(context.Context, *string, string, error, map[string]string) error {
	t.errorCount++
	return nil
}

func (t *testRecorder) RecordMetrics(context.Context, *string, string, map[string]string, map[string]string) error {
	return nil
}

func (t *testRecorder) GetRequest(context.Context, string) ([]byte, error) {
	return nil, nil
}

func (t *testRecorder) GetResponse(context.Context, string) ([]byte, error) {
	return nil, nil
}

func (t *testRecorder) FindByTag(context.Context, string) ([]string, error) {
	return nil, nil
}

func (t *testRecorder) Async() recorder.AsyncRecorder {
	return nil
}

type testLogger struct {
	level      sdklog.Level
	debugCount int
	infoCount  int
	warnCount  int
	errCount   int
}

func (t *testLogger) SetLevel(level sdklog.Level) {
	t.level = level
}

func (t *testLogger) Debugf(string, ...any) {
	if t.level <= sdklog.LevelDebug {
		t.debugCount++
	}
}

func (t *testLogger) Infof(string, ...any) {
	if t.level <= sdklog.LevelInfo {
		t.infoCount++
	}
}

func (t *testLogger) Warnf(string, ...any) {
	if t.level <= sdklog.LevelWarn {
		t.warnCount++
	}
}

func (t *testLogger) Errorf(string, ...any) {
	if t.level <= sdklog.LevelError {
		t.errCount++
	}
}
