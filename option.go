package safecharge

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stremovskyy/recorder"

	"github.com/safecharge/safecharge-go/cashier"
	"github.com/safecharge/safecharge-go/consts"
	"github.com/safecharge/safecharge-go/log"
)

type Option func(*config) error

type config struct {
	serverHost string
	merchant   cashier.MerchantInfo

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool

	retryAttempts int
	retryWait     time.Duration
	recorder      recorder.Recorder
}

func defaultConfig() config {
	return config{
		serverHost:    consts.DefaultServerHost,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        log.NewDefault(),
		retryAttempts: 1,
		retryWait:     300 * time.Millisecond,
	}
}

// WithMerchant sets the merchant credentials used to stamp and checksum requests.
func WithMerchant(m cashier.MerchantInfo) Option {
	return func(cfg *config) error {
		if m.MerchantKey == "" {
			return errors.New("merchant key is empty")
		}
		if m.MerchantID == "" || m.MerchantSiteID == "" {
			return errors.New("merchant id and site id are required")
		}
		cfg.merchant = m
		return nil
	}
}

// WithMerchantCredentials is a convenience wrapper around WithMerchant
// using the default hash algorithm (SHA-256).
func WithMerchantCredentials(merchantKey, merchantID, merchantSiteID string) Option {
	return WithMerchant(cashier.NewMerchantInfo(merchantKey, merchantID, merchantSiteID, consts.HashSHA256))
}

// WithHashAlgorithm overrides the checksum hash algorithm.
//
// SHA-256 is the default; MD5 exists for legacy merchant accounts only.
func WithHashAlgorithm(algo consts.HashAlgorithm) Option {
	return func(cfg *config) error {
		switch algo {
		case consts.HashMD5, consts.HashSHA256:
			cfg.merchant.HashAlgorithm = algo
			return nil
		default:
			return errors.New("unsupported hash algorithm: " + string(algo))
		}
	}
}

// WithServerHost sets the Cashier API base URL.
//
// Defaults to the integration environment; use consts.ProductionServerHost for live traffic.
func WithServerHost(serverHost string) Option {
	return func(cfg *config) error {
		serverHost = strings.TrimSpace(serverHost)
		if serverHost == "" {
			return errors.New("server host is empty")
		}
		cfg.serverHost = serverHost
		return nil
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithClient is an alias of WithHTTPClient.
func WithClient(client *http.Client) Option {
	return WithHTTPClient(client)
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables verbose request/response body logging for debugging.
//
// Disabled by default because bodies contain card data and session tokens.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a request/response recorder.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}

func WithRetry(attempts int, wait time.Duration) Option {
	return func(cfg *config) error {
		if attempts <= 0 {
			return errors.New("retry attempts must be > 0")
		}
		if wait <= 0 {
			return errors.New("retry wait must be > 0")
		}
		cfg.retryAttempts = attempts
		cfg.retryWait = wait
		return nil
	}
}
