package safecharge

import (
	"crypto/subtle"
	"errors"
	"net/url"
	"strings"

	"github.com/safecharge/safecharge-go/internal/checksum"
)

// DMN parameter names as posted by the cashier notification service.
const (
	dmnParamChecksum          = "advanceResponseChecksum"
	dmnParamTotalAmount       = "totalAmount"
	dmnParamCurrency          = "currency"
	dmnParamResponseTimeStamp = "responseTimeStamp"
	dmnParamPPPTransactionID  = "PPP_TransactionID"
	dmnParamStatus            = "Status"
	dmnParamProductID         = "productId"
)

// ErrDMNChecksumMismatch is returned when a notification's checksum does not
// match the one computed from the merchant key.
var ErrDMNChecksumMismatch = errors.New("dmn checksum mismatch")

// VerifyDMN authenticates a Direct Merchant Notification callback.
//
// Pass the full form/query parameter set received on the DMN endpoint.
// A nil return means the notification was produced with this merchant's key.
func (c *Client) VerifyDMN(params url.Values) error {
	if c == nil {
		return errors.New("client is nil")
	}
	if err := ensureMerchantReady(c); err != nil {
		return err
	}
	if params == nil {
		return &ValidationError{Fields: []FieldError{{Field: "params", Message: "is nil"}}}
	}

	got := strings.TrimSpace(params.Get(dmnParamChecksum))
	if got == "" {
		return &ValidationError{Fields: []FieldError{{Field: dmnParamChecksum, Message: "is required"}}}
	}

	want, err := checksum.CalculateDMN(
		c.cfg.merchant.HashAlgorithm,
		c.cfg.merchant.MerchantKey,
		params.Get(dmnParamTotalAmount),
		params.Get(dmnParamCurrency),
		params.Get(dmnParamResponseTimeStamp),
		params.Get(dmnParamPPPTransactionID),
		params.Get(dmnParamStatus),
		params.Get(dmnParamProductID),
	)
	if err != nil {
		return err
	}

	// Hex digests are compared case-insensitively; gateways differ here.
	if subtle.ConstantTimeCompare([]byte(strings.ToLower(got)), []byte(strings.ToLower(want))) != 1 {
		return ErrDMNChecksumMismatch
	}
	return nil
}
