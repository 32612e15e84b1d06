package safecharge

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/safecharge/safecharge-go/consts"
	"github.com/safecharge/safecharge-go/internal/checksum"
)

func dmnParams(t *testing.T, key string) url.Values {
	t.Helper()

	params := url.Values{}
	params.Set("totalAmount", "10.50")
	params.Set("currency", "USD")
	params.Set("responseTimeStamp", "2026-08-25.12:00:00")
	params.Set("PPP_TransactionID", "711000")
	params.Set("Status", "APPROVED")
	params.Set("productId", "coffee beans 1kg")

	sum, err := checksum.CalculateDMN(consts.HashSHA256, key,
		params.Get("totalAmount"),
		params.Get("currency"),
		params.Get("responseTimeStamp"),
		params.Get("PPP_TransactionID"),
		params.Get("Status"),
		params.Get("productId"),
	)
	if err != nil {
		t.Fatalf("calculate dmn checksum: %v", err)
	}
	params.Set("advanceResponseChecksum", sum)
	return params
}

func dmnClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(
		WithMerchantCredentials(testMerchantKey, testMerchantID, testMerchantSiteID),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client.(*Client)
}

func TestVerifyDMN(t *testing.T) {
	client := dmnClient(t)

	if err := client.VerifyDMN(dmnParams(t, testMerchantKey)); err != nil {
		t.Fatalf("expected valid dmn, got %v", err)
	}
}

func TestVerifyDMNIsCaseInsensitiveOnHex(t *testing.T) {
	client := dmnClient(t)

	params := dmnParams(t, testMerchantKey)
	params.Set("advanceResponseChecksum", strings.ToUpper(params.Get("advanceResponseChecksum")))

	if err := client.VerifyDMN(params); err != nil {
		t.Fatalf("uppercase hex digest must verify, got %v", err)
	}
}

func TestVerifyDMNRejectsWrongKey(t *testing.T) {
	client := dmnClient(t)

	err := client.VerifyDMN(dmnParams(t, "someoneElsesKey"))
	if !errors.Is(err, ErrDMNChecksumMismatch) {
		t.Fatalf("expected ErrDMNChecksumMismatch, got %v", err)
	}
}

func TestVerifyDMNRejectsTamperedAmount(t *testing.T) {
	client := dmnClient(t)

	params := dmnParams(t, testMerchantKey)
	params.Set("totalAmount", "9999.99")

	err := client.VerifyDMN(params)
	if !errors.Is(err, ErrDMNChecksumMismatch) {
		t.Fatalf("expected ErrDMNChecksumMismatch, got %v", err)
	}
}

func TestVerifyDMNMissingChecksum(t *testing.T) {
	client := dmnClient(t)

	params := dmnParams(t, testMerchantKey)
	params.Del("advanceResponseChecksum")

	err := client.VerifyDMN(params)
	if !IsValidationError(err) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
}
