package checksum

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/safecharge/safecharge-go/consts"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestCalculateAppendsKeyAfterOrderedFields(t *testing.T) {
	params := map[string]string{
		"merchantId":      "m-1",
		"merchantSiteId":  "s-1",
		"clientRequestId": "req-1",
		"timeStamp":       "20260825120000",
	}

	got, err := Calculate(consts.HashSHA256, "secret", APIBasic, params)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	want := sha256Hex("m-1" + "s-1" + "req-1" + "20260825120000" + "secret")
	if got != want {
		t.Fatalf("checksum mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestCalculateFieldOrderIsMappingOrderNotMapOrder(t *testing.T) {
	// APIGeneric orders amount before currency before timeStamp.
	params := map[string]string{
		"timeStamp":       "3",
		"currency":        "2",
		"amount":          "1",
		"clientRequestId": "r",
		"merchantSiteId":  "s",
		"merchantId":      "m",
	}

	got, err := Calculate(consts.HashSHA256, "k", APIGeneric, params)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if want := sha256Hex("msr123k"); got != want {
		t.Fatalf("field order not honored:\n got %s\nwant %s", got, want)
	}
}

func TestCalculateMissingFieldsContributeEmptyString(t *testing.T) {
	params := map[string]string{
		"merchantId":     "m",
		"merchantSiteId": "s",
		// clientRequestId, clientUniqueId, authCode absent
		"amount":               "1.00",
		"currency":             "USD",
		"relatedTransactionId": "tx-9",
		"timeStamp":            "20260825120000",
	}

	got, err := Calculate(consts.HashSHA256, "k", GWTransaction, params)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if want := sha256Hex("ms" + "1.00USD" + "tx-9" + "20260825120000" + "k"); got != want {
		t.Fatalf("missing fields must hash as empty strings:\n got %s\nwant %s", got, want)
	}
}

func TestCalculateMD5(t *testing.T) {
	params := map[string]string{
		"merchantId":      "m",
		"merchantSiteId":  "s",
		"clientRequestId": "r",
		"timeStamp":       "t",
	}

	got, err := Calculate(consts.HashMD5, "k", APIBasic, params)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if want := md5Hex("msrtk"); got != want {
		t.Fatalf("md5 checksum mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestCalculateUnknownMapping(t *testing.T) {
	_, err := Calculate(consts.HashSHA256, "k", OrderMapping("nope"), nil)
	if err == nil {
		t.Fatalf("expected error for unknown order mapping")
	}
}

func TestCalculateUnsupportedAlgorithm(t *testing.T) {
	_, err := Calculate(consts.HashAlgorithm("SHA-1"), "k", APIBasic, nil)
	if err == nil {
		t.Fatalf("expected error for unsupported hash algorithm")
	}
}

func TestCalculateDMNKeyComesFirst(t *testing.T) {
	got, err := CalculateDMN(consts.HashSHA256, "key", "10.50", "USD", "2026-08-25.12:00:00", "711000", "APPROVED", "prod-1")
	if err != nil {
		t.Fatalf("calculate dmn: %v", err)
	}

	want := sha256Hex("key" + "10.50" + "USD" + "2026-08-25.12:00:00" + "711000" + "APPROVED" + "prod-1")
	if got != want {
		t.Fatalf("dmn checksum mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestFields(t *testing.T) {
	fields, ok := Fields(CancelSubscription)
	if !ok {
		t.Fatalf("expected mapping to exist")
	}
	want := []string{"merchantId", "merchantSiteId", "userTokenId", "subscriptionId", "timeStamp"}
	if len(fields) != len(want) {
		t.Fatalf("unexpected field count: %v", fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("field %d: got %q want %q", i, fields[i], want[i])
		}
	}

	if _, ok := Fields(OrderMapping("nope")); ok {
		t.Fatalf("unknown mapping must report !ok")
	}
}
