package cashier

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/safecharge/safecharge-go/internal/checksum"
)

var testMerchant = NewMerchantInfo("testKey", "m-100", "s-200", "")

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func fieldError(t *testing.T, err error, field string) FieldError {
	t.Helper()

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	for _, fe := range ve.Fields {
		if fe.Field == field {
			return fe
		}
	}
	t.Fatalf("expected a field error for %q, got %+v", field, ve.Fields)
	return FieldError{}
}

func TestFinalizeChecksumAPIBasic(t *testing.T) {
	req := &GetSessionTokenRequest{}
	req.ClientRequestID = "r-1"
	req.TimeStamp = "20260825120000"

	if err := Finalize(testMerchant, req); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	want := sha256Hex("m-100" + "s-200" + "r-1" + "20260825120000" + "testKey")
	if req.Checksum != want {
		t.Fatalf("checksum mismatch:\n got %s\nwant %s", req.Checksum, want)
	}
	if req.MerchantID != "m-100" || req.MerchantSiteID != "s-200" {
		t.Fatalf("merchant identity not stamped: %+v", req.BaseRequest)
	}
}

func TestFinalizeGeneratesTimestampAndRequestID(t *testing.T) {
	req := &GetSessionTokenRequest{}

	if err := Finalize(testMerchant, req); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if _, err := uuid.Parse(req.ClientRequestID); err != nil {
		t.Fatalf("clientRequestId must be a generated UUID, got %q: %v", req.ClientRequestID, err)
	}
	ts, err := time.Parse(checksum.TimeStampLayout, req.TimeStamp)
	if err != nil {
		t.Fatalf("timeStamp must use the gateway layout, got %q: %v", req.TimeStamp, err)
	}
	if d := time.Since(ts); d < -time.Minute || d > time.Hour {
		t.Fatalf("timeStamp not close to now: %q", req.TimeStamp)
	}
}

func TestFinalizeKeepsCallerRequestID(t *testing.T) {
	req := &GetSessionTokenRequest{}
	req.ClientRequestID = "caller-chosen"

	if err := Finalize(testMerchant, req); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if req.ClientRequestID != "caller-chosen" {
		t.Fatalf("caller clientRequestId must be kept, got %q", req.ClientRequestID)
	}
}

func TestFinalizeMD5Merchant(t *testing.T) {
	m := NewMerchantInfo("k", "m", "s", "MD5")

	req := &GetSessionTokenRequest{}
	req.ClientRequestID = "r"
	req.TimeStamp = "20260825120000"

	if err := Finalize(m, req); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	// MD5 hex digests are 32 chars; SHA-256 are 64.
	if len(req.Checksum) != 32 {
		t.Fatalf("expected md5 checksum, got %q", req.Checksum)
	}
}

func TestCancelSubscriptionChecksumMapping(t *testing.T) {
	req, err := NewCancelSubscriptionBuilder(testMerchant).
		ClientRequestID("r-2").
		UserTokenID("user-7").
		SubscriptionID("sub-9").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// The subscription mapping hashes userTokenId and subscriptionId, not clientRequestId.
	want := sha256Hex("m-100" + "s-200" + "user-7" + "sub-9" + req.TimeStamp + "testKey")
	if req.Checksum != want {
		t.Fatalf("checksum mismatch:\n got %s\nwant %s", req.Checksum, want)
	}
}

func TestAddUPOCreditCardChecksumIncludesCardFields(t *testing.T) {
	req, err := NewAddUPOCreditCardBuilder(testMerchant).
		ClientRequestID("r-3").
		UserTokenID("user-7").
		CardNumber("4012001037141112").
		Expiration("12", "2030").
		NameOnCard("John Smith").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := sha256Hex("m-100" + "s-200" + "user-7" + "r-3" +
		"4012001037141112" + "12" + "2030" + "John Smith" + req.TimeStamp + "testKey")
	if req.Checksum != want {
		t.Fatalf("checksum mismatch:\n got %s\nwant %s", req.Checksum, want)
	}
}

func TestValidateRequiresSessionToken(t *testing.T) {
	_, err := NewOpenOrderBuilder(testMerchant).
		Currency("USD").
		Amount("5.00").
		Item(Item{Name: "thing", Price: "5.00", Quantity: "1"}).
		Build()

	fe := fieldError(t, err, "sessionToken")
	if fe.Message != "is required" {
		t.Fatalf("unexpected message: %q", fe.Message)
	}
}

func TestValidateAmountMustMatchItemTotal(t *testing.T) {
	_, err := NewOpenOrderBuilder(testMerchant).
		SessionToken("tok").
		Currency("USD").
		Amount("10.00").
		Item(Item{Name: "thing", Price: "3.00", Quantity: "2"}).
		Build()

	fe := fieldError(t, err, "amount")
	if !strings.Contains(fe.Message, "6") {
		t.Fatalf("expected the item total in the message, got %q", fe.Message)
	}
}

func TestValidateAcceptsMatchingItemTotal(t *testing.T) {
	req, err := NewOpenOrderBuilder(testMerchant).
		SessionToken("tok").
		Currency("USD").
		Amount("6.00").
		Item(Item{Name: "thing", Price: "3.00", Quantity: "2"}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if req.Checksum == "" {
		t.Fatalf("built request must carry a checksum")
	}
}

func TestPaymentCCRequiresExactlyOnePaymentSource(t *testing.T) {
	base := func() *PaymentCCBuilder {
		return NewPaymentCCBuilder(testMerchant).
			SessionToken("tok").
			Currency("USD").
			Amount("5.00").
			Item(Item{Name: "thing", Price: "5.00", Quantity: "1"})
	}

	_, err := base().Build()
	fieldError(t, err, "cardData")

	_, err = base().
		CardData(&CardData{CardNumber: "4012001037141112", ExpirationMonth: "12", ExpirationYear: "2030", CVV: "217"}).
		UserPaymentOption(&UserPaymentOption{UserPaymentOptionID: "upo-1"}).
		Build()
	fe := fieldError(t, err, "cardData")
	if !strings.Contains(fe.Message, "mutually exclusive") {
		t.Fatalf("unexpected message: %q", fe.Message)
	}
}

func TestValidateReportsAllViolatedFields(t *testing.T) {
	err := Validate(&GetSessionTokenRequest{})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}

	got := make(map[string]bool, len(ve.Fields))
	for _, fe := range ve.Fields {
		got[fe.Field] = true
	}
	for _, field := range []string{"merchantId", "merchantSiteId", "timeStamp", "checksum"} {
		if !got[field] {
			t.Fatalf("expected a field error for %q, got %+v", field, ve.Fields)
		}
	}
}

func TestValidateNilRequest(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatalf("expected error for nil request")
	}
	if err := Finalize(testMerchant, nil); err == nil {
		t.Fatalf("expected error for nil request")
	}
}

func TestValidateRejectsBadDeclarativeFields(t *testing.T) {
	_, err := NewAddUPOCreditCardBuilder(testMerchant).
		UserTokenID("user-7").
		CardNumber("not-a-pan").
		Expiration("13", "203").
		NameOnCard("John Smith").
		Build()

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if len(ve.Fields) == 0 {
		t.Fatalf("expected field errors for invalid card data")
	}
}
