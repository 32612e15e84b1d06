package checksum

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/safecharge/safecharge-go/consts"
)

// TimeStampLayout is the request timestamp format the gateway hashes over.
const TimeStampLayout = "20060102150405"

// OrderMapping names the fixed field ordering used to build the checksum
// plain text for a request type. The gateway recomputes the exact same
// concatenation on its side, so order preservation is the contract.
type OrderMapping string

const (
	APIBasic                 OrderMapping = "apiBasicChecksumMapping"
	APIGeneric               OrderMapping = "apiGenericChecksumMapping"
	GWTransaction            OrderMapping = "gwTransactionChecksumMapping"
	CreateSubscription       OrderMapping = "createSubscriptionChecksumMapping"
	CancelSubscription       OrderMapping = "cancelSubscriptionChecksumMapping"
	AddCashierAPM            OrderMapping = "addCashierAPMChecksumMapping"
	AddCashierCreditCard     OrderMapping = "addCashierCreditCardChecksumMapping"
	EditCashierCreditCard    OrderMapping = "editCashierCreditCardChecksumMapping"
	CashierUserPaymentOption OrderMapping = "cashierUserPaymentOptionChecksumMapping"
	CashierUser              OrderMapping = "cashierUserChecksumMapping"
)

// fieldOrder lists json field names in gateway-mandated order per mapping.
// The merchant secret key is always appended after the last field.
var fieldOrder = map[OrderMapping][]string{
	APIBasic:   {"merchantId", "merchantSiteId", "clientRequestId", "timeStamp"},
	APIGeneric: {"merchantId", "merchantSiteId", "clientRequestId", "amount", "currency", "timeStamp"},
	GWTransaction: {
		"merchantId", "merchantSiteId", "clientRequestId", "clientUniqueId",
		"amount", "currency", "relatedTransactionId", "authCode", "timeStamp",
	},
	CreateSubscription: {
		"merchantId", "merchantSiteId", "userTokenId", "planId",
		"initialAmount", "recurringAmount", "currency", "timeStamp",
	},
	CancelSubscription: {"merchantId", "merchantSiteId", "userTokenId", "subscriptionId", "timeStamp"},
	AddCashierAPM: {
		"merchantId", "merchantSiteId", "userTokenId", "clientRequestId",
		"paymentMethodName", "timeStamp",
	},
	AddCashierCreditCard: {
		"merchantId", "merchantSiteId", "userTokenId", "clientRequestId",
		"ccCardNumber", "ccExpMonth", "ccExpYear", "ccNameOnCard", "timeStamp",
	},
	EditCashierCreditCard: {
		"merchantId", "merchantSiteId", "userTokenId", "clientRequestId",
		"userPaymentOptionId", "ccExpMonth", "ccExpYear", "ccNameOnCard", "timeStamp",
	},
	CashierUserPaymentOption: {
		"merchantId", "merchantSiteId", "userTokenId", "clientRequestId",
		"userPaymentOptionId", "timeStamp",
	},
	CashierUser: {"merchantId", "merchantSiteId", "userTokenId", "clientRequestId", "timeStamp"},
}

// Fields returns the ordered field names for mapping.
func Fields(mapping OrderMapping) ([]string, bool) {
	f, ok := fieldOrder[mapping]
	return f, ok
}

// Calculate builds the checksum for one request: the values of the mapped
// fields, in order, followed by the merchant secret key, hashed with algo
// and hex encoded. Missing fields contribute the empty string.
func Calculate(algo consts.HashAlgorithm, merchantKey string, mapping OrderMapping, params map[string]string) (string, error) {
	fields, ok := fieldOrder[mapping]
	if !ok {
		return "", fmt.Errorf("checksum: unknown order mapping: %q", mapping)
	}

	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(params[f])
	}
	sb.WriteString(merchantKey)

	return digestHex(algo, []byte(sb.String()))
}

// CalculateDMN builds the advanced response checksum used to authenticate
// payment notification (DMN) callbacks. Here the secret key comes first.
func CalculateDMN(algo consts.HashAlgorithm, merchantKey, totalAmount, currency, responseTimeStamp, pppTransactionID, status, productID string) (string, error) {
	plain := merchantKey + totalAmount + currency + responseTimeStamp + pppTransactionID + status + productID
	return digestHex(algo, []byte(plain))
}

func digestHex(algo consts.HashAlgorithm, data []byte) (string, error) {
	switch algo {
	case consts.HashSHA256, "", "sha256", "SHA256":
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	case consts.HashMD5, "md5", "md-5":
		sum := md5.Sum(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("checksum: unsupported hash algorithm: %q", algo)
	}
}
