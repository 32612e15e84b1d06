package safecharge

import (
	"github.com/safecharge/safecharge-go/cashier"
	"github.com/safecharge/safecharge-go/consts"
)

// Merchant holds the credentials issued during SafeCharge onboarding.
//
// The merchant key never travels on the wire; it only feeds the checksum.
type Merchant = cashier.MerchantInfo

// NewMerchant builds merchant credentials with the default hash algorithm (SHA-256).
func NewMerchant(merchantKey, merchantID, merchantSiteID string) Merchant {
	return cashier.NewMerchantInfo(merchantKey, merchantID, merchantSiteID, consts.HashSHA256)
}
