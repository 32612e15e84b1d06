package cashier

import "github.com/safecharge/safecharge-go/consts"

// MerchantInfo holds the cashier merchant credentials required to sign a
// request: the secret key, the merchant id, the merchant site id and the
// checksum hash algorithm the site is provisioned with.
type MerchantInfo struct {
	MerchantKey    string
	MerchantID     string
	MerchantSiteID string
	HashAlgorithm  consts.HashAlgorithm
}

func NewMerchantInfo(merchantKey, merchantID, merchantSiteID string, hashAlgorithm consts.HashAlgorithm) MerchantInfo {
	return MerchantInfo{
		MerchantKey:    merchantKey,
		MerchantID:     merchantID,
		MerchantSiteID: merchantSiteID,
		HashAlgorithm:  hashAlgorithm,
	}
}

func (m MerchantInfo) algorithm() consts.HashAlgorithm {
	if m.HashAlgorithm == "" {
		return consts.HashSHA256
	}
	return m.HashAlgorithm
}
