package cashier

import "github.com/safecharge/safecharge-go/internal/checksum"

// GetSessionTokenRequest corresponds to "Get session token" (POST /getSessionToken.do).
//
// The returned session token authenticates the order and payment calls
// that follow it.
type GetSessionTokenRequest struct {
	BaseRequest
}

func (*GetSessionTokenRequest) checksumMapping() checksum.OrderMapping { return checksum.APIBasic }

type GetSessionTokenResponse struct {
	Response
}

// GetSessionTokenBuilder assembles and signs a GetSessionTokenRequest.
type GetSessionTokenBuilder struct {
	merchant MerchantInfo
	req      GetSessionTokenRequest
}

func NewGetSessionTokenBuilder(m MerchantInfo) *GetSessionTokenBuilder {
	return &GetSessionTokenBuilder{merchant: m}
}

func (b *GetSessionTokenBuilder) ClientRequestID(id string) *GetSessionTokenBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *GetSessionTokenBuilder) Build() (*GetSessionTokenRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
