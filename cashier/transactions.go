package cashier

import (
	"github.com/shopspring/decimal"

	"github.com/safecharge/safecharge-go/internal/checksum"
)

// SettleTransactionRequest corresponds to "Settle transaction"
// (POST /settleTransaction.do). It captures a previously authorized amount.
type SettleTransactionRequest struct {
	BaseRequest

	Currency             string `json:"currency" validate:"required|maxLen:3"`
	Amount               string `json:"amount" validate:"required|maxLen:12"`
	RelatedTransactionID string `json:"relatedTransactionId" validate:"required|maxLen:19"`
	AuthCode             string `json:"authCode,omitempty" validate:"maxLen:10"`
	Comment              string `json:"comment,omitempty" validate:"maxLen:255"`
	DescriptorMerchantN  string `json:"descriptorMerchantName,omitempty" validate:"maxLen:25"`
	DescriptorMerchantP  string `json:"descriptorMerchantPhone,omitempty" validate:"maxLen:13"`

	URLDetails *URLDetails `json:"urlDetails,omitempty"`
}

func (*SettleTransactionRequest) checksumMapping() checksum.OrderMapping {
	return checksum.GWTransaction
}

type SettleTransactionResponse struct {
	TransactionResponse
}

// VoidTransactionRequest corresponds to "Void transaction" (POST /voidTransaction.do).
type VoidTransactionRequest struct {
	BaseRequest

	Currency             string `json:"currency" validate:"required|maxLen:3"`
	Amount               string `json:"amount" validate:"required|maxLen:12"`
	RelatedTransactionID string `json:"relatedTransactionId" validate:"required|maxLen:19"`
	AuthCode             string `json:"authCode,omitempty" validate:"maxLen:10"`
	Comment              string `json:"comment,omitempty" validate:"maxLen:255"`

	URLDetails *URLDetails `json:"urlDetails,omitempty"`
}

func (*VoidTransactionRequest) checksumMapping() checksum.OrderMapping {
	return checksum.GWTransaction
}

type VoidTransactionResponse struct {
	TransactionResponse
}

// RefundTransactionRequest corresponds to "Refund transaction" (POST /refundTransaction.do).
type RefundTransactionRequest struct {
	BaseRequest

	Currency             string `json:"currency" validate:"required|maxLen:3"`
	Amount               string `json:"amount" validate:"required|maxLen:12"`
	RelatedTransactionID string `json:"relatedTransactionId" validate:"required|maxLen:19"`
	AuthCode             string `json:"authCode,omitempty" validate:"maxLen:10"`
	Comment              string `json:"comment,omitempty" validate:"maxLen:255"`

	URLDetails *URLDetails `json:"urlDetails,omitempty"`
}

func (*RefundTransactionRequest) checksumMapping() checksum.OrderMapping {
	return checksum.GWTransaction
}

type RefundTransactionResponse struct {
	TransactionResponse
}

// SettleTransactionBuilder assembles and signs a SettleTransactionRequest.
type SettleTransactionBuilder struct {
	merchant MerchantInfo
	req      SettleTransactionRequest
}

func NewSettleTransactionBuilder(m MerchantInfo) *SettleTransactionBuilder {
	return &SettleTransactionBuilder{merchant: m}
}

func (b *SettleTransactionBuilder) ClientRequestID(id string) *SettleTransactionBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *SettleTransactionBuilder) ClientUniqueID(id string) *SettleTransactionBuilder {
	b.req.ClientUniqueID = id
	return b
}

func (b *SettleTransactionBuilder) Currency(currency string) *SettleTransactionBuilder {
	b.req.Currency = currency
	return b
}

func (b *SettleTransactionBuilder) Amount(amount string) *SettleTransactionBuilder {
	b.req.Amount = amount
	return b
}

func (b *SettleTransactionBuilder) AmountDecimal(amount decimal.Decimal) *SettleTransactionBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *SettleTransactionBuilder) RelatedTransactionID(id string) *SettleTransactionBuilder {
	b.req.RelatedTransactionID = id
	return b
}

func (b *SettleTransactionBuilder) AuthCode(code string) *SettleTransactionBuilder {
	b.req.AuthCode = code
	return b
}

func (b *SettleTransactionBuilder) Comment(comment string) *SettleTransactionBuilder {
	b.req.Comment = comment
	return b
}

func (b *SettleTransactionBuilder) URLDetails(u *URLDetails) *SettleTransactionBuilder {
	b.req.URLDetails = u
	return b
}

func (b *SettleTransactionBuilder) Build() (*SettleTransactionRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// VoidTransactionBuilder assembles and signs a VoidTransactionRequest.
type VoidTransactionBuilder struct {
	merchant MerchantInfo
	req      VoidTransactionRequest
}

func NewVoidTransactionBuilder(m MerchantInfo) *VoidTransactionBuilder {
	return &VoidTransactionBuilder{merchant: m}
}

func (b *VoidTransactionBuilder) ClientRequestID(id string) *VoidTransactionBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *VoidTransactionBuilder) ClientUniqueID(id string) *VoidTransactionBuilder {
	b.req.ClientUniqueID = id
	return b
}

func (b *VoidTransactionBuilder) Currency(currency string) *VoidTransactionBuilder {
	b.req.Currency = currency
	return b
}

func (b *VoidTransactionBuilder) Amount(amount string) *VoidTransactionBuilder {
	b.req.Amount = amount
	return b
}

func (b *VoidTransactionBuilder) AmountDecimal(amount decimal.Decimal) *VoidTransactionBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *VoidTransactionBuilder) RelatedTransactionID(id string) *VoidTransactionBuilder {
	b.req.RelatedTransactionID = id
	return b
}

func (b *VoidTransactionBuilder) AuthCode(code string) *VoidTransactionBuilder {
	b.req.AuthCode = code
	return b
}

func (b *VoidTransactionBuilder) Comment(comment string) *VoidTransactionBuilder {
	b.req.Comment = comment
	return b
}

func (b *VoidTransactionBuilder) Build() (*VoidTransactionRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// RefundTransactionBuilder assembles and signs a RefundTransactionRequest.
type RefundTransactionBuilder struct {
	merchant MerchantInfo
	req      RefundTransactionRequest
}

func NewRefundTransactionBuilder(m MerchantInfo) *RefundTransactionBuilder {
	return &RefundTransactionBuilder{merchant: m}
}

func (b *RefundTransactionBuilder) ClientRequestID(id string) *RefundTransactionBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *RefundTransactionBuilder) ClientUniqueID(id string) *RefundTransactionBuilder {
	b.req.ClientUniqueID = id
	return b
}

func (b *RefundTransactionBuilder) Currency(currency string) *RefundTransactionBuilder {
	b.req.Currency = currency
	return b
}

func (b *RefundTransactionBuilder) Amount(amount string) *RefundTransactionBuilder {
	b.req.Amount = amount
	return b
}

func (b *RefundTransactionBuilder) AmountDecimal(amount decimal.Decimal) *RefundTransactionBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *RefundTransactionBuilder) RelatedTransactionID(id string) *RefundTransactionBuilder {
	b.req.RelatedTransactionID = id
	return b
}

func (b *RefundTransactionBuilder) AuthCode(code string) *RefundTransactionBuilder {
	b.req.AuthCode = code
	return b
}

func (b *RefundTransactionBuilder) Comment(comment string) *RefundTransactionBuilder {
	b.req.Comment = comment
	return b
}

func (b *RefundTransactionBuilder) Build() (*RefundTransactionRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
