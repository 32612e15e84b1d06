package cashier

import (
	"github.com/shopspring/decimal"

	"github.com/safecharge/safecharge-go/internal/checksum"
)

// CreateSubscriptionRequest corresponds to "Create subscription"
// (POST /createSubscription.do).
type CreateSubscriptionRequest struct {
	BaseRequest

	UserTokenID         string `json:"userTokenId" validate:"required|maxLen:255"`
	PlanID              string `json:"planId" validate:"required|maxLen:20"`
	UserPaymentOptionID string `json:"userPaymentOptionId" validate:"required|maxLen:45"`
	InitialAmount       string `json:"initialAmount,omitempty" validate:"maxLen:12"`
	RecurringAmount     string `json:"recurringAmount,omitempty" validate:"maxLen:12"`
	Currency            string `json:"currency,omitempty" validate:"maxLen:3"`

	DeviceDetails *DeviceDetails `json:"deviceDetails,omitempty"`
	URLDetails    *URLDetails    `json:"urlDetails,omitempty"`
}

func (*CreateSubscriptionRequest) checksumMapping() checksum.OrderMapping {
	return checksum.CreateSubscription
}

type CreateSubscriptionResponse struct {
	Response

	SubscriptionID string `json:"subscriptionId"`
}

// CancelSubscriptionRequest corresponds to "Cancel subscription"
// (POST /cancelSubscription.do).
type CancelSubscriptionRequest struct {
	BaseRequest

	SubscriptionID string `json:"subscriptionId" validate:"required|maxLen:20"`
	UserTokenID    string `json:"userTokenId" validate:"required|maxLen:255"`
}

func (*CancelSubscriptionRequest) checksumMapping() checksum.OrderMapping {
	return checksum.CancelSubscription
}

type CancelSubscriptionResponse struct {
	Response

	SubscriptionID string `json:"subscriptionId"`
}

// GetSubscriptionsListRequest corresponds to "Get subscriptions list"
// (POST /getSubscriptionsList.do).
type GetSubscriptionsListRequest struct {
	BaseRequest

	UserTokenID        string `json:"userTokenId" validate:"required|maxLen:255"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty" validate:"in:ACTIVE,INACTIVE,CANCELED"`
}

func (*GetSubscriptionsListRequest) checksumMapping() checksum.OrderMapping {
	return checksum.CashierUser
}

type GetSubscriptionsListResponse struct {
	Response

	Subscriptions []Subscription `json:"subscriptions,omitempty"`
}

// GetSubscriptionPlansRequest corresponds to "Get subscription plans"
// (POST /getSubscriptionPlans.do).
type GetSubscriptionPlansRequest struct {
	BaseRequest
}

func (*GetSubscriptionPlansRequest) checksumMapping() checksum.OrderMapping {
	return checksum.APIBasic
}

type GetSubscriptionPlansResponse struct {
	Response

	Plans []SubscriptionPlan `json:"plans,omitempty"`
}

// CreateSubscriptionBuilder assembles and signs a CreateSubscriptionRequest.
type CreateSubscriptionBuilder struct {
	merchant MerchantInfo
	req      CreateSubscriptionRequest
}

func NewCreateSubscriptionBuilder(m MerchantInfo) *CreateSubscriptionBuilder {
	return &CreateSubscriptionBuilder{merchant: m}
}

func (b *CreateSubscriptionBuilder) ClientRequestID(id string) *CreateSubscriptionBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *CreateSubscriptionBuilder) UserTokenID(id string) *CreateSubscriptionBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *CreateSubscriptionBuilder) PlanID(id string) *CreateSubscriptionBuilder {
	b.req.PlanID = id
	return b
}

func (b *CreateSubscriptionBuilder) UserPaymentOptionID(id string) *CreateSubscriptionBuilder {
	b.req.UserPaymentOptionID = id
	return b
}

func (b *CreateSubscriptionBuilder) InitialAmount(amount string) *CreateSubscriptionBuilder {
	b.req.InitialAmount = amount
	return b
}

func (b *CreateSubscriptionBuilder) InitialAmountDecimal(amount decimal.Decimal) *CreateSubscriptionBuilder {
	return b.InitialAmount(FormatAmount(amount))
}

func (b *CreateSubscriptionBuilder) RecurringAmount(amount string) *CreateSubscriptionBuilder {
	b.req.RecurringAmount = amount
	return b
}

func (b *CreateSubscriptionBuilder) RecurringAmountDecimal(amount decimal.Decimal) *CreateSubscriptionBuilder {
	return b.RecurringAmount(FormatAmount(amount))
}

func (b *CreateSubscriptionBuilder) Currency(currency string) *CreateSubscriptionBuilder {
	b.req.Currency = currency
	return b
}

func (b *CreateSubscriptionBuilder) URLDetails(u *URLDetails) *CreateSubscriptionBuilder {
	b.req.URLDetails = u
	return b
}

func (b *CreateSubscriptionBuilder) Build() (*CreateSubscriptionRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// CancelSubscriptionBuilder assembles and signs a CancelSubscriptionRequest.
type CancelSubscriptionBuilder struct {
	merchant MerchantInfo
	req      CancelSubscriptionRequest
}

func NewCancelSubscriptionBuilder(m MerchantInfo) *CancelSubscriptionBuilder {
	return &CancelSubscriptionBuilder{merchant: m}
}

func (b *CancelSubscriptionBuilder) ClientRequestID(id string) *CancelSubscriptionBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *CancelSubscriptionBuilder) SubscriptionID(id string) *CancelSubscriptionBuilder {
	b.req.SubscriptionID = id
	return b
}

func (b *CancelSubscriptionBuilder) UserTokenID(id string) *CancelSubscriptionBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *CancelSubscriptionBuilder) Build() (*CancelSubscriptionRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetSubscriptionsListBuilder assembles and signs a GetSubscriptionsListRequest.
type GetSubscriptionsListBuilder struct {
	merchant MerchantInfo
	req      GetSubscriptionsListRequest
}

func NewGetSubscriptionsListBuilder(m MerchantInfo) *GetSubscriptionsListBuilder {
	return &GetSubscriptionsListBuilder{merchant: m}
}

func (b *GetSubscriptionsListBuilder) ClientRequestID(id string) *GetSubscriptionsListBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *GetSubscriptionsListBuilder) UserTokenID(id string) *GetSubscriptionsListBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *GetSubscriptionsListBuilder) SubscriptionStatus(status string) *GetSubscriptionsListBuilder {
	b.req.SubscriptionStatus = status
	return b
}

func (b *GetSubscriptionsListBuilder) Build() (*GetSubscriptionsListRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetSubscriptionPlansBuilder assembles and signs a GetSubscriptionPlansRequest.
type GetSubscriptionPlansBuilder struct {
	merchant MerchantInfo
	req      GetSubscriptionPlansRequest
}

func NewGetSubscriptionPlansBuilder(m MerchantInfo) *GetSubscriptionPlansBuilder {
	return &GetSubscriptionPlansBuilder{merchant: m}
}

func (b *GetSubscriptionPlansBuilder) ClientRequestID(id string) *GetSubscriptionPlansBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *GetSubscriptionPlansBuilder) Build() (*GetSubscriptionPlansRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
