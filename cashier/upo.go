package cashier

import "github.com/safecharge/safecharge-go/internal/checksum"

// AddUPOCreditCardRequest corresponds to "Add UPO credit card"
// (POST /addUPOCreditCard.do). It stores a card as a reusable user
// payment option.
type AddUPOCreditCardRequest struct {
	BaseRequest

	UserTokenID  string       `json:"userTokenId" validate:"required|maxLen:255"`
	CCCardNumber string       `json:"ccCardNumber" validate:"required|regexp:^[0-9]{8,19}$"`
	CCExpMonth   string       `json:"ccExpMonth" validate:"required|in:01,02,03,04,05,06,07,08,09,10,11,12"`
	CCExpYear    string       `json:"ccExpYear" validate:"required|regexp:^[0-9]{4}$"`
	CCNameOnCard string       `json:"ccNameOnCard" validate:"required|maxLen:70"`
	BillingAddr  *UserDetails `json:"billingAddress,omitempty"`
}

func (*AddUPOCreditCardRequest) checksumMapping() checksum.OrderMapping {
	return checksum.AddCashierCreditCard
}

type AddUPOCreditCardResponse struct {
	Response

	UserPaymentOptionID string `json:"userPaymentOptionId"`
}

// AddUPOAPMRequest corresponds to "Add UPO APM" (POST /addUPOAPM.do).
// APMData is the name-value parameter set of the payment option, e.g.
// account identifiers for apmgw_Neteller.
type AddUPOAPMRequest struct {
	BaseRequest

	UserTokenID       string            `json:"userTokenId" validate:"required|maxLen:255"`
	PaymentMethodName string            `json:"paymentMethodName" validate:"required|maxLen:50"`
	APMData           map[string]string `json:"apmData" validate:"required|minLen:1"`
	BillingAddr       *UserDetails      `json:"billingAddress,omitempty"`
}

func (*AddUPOAPMRequest) checksumMapping() checksum.OrderMapping { return checksum.AddCashierAPM }

type AddUPOAPMResponse struct {
	Response

	UserPaymentOptionID string `json:"userPaymentOptionId"`
}

// EditUPOCreditCardRequest corresponds to "Edit UPO credit card"
// (POST /editUPOCC.do).
type EditUPOCreditCardRequest struct {
	BaseRequest

	UserTokenID         string       `json:"userTokenId" validate:"required|maxLen:255"`
	UserPaymentOptionID string       `json:"userPaymentOptionId" validate:"required|maxLen:45"`
	CCExpMonth          string       `json:"ccExpMonth" validate:"required|in:01,02,03,04,05,06,07,08,09,10,11,12"`
	CCExpYear           string       `json:"ccExpYear" validate:"required|regexp:^[0-9]{4}$"`
	CCNameOnCard        string       `json:"ccNameOnCard" validate:"required|maxLen:70"`
	BillingAddr         *UserDetails `json:"billingAddress,omitempty"`
}

func (*EditUPOCreditCardRequest) checksumMapping() checksum.OrderMapping {
	return checksum.EditCashierCreditCard
}

type EditUPOCreditCardResponse struct {
	Response

	UserPaymentOptionID string `json:"userPaymentOptionId"`
}

// DeleteUPORequest corresponds to "Delete UPO" (POST /deleteUPO.do).
type DeleteUPORequest struct {
	BaseRequest

	UserTokenID         string `json:"userTokenId" validate:"required|maxLen:255"`
	UserPaymentOptionID string `json:"userPaymentOptionId" validate:"required|maxLen:45"`
}

func (*DeleteUPORequest) checksumMapping() checksum.OrderMapping {
	return checksum.CashierUserPaymentOption
}

type DeleteUPOResponse struct {
	Response
}

// SuspendUPORequest corresponds to "Suspend UPO" (POST /suspendUPO.do).
type SuspendUPORequest struct {
	BaseRequest

	UserTokenID         string `json:"userTokenId" validate:"required|maxLen:255"`
	UserPaymentOptionID string `json:"userPaymentOptionId" validate:"required|maxLen:45"`
}

func (*SuspendUPORequest) checksumMapping() checksum.OrderMapping {
	return checksum.CashierUserPaymentOption
}

type SuspendUPOResponse struct {
	Response
}

// EnableUPORequest corresponds to "Enable UPO" (POST /enableUPO.do).
type EnableUPORequest struct {
	BaseRequest

	UserTokenID         string `json:"userTokenId" validate:"required|maxLen:255"`
	UserPaymentOptionID string `json:"userPaymentOptionId" validate:"required|maxLen:45"`
}

func (*EnableUPORequest) checksumMapping() checksum.OrderMapping {
	return checksum.CashierUserPaymentOption
}

type EnableUPOResponse struct {
	Response
}

// GetUserUPOsRequest corresponds to "Get user UPOs" (POST /getUserUPOs.do).
type GetUserUPOsRequest struct {
	BaseRequest

	UserTokenID string `json:"userTokenId" validate:"required|maxLen:255"`
}

func (*GetUserUPOsRequest) checksumMapping() checksum.OrderMapping { return checksum.CashierUser }

type GetUserUPOsResponse struct {
	Response

	PaymentMethods []UPODetails `json:"paymentMethods,omitempty"`
}

// AddUPOCreditCardBuilder assembles and signs an AddUPOCreditCardRequest.
type AddUPOCreditCardBuilder struct {
	merchant MerchantInfo
	req      AddUPOCreditCardRequest
}

func NewAddUPOCreditCardBuilder(m MerchantInfo) *AddUPOCreditCardBuilder {
	return &AddUPOCreditCardBuilder{merchant: m}
}

func (b *AddUPOCreditCardBuilder) ClientRequestID(id string) *AddUPOCreditCardBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *AddUPOCreditCardBuilder) UserTokenID(id string) *AddUPOCreditCardBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *AddUPOCreditCardBuilder) CardNumber(number string) *AddUPOCreditCardBuilder {
	b.req.CCCardNumber = number
	return b
}

func (b *AddUPOCreditCardBuilder) Expiration(month, year string) *AddUPOCreditCardBuilder {
	b.req.CCExpMonth = month
	b.req.CCExpYear = year
	return b
}

func (b *AddUPOCreditCardBuilder) NameOnCard(name string) *AddUPOCreditCardBuilder {
	b.req.CCNameOnCard = name
	return b
}

func (b *AddUPOCreditCardBuilder) BillingAddress(u *UserDetails) *AddUPOCreditCardBuilder {
	b.req.BillingAddr = u
	return b
}

func (b *AddUPOCreditCardBuilder) Build() (*AddUPOCreditCardRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// AddUPOAPMBuilder assembles and signs an AddUPOAPMRequest.
type AddUPOAPMBuilder struct {
	merchant MerchantInfo
	req      AddUPOAPMRequest
}

func NewAddUPOAPMBuilder(m MerchantInfo) *AddUPOAPMBuilder {
	return &AddUPOAPMBuilder{merchant: m}
}

func (b *AddUPOAPMBuilder) ClientRequestID(id string) *AddUPOAPMBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *AddUPOAPMBuilder) UserTokenID(id string) *AddUPOAPMBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *AddUPOAPMBuilder) PaymentMethodName(name string) *AddUPOAPMBuilder {
	b.req.PaymentMethodName = name
	return b
}

func (b *AddUPOAPMBuilder) APMData(data map[string]string) *AddUPOAPMBuilder {
	b.req.APMData = data
	return b
}

// APMDataEntry adds one name-value pair of APM specific data.
func (b *AddUPOAPMBuilder) APMDataEntry(key, value string) *AddUPOAPMBuilder {
	if b.req.APMData == nil {
		b.req.APMData = make(map[string]string)
	}
	b.req.APMData[key] = value
	return b
}

func (b *AddUPOAPMBuilder) BillingAddress(u *UserDetails) *AddUPOAPMBuilder {
	b.req.BillingAddr = u
	return b
}

func (b *AddUPOAPMBuilder) Build() (*AddUPOAPMRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// EditUPOCreditCardBuilder assembles and signs an EditUPOCreditCardRequest.
type EditUPOCreditCardBuilder struct {
	merchant MerchantInfo
	req      EditUPOCreditCardRequest
}

func NewEditUPOCreditCardBuilder(m MerchantInfo) *EditUPOCreditCardBuilder {
	return &EditUPOCreditCardBuilder{merchant: m}
}

func (b *EditUPOCreditCardBuilder) ClientRequestID(id string) *EditUPOCreditCardBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *EditUPOCreditCardBuilder) UserTokenID(id string) *EditUPOCreditCardBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *EditUPOCreditCardBuilder) UserPaymentOptionID(id string) *EditUPOCreditCardBuilder {
	b.req.UserPaymentOptionID = id
	return b
}

func (b *EditUPOCreditCardBuilder) Expiration(month, year string) *EditUPOCreditCardBuilder {
	b.req.CCExpMonth = month
	b.req.CCExpYear = year
	return b
}

func (b *EditUPOCreditCardBuilder) NameOnCard(name string) *EditUPOCreditCardBuilder {
	b.req.CCNameOnCard = name
	return b
}

func (b *EditUPOCreditCardBuilder) BillingAddress(u *UserDetails) *EditUPOCreditCardBuilder {
	b.req.BillingAddr = u
	return b
}

func (b *EditUPOCreditCardBuilder) Build() (*EditUPOCreditCardRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// DeleteUPOBuilder assembles and signs a DeleteUPORequest.
type DeleteUPOBuilder struct {
	merchant MerchantInfo
	req      DeleteUPORequest
}

func NewDeleteUPOBuilder(m MerchantInfo) *DeleteUPOBuilder {
	return &DeleteUPOBuilder{merchant: m}
}

func (b *DeleteUPOBuilder) ClientRequestID(id string) *DeleteUPOBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *DeleteUPOBuilder) UserTokenID(id string) *DeleteUPOBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *DeleteUPOBuilder) UserPaymentOptionID(id string) *DeleteUPOBuilder {
	b.req.UserPaymentOptionID = id
	return b
}

func (b *DeleteUPOBuilder) Build() (*DeleteUPORequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// SuspendUPOBuilder assembles and signs a SuspendUPORequest.
type SuspendUPOBuilder struct {
	merchant MerchantInfo
	req      SuspendUPORequest
}

func NewSuspendUPOBuilder(m MerchantInfo) *SuspendUPOBuilder {
	return &SuspendUPOBuilder{merchant: m}
}

func (b *SuspendUPOBuilder) ClientRequestID(id string) *SuspendUPOBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *SuspendUPOBuilder) UserTokenID(id string) *SuspendUPOBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *SuspendUPOBuilder) UserPaymentOptionID(id string) *SuspendUPOBuilder {
	b.req.UserPaymentOptionID = id
	return b
}

func (b *SuspendUPOBuilder) Build() (*SuspendUPORequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// EnableUPOBuilder assembles and signs an EnableUPORequest.
type EnableUPOBuilder struct {
	merchant MerchantInfo
	req      EnableUPORequest
}

func NewEnableUPOBuilder(m MerchantInfo) *EnableUPOBuilder {
	return &EnableUPOBuilder{merchant: m}
}

func (b *EnableUPOBuilder) ClientRequestID(id string) *EnableUPOBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *EnableUPOBuilder) UserTokenID(id string) *EnableUPOBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *EnableUPOBuilder) UserPaymentOptionID(id string) *EnableUPOBuilder {
	b.req.UserPaymentOptionID = id
	return b
}

func (b *EnableUPOBuilder) Build() (*EnableUPORequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetUserUPOsBuilder assembles and signs a GetUserUPOsRequest.
type GetUserUPOsBuilder struct {
	merchant MerchantInfo
	req      GetUserUPOsRequest
}

func NewGetUserUPOsBuilder(m MerchantInfo) *GetUserUPOsBuilder {
	return &GetUserUPOsBuilder{merchant: m}
}

func (b *GetUserUPOsBuilder) ClientRequestID(id string) *GetUserUPOsBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *GetUserUPOsBuilder) UserTokenID(id string) *GetUserUPOsBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *GetUserUPOsBuilder) Build() (*GetUserUPOsRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
