package cashier

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/safecharge/safecharge-go/consts"
	"github.com/safecharge/safecharge-go/internal/checksum"
)

// PaymentCCRequest corresponds to "Payment credit card" (POST /paymentCC.do).
//
// Exactly one of CardData or UserPaymentOption must be provided.
type PaymentCCRequest struct {
	BaseRequest

	OrderID         string                 `json:"orderId,omitempty" validate:"maxLen:45"`
	UserTokenID     string                 `json:"userTokenId,omitempty" validate:"maxLen:255"`
	TransactionType consts.TransactionType `json:"transactionType,omitempty" validate:"in:Auth,Sale"`
	Currency        string                 `json:"currency" validate:"required|maxLen:3"`
	Amount          string                 `json:"amount" validate:"required|maxLen:12"`
	Items           []Item                 `json:"items" validate:"required|minLen:1"`

	CardData          *CardData          `json:"cardData,omitempty"`
	UserPaymentOption *UserPaymentOption `json:"userPaymentOption,omitempty"`

	DeviceDetails     *DeviceDetails     `json:"deviceDetails,omitempty"`
	BillingAddress    *UserDetails       `json:"billingAddress,omitempty"`
	ShippingAddress   *UserDetails       `json:"shippingAddress,omitempty"`
	DynamicDescriptor *DynamicDescriptor `json:"dynamicDescriptor,omitempty"`
	MerchantDetails   *MerchantDetails   `json:"merchantDetails,omitempty"`
	URLDetails        *URLDetails        `json:"urlDetails,omitempty"`
}

func (*PaymentCCRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*PaymentCCRequest) requiresSessionToken()                  {}

func (r *PaymentCCRequest) crossFieldChecks(ve *ValidationError) {
	checkAmountMatchesItems(ve, r.Amount, r.Items)
	switch {
	case r.CardData == nil && r.UserPaymentOption == nil:
		ve.Add("cardData", "either cardData or userPaymentOption is required")
	case r.CardData != nil && r.UserPaymentOption != nil:
		ve.Add("cardData", "cardData and userPaymentOption are mutually exclusive")
	}
}

type PaymentCCResponse struct {
	TransactionResponse

	OrderID             string `json:"orderId"`
	UserPaymentOptionID string `json:"userPaymentOptionId,omitempty"`
}

// PaymentAPMRequest corresponds to "Payment APM" (POST /paymentAPM.do).
type PaymentAPMRequest struct {
	BaseRequest

	OrderID             string            `json:"orderId,omitempty" validate:"maxLen:45"`
	UserTokenID         string            `json:"userTokenId,omitempty" validate:"maxLen:255"`
	PaymentMethod       string            `json:"paymentMethod" validate:"required|maxLen:50"`
	UserAccountDetails  map[string]string `json:"userAccountDetails,omitempty"`
	UserPaymentOptionID string            `json:"userPaymentOptionId,omitempty" validate:"maxLen:45"`
	Currency            string            `json:"currency" validate:"required|maxLen:3"`
	Amount              string            `json:"amount" validate:"required|maxLen:12"`
	Items               []Item            `json:"items" validate:"required|minLen:1"`

	DeviceDetails   *DeviceDetails `json:"deviceDetails,omitempty"`
	BillingAddress  *UserDetails   `json:"billingAddress,omitempty"`
	ShippingAddress *UserDetails   `json:"shippingAddress,omitempty"`
	URLDetails      *URLDetails    `json:"urlDetails,omitempty"`
}

func (*PaymentAPMRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*PaymentAPMRequest) requiresSessionToken()                  {}

func (r *PaymentAPMRequest) crossFieldChecks(ve *ValidationError) {
	checkAmountMatchesItems(ve, r.Amount, r.Items)
	if len(r.UserAccountDetails) == 0 && r.UserPaymentOptionID == "" {
		ve.Add("userAccountDetails", "either userAccountDetails or userPaymentOptionId is required")
	}
}

type PaymentAPMResponse struct {
	TransactionResponse

	OrderID             string `json:"orderId"`
	UserPaymentOptionID string `json:"userPaymentOptionId,omitempty"`
	RedirectURL         string `json:"redirectURL,omitempty"`
	PaymentStatus       string `json:"paymentStatus,omitempty"`
}

// Dynamic3DRequest corresponds to "Dynamic 3D" (POST /dynamic3D.do).
//
// The response tells whether the card is enrolled and carries the paRequest
// to post to the issuer ACS.
type Dynamic3DRequest struct {
	BaseRequest

	OrderID     string `json:"orderId,omitempty" validate:"maxLen:45"`
	UserTokenID string `json:"userTokenId,omitempty" validate:"maxLen:255"`
	Currency    string `json:"currency" validate:"required|maxLen:3"`
	Amount      string `json:"amount" validate:"required|maxLen:12"`
	Items       []Item `json:"items" validate:"required|minLen:1"`

	CardData          *CardData          `json:"cardData,omitempty"`
	UserPaymentOption *UserPaymentOption `json:"userPaymentOption,omitempty"`

	DeviceDetails   *DeviceDetails `json:"deviceDetails,omitempty"`
	BillingAddress  *UserDetails   `json:"billingAddress,omitempty"`
	ShippingAddress *UserDetails   `json:"shippingAddress,omitempty"`
	URLDetails      *URLDetails    `json:"urlDetails,omitempty"`
}

func (*Dynamic3DRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*Dynamic3DRequest) requiresSessionToken()                  {}

func (r *Dynamic3DRequest) crossFieldChecks(ve *ValidationError) {
	checkAmountMatchesItems(ve, r.Amount, r.Items)
	if r.CardData == nil && r.UserPaymentOption == nil {
		ve.Add("cardData", "either cardData or userPaymentOption is required")
	}
}

type Dynamic3DResponse struct {
	TransactionResponse

	OrderID   string `json:"orderId"`
	ECI       string `json:"eci,omitempty"`
	PaRequest string `json:"paRequest,omitempty"`
	ACSUrl    string `json:"acsUrl,omitempty"`
	ThreeDTag string `json:"threeDFlow,omitempty"`
}

// Payment3DRequest corresponds to "Payment 3D" (POST /payment3D.do). It
// completes a dynamic3D flow with the paResponse returned by the ACS.
type Payment3DRequest struct {
	BaseRequest

	OrderID              string `json:"orderId,omitempty" validate:"maxLen:45"`
	UserTokenID          string `json:"userTokenId,omitempty" validate:"maxLen:255"`
	Currency             string `json:"currency" validate:"required|maxLen:3"`
	Amount               string `json:"amount" validate:"required|maxLen:12"`
	Items                []Item `json:"items" validate:"required|minLen:1"`
	PaResponse           string `json:"paResponse" validate:"required"`
	RelatedTransactionID string `json:"relatedTransactionId" validate:"required|maxLen:19"`

	CardData          *CardData          `json:"cardData,omitempty"`
	UserPaymentOption *UserPaymentOption `json:"userPaymentOption,omitempty"`

	DeviceDetails   *DeviceDetails `json:"deviceDetails,omitempty"`
	BillingAddress  *UserDetails   `json:"billingAddress,omitempty"`
	ShippingAddress *UserDetails   `json:"shippingAddress,omitempty"`
	URLDetails      *URLDetails    `json:"urlDetails,omitempty"`
}

func (*Payment3DRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*Payment3DRequest) requiresSessionToken()                  {}

func (r *Payment3DRequest) crossFieldChecks(ve *ValidationError) {
	checkAmountMatchesItems(ve, r.Amount, r.Items)
}

type Payment3DResponse struct {
	TransactionResponse

	OrderID string `json:"orderId"`
}

// GetMerchantPaymentMethodsRequest corresponds to
// "Get merchant payment methods" (POST /getMerchantPaymentMethods.do).
type GetMerchantPaymentMethodsRequest struct {
	BaseRequest

	CountryCode  string `json:"countryCode,omitempty" validate:"maxLen:2|regexp:^[A-Z]{2}$"`
	CurrencyCode string `json:"currencyCode,omitempty" validate:"maxLen:3"`
	LanguageCode string `json:"languageCode,omitempty" validate:"maxLen:2"`
}

func (*GetMerchantPaymentMethodsRequest) checksumMapping() checksum.OrderMapping {
	return checksum.APIBasic
}

type GetMerchantPaymentMethodsResponse struct {
	Response

	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty"`
}

// PaymentCCBuilder assembles and signs a PaymentCCRequest.
type PaymentCCBuilder struct {
	merchant MerchantInfo
	req      PaymentCCRequest
}

func NewPaymentCCBuilder(m MerchantInfo) *PaymentCCBuilder {
	return &PaymentCCBuilder{merchant: m}
}

func (b *PaymentCCBuilder) SessionToken(token string) *PaymentCCBuilder {
	b.req.SessionToken = token
	return b
}

func (b *PaymentCCBuilder) ClientRequestID(id string) *PaymentCCBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *PaymentCCBuilder) ClientUniqueID(id string) *PaymentCCBuilder {
	b.req.ClientUniqueID = id
	return b
}

func (b *PaymentCCBuilder) OrderID(id string) *PaymentCCBuilder {
	b.req.OrderID = id
	return b
}

func (b *PaymentCCBuilder) UserTokenID(id string) *PaymentCCBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *PaymentCCBuilder) TransactionType(t consts.TransactionType) *PaymentCCBuilder {
	b.req.TransactionType = t
	return b
}

func (b *PaymentCCBuilder) Currency(currency string) *PaymentCCBuilder {
	b.req.Currency = currency
	return b
}

func (b *PaymentCCBuilder) Amount(amount string) *PaymentCCBuilder {
	b.req.Amount = amount
	return b
}

func (b *PaymentCCBuilder) AmountDecimal(amount decimal.Decimal) *PaymentCCBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *PaymentCCBuilder) Item(item Item) *PaymentCCBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

func (b *PaymentCCBuilder) AddItem(name string, price decimal.Decimal, quantity int) *PaymentCCBuilder {
	return b.Item(Item{Name: name, Price: FormatAmount(price), Quantity: strconv.Itoa(quantity)})
}

func (b *PaymentCCBuilder) CardData(c *CardData) *PaymentCCBuilder {
	b.req.CardData = c
	return b
}

func (b *PaymentCCBuilder) UserPaymentOption(u *UserPaymentOption) *PaymentCCBuilder {
	b.req.UserPaymentOption = u
	return b
}

func (b *PaymentCCBuilder) DeviceDetails(d *DeviceDetails) *PaymentCCBuilder {
	b.req.DeviceDetails = d
	return b
}

func (b *PaymentCCBuilder) BillingAddress(u *UserDetails) *PaymentCCBuilder {
	b.req.BillingAddress = u
	return b
}

func (b *PaymentCCBuilder) ShippingAddress(u *UserDetails) *PaymentCCBuilder {
	b.req.ShippingAddress = u
	return b
}

func (b *PaymentCCBuilder) DynamicDescriptor(d *DynamicDescriptor) *PaymentCCBuilder {
	b.req.DynamicDescriptor = d
	return b
}

func (b *PaymentCCBuilder) URLDetails(u *URLDetails) *PaymentCCBuilder {
	b.req.URLDetails = u
	return b
}

func (b *PaymentCCBuilder) Build() (*PaymentCCRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// PaymentAPMBuilder assembles and signs a PaymentAPMRequest.
type PaymentAPMBuilder struct {
	merchant MerchantInfo
	req      PaymentAPMRequest
}

func NewPaymentAPMBuilder(m MerchantInfo) *PaymentAPMBuilder {
	return &PaymentAPMBuilder{merchant: m}
}

func (b *PaymentAPMBuilder) SessionToken(token string) *PaymentAPMBuilder {
	b.req.SessionToken = token
	return b
}

func (b *PaymentAPMBuilder) ClientRequestID(id string) *PaymentAPMBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *PaymentAPMBuilder) OrderID(id string) *PaymentAPMBuilder {
	b.req.OrderID = id
	return b
}

func (b *PaymentAPMBuilder) UserTokenID(id string) *PaymentAPMBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *PaymentAPMBuilder) PaymentMethod(name string) *PaymentAPMBuilder {
	b.req.PaymentMethod = name
	return b
}

// UserAccountDetail adds one APM account parameter, e.g. nettelerAccount.
func (b *PaymentAPMBuilder) UserAccountDetail(key, value string) *PaymentAPMBuilder {
	if b.req.UserAccountDetails == nil {
		b.req.UserAccountDetails = make(map[string]string)
	}
	b.req.UserAccountDetails[key] = value
	return b
}

func (b *PaymentAPMBuilder) UserPaymentOptionID(id string) *PaymentAPMBuilder {
	b.req.UserPaymentOptionID = id
	return b
}

func (b *PaymentAPMBuilder) Currency(currency string) *PaymentAPMBuilder {
	b.req.Currency = currency
	return b
}

func (b *PaymentAPMBuilder) Amount(amount string) *PaymentAPMBuilder {
	b.req.Amount = amount
	return b
}

func (b *PaymentAPMBuilder) AmountDecimal(amount decimal.Decimal) *PaymentAPMBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *PaymentAPMBuilder) Item(item Item) *PaymentAPMBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

func (b *PaymentAPMBuilder) AddItem(name string, price decimal.Decimal, quantity int) *PaymentAPMBuilder {
	return b.Item(Item{Name: name, Price: FormatAmount(price), Quantity: strconv.Itoa(quantity)})
}

func (b *PaymentAPMBuilder) BillingAddress(u *UserDetails) *PaymentAPMBuilder {
	b.req.BillingAddress = u
	return b
}

func (b *PaymentAPMBuilder) URLDetails(u *URLDetails) *PaymentAPMBuilder {
	b.req.URLDetails = u
	return b
}

func (b *PaymentAPMBuilder) Build() (*PaymentAPMRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Dynamic3DBuilder assembles and signs a Dynamic3DRequest.
type Dynamic3DBuilder struct {
	merchant MerchantInfo
	req      Dynamic3DRequest
}

func NewDynamic3DBuilder(m MerchantInfo) *Dynamic3DBuilder {
	return &Dynamic3DBuilder{merchant: m}
}

func (b *Dynamic3DBuilder) SessionToken(token string) *Dynamic3DBuilder {
	b.req.SessionToken = token
	return b
}

func (b *Dynamic3DBuilder) ClientRequestID(id string) *Dynamic3DBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *Dynamic3DBuilder) OrderID(id string) *Dynamic3DBuilder {
	b.req.OrderID = id
	return b
}

func (b *Dynamic3DBuilder) Currency(currency string) *Dynamic3DBuilder {
	b.req.Currency = currency
	return b
}

func (b *Dynamic3DBuilder) Amount(amount string) *Dynamic3DBuilder {
	b.req.Amount = amount
	return b
}

func (b *Dynamic3DBuilder) AmountDecimal(amount decimal.Decimal) *Dynamic3DBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *Dynamic3DBuilder) Item(item Item) *Dynamic3DBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

func (b *Dynamic3DBuilder) AddItem(name string, price decimal.Decimal, quantity int) *Dynamic3DBuilder {
	return b.Item(Item{Name: name, Price: FormatAmount(price), Quantity: strconv.Itoa(quantity)})
}

func (b *Dynamic3DBuilder) CardData(c *CardData) *Dynamic3DBuilder {
	b.req.CardData = c
	return b
}

func (b *Dynamic3DBuilder) UserPaymentOption(u *UserPaymentOption) *Dynamic3DBuilder {
	b.req.UserPaymentOption = u
	return b
}

func (b *Dynamic3DBuilder) Build() (*Dynamic3DRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Payment3DBuilder assembles and signs a Payment3DRequest.
type Payment3DBuilder struct {
	merchant MerchantInfo
	req      Payment3DRequest
}

func NewPayment3DBuilder(m MerchantInfo) *Payment3DBuilder {
	return &Payment3DBuilder{merchant: m}
}

func (b *Payment3DBuilder) SessionToken(token string) *Payment3DBuilder {
	b.req.SessionToken = token
	return b
}

func (b *Payment3DBuilder) ClientRequestID(id string) *Payment3DBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *Payment3DBuilder) OrderID(id string) *Payment3DBuilder {
	b.req.OrderID = id
	return b
}

func (b *Payment3DBuilder) Currency(currency string) *Payment3DBuilder {
	b.req.Currency = currency
	return b
}

func (b *Payment3DBuilder) Amount(amount string) *Payment3DBuilder {
	b.req.Amount = amount
	return b
}

func (b *Payment3DBuilder) AmountDecimal(amount decimal.Decimal) *Payment3DBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *Payment3DBuilder) Item(item Item) *Payment3DBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

func (b *Payment3DBuilder) AddItem(name string, price decimal.Decimal, quantity int) *Payment3DBuilder {
	return b.Item(Item{Name: name, Price: FormatAmount(price), Quantity: strconv.Itoa(quantity)})
}

func (b *Payment3DBuilder) PaResponse(paResponse string) *Payment3DBuilder {
	b.req.PaResponse = paResponse
	return b
}

func (b *Payment3DBuilder) RelatedTransactionID(id string) *Payment3DBuilder {
	b.req.RelatedTransactionID = id
	return b
}

func (b *Payment3DBuilder) CardData(c *CardData) *Payment3DBuilder {
	b.req.CardData = c
	return b
}

func (b *Payment3DBuilder) Build() (*Payment3DRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetMerchantPaymentMethodsBuilder assembles and signs a GetMerchantPaymentMethodsRequest.
type GetMerchantPaymentMethodsBuilder struct {
	merchant MerchantInfo
	req      GetMerchantPaymentMethodsRequest
}

func NewGetMerchantPaymentMethodsBuilder(m MerchantInfo) *GetMerchantPaymentMethodsBuilder {
	return &GetMerchantPaymentMethodsBuilder{merchant: m}
}

func (b *GetMerchantPaymentMethodsBuilder) SessionToken(token string) *GetMerchantPaymentMethodsBuilder {
	b.req.SessionToken = token
	return b
}

func (b *GetMerchantPaymentMethodsBuilder) CountryCode(code string) *GetMerchantPaymentMethodsBuilder {
	b.req.CountryCode = code
	return b
}

func (b *GetMerchantPaymentMethodsBuilder) CurrencyCode(code string) *GetMerchantPaymentMethodsBuilder {
	b.req.CurrencyCode = code
	return b
}

func (b *GetMerchantPaymentMethodsBuilder) LanguageCode(code string) *GetMerchantPaymentMethodsBuilder {
	b.req.LanguageCode = code
	return b
}

func (b *GetMerchantPaymentMethodsBuilder) Build() (*GetMerchantPaymentMethodsRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
