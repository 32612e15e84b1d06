package cashier

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/safecharge/safecharge-go/internal/checksum"
)

// OpenOrderRequest corresponds to "Open order" (POST /openOrder.do).
type OpenOrderRequest struct {
	BaseRequest

	UserTokenID string `json:"userTokenId,omitempty" validate:"maxLen:255"`
	Currency    string `json:"currency" validate:"required|maxLen:3"`
	Amount      string `json:"amount" validate:"required|maxLen:12"`
	Items       []Item `json:"items" validate:"required|minLen:1"`

	DeviceDetails     *DeviceDetails     `json:"deviceDetails,omitempty"`
	UserDetails       *UserDetails       `json:"userDetails,omitempty"`
	BillingAddress    *UserDetails       `json:"billingAddress,omitempty"`
	ShippingAddress   *UserDetails       `json:"shippingAddress,omitempty"`
	DynamicDescriptor *DynamicDescriptor `json:"dynamicDescriptor,omitempty"`
	MerchantDetails   *MerchantDetails   `json:"merchantDetails,omitempty"`
	URLDetails        *URLDetails        `json:"urlDetails,omitempty"`
}

func (*OpenOrderRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*OpenOrderRequest) requiresSessionToken()                  {}

func (r *OpenOrderRequest) crossFieldChecks(ve *ValidationError) {
	checkAmountMatchesItems(ve, r.Amount, r.Items)
}

type OpenOrderResponse struct {
	Response

	OrderID string `json:"orderId"`
}

// UpdateOrderRequest corresponds to "Update order" (POST /updateOrder.do).
type UpdateOrderRequest struct {
	BaseRequest

	OrderID     string `json:"orderId" validate:"required|maxLen:45"`
	UserTokenID string `json:"userTokenId,omitempty" validate:"maxLen:255"`
	Currency    string `json:"currency" validate:"required|maxLen:3"`
	Amount      string `json:"amount" validate:"required|maxLen:12"`
	Items       []Item `json:"items" validate:"required|minLen:1"`

	DeviceDetails     *DeviceDetails     `json:"deviceDetails,omitempty"`
	UserDetails       *UserDetails       `json:"userDetails,omitempty"`
	BillingAddress    *UserDetails       `json:"billingAddress,omitempty"`
	ShippingAddress   *UserDetails       `json:"shippingAddress,omitempty"`
	DynamicDescriptor *DynamicDescriptor `json:"dynamicDescriptor,omitempty"`
	MerchantDetails   *MerchantDetails   `json:"merchantDetails,omitempty"`
	URLDetails        *URLDetails        `json:"urlDetails,omitempty"`
}

func (*UpdateOrderRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*UpdateOrderRequest) requiresSessionToken()                  {}

func (r *UpdateOrderRequest) crossFieldChecks(ve *ValidationError) {
	checkAmountMatchesItems(ve, r.Amount, r.Items)
}

type UpdateOrderResponse struct {
	Response

	OrderID string `json:"orderId"`
}

// GetOrderDetailsRequest corresponds to "Get order details" (POST /getOrderDetails.do).
type GetOrderDetailsRequest struct {
	BaseRequest

	OrderID string `json:"orderId" validate:"required|maxLen:45"`
}

func (*GetOrderDetailsRequest) checksumMapping() checksum.OrderMapping { return checksum.APIGeneric }
func (*GetOrderDetailsRequest) requiresSessionToken()                  {}

type GetOrderDetailsResponse struct {
	Response

	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
	UserTokenID string `json:"userTokenId,omitempty"`
	Currency    string `json:"currency"`
	Amount      string `json:"amount"`
	Items       []Item `json:"items,omitempty"`
}

// OpenOrderBuilder assembles and signs an OpenOrderRequest.
type OpenOrderBuilder struct {
	merchant MerchantInfo
	req      OpenOrderRequest
}

func NewOpenOrderBuilder(m MerchantInfo) *OpenOrderBuilder {
	return &OpenOrderBuilder{merchant: m}
}

func (b *OpenOrderBuilder) SessionToken(token string) *OpenOrderBuilder {
	b.req.SessionToken = token
	return b
}

func (b *OpenOrderBuilder) ClientRequestID(id string) *OpenOrderBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *OpenOrderBuilder) ClientUniqueID(id string) *OpenOrderBuilder {
	b.req.ClientUniqueID = id
	return b
}

func (b *OpenOrderBuilder) UserTokenID(id string) *OpenOrderBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *OpenOrderBuilder) Currency(currency string) *OpenOrderBuilder {
	b.req.Currency = currency
	return b
}

func (b *OpenOrderBuilder) Amount(amount string) *OpenOrderBuilder {
	b.req.Amount = amount
	return b
}

func (b *OpenOrderBuilder) AmountDecimal(amount decimal.Decimal) *OpenOrderBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *OpenOrderBuilder) Item(item Item) *OpenOrderBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

// AddItem appends one order line from name, unit price and quantity.
func (b *OpenOrderBuilder) AddItem(name string, price decimal.Decimal, quantity int) *OpenOrderBuilder {
	return b.Item(Item{Name: name, Price: FormatAmount(price), Quantity: strconv.Itoa(quantity)})
}

func (b *OpenOrderBuilder) DeviceDetails(d *DeviceDetails) *OpenOrderBuilder {
	b.req.DeviceDetails = d
	return b
}

func (b *OpenOrderBuilder) UserDetails(u *UserDetails) *OpenOrderBuilder {
	b.req.UserDetails = u
	return b
}

func (b *OpenOrderBuilder) BillingAddress(u *UserDetails) *OpenOrderBuilder {
	b.req.BillingAddress = u
	return b
}

func (b *OpenOrderBuilder) ShippingAddress(u *UserDetails) *OpenOrderBuilder {
	b.req.ShippingAddress = u
	return b
}

func (b *OpenOrderBuilder) DynamicDescriptor(d *DynamicDescriptor) *OpenOrderBuilder {
	b.req.DynamicDescriptor = d
	return b
}

func (b *OpenOrderBuilder) MerchantDetails(d *MerchantDetails) *OpenOrderBuilder {
	b.req.MerchantDetails = d
	return b
}

func (b *OpenOrderBuilder) URLDetails(u *URLDetails) *OpenOrderBuilder {
	b.req.URLDetails = u
	return b
}

func (b *OpenOrderBuilder) Build() (*OpenOrderRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateOrderBuilder assembles and signs an UpdateOrderRequest.
type UpdateOrderBuilder struct {
	merchant MerchantInfo
	req      UpdateOrderRequest
}

func NewUpdateOrderBuilder(m MerchantInfo) *UpdateOrderBuilder {
	return &UpdateOrderBuilder{merchant: m}
}

func (b *UpdateOrderBuilder) SessionToken(token string) *UpdateOrderBuilder {
	b.req.SessionToken = token
	return b
}

func (b *UpdateOrderBuilder) ClientRequestID(id string) *UpdateOrderBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *UpdateOrderBuilder) OrderID(id string) *UpdateOrderBuilder {
	b.req.OrderID = id
	return b
}

func (b *UpdateOrderBuilder) UserTokenID(id string) *UpdateOrderBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *UpdateOrderBuilder) Currency(currency string) *UpdateOrderBuilder {
	b.req.Currency = currency
	return b
}

func (b *UpdateOrderBuilder) Amount(amount string) *UpdateOrderBuilder {
	b.req.Amount = amount
	return b
}

func (b *UpdateOrderBuilder) AmountDecimal(amount decimal.Decimal) *UpdateOrderBuilder {
	return b.Amount(FormatAmount(amount))
}

func (b *UpdateOrderBuilder) Item(item Item) *UpdateOrderBuilder {
	b.req.Items = append(b.req.Items, item)
	return b
}

func (b *UpdateOrderBuilder) AddItem(name string, price decimal.Decimal, quantity int) *UpdateOrderBuilder {
	return b.Item(Item{Name: name, Price: FormatAmount(price), Quantity: strconv.Itoa(quantity)})
}

func (b *UpdateOrderBuilder) BillingAddress(u *UserDetails) *UpdateOrderBuilder {
	b.req.BillingAddress = u
	return b
}

func (b *UpdateOrderBuilder) ShippingAddress(u *UserDetails) *UpdateOrderBuilder {
	b.req.ShippingAddress = u
	return b
}

func (b *UpdateOrderBuilder) URLDetails(u *URLDetails) *UpdateOrderBuilder {
	b.req.URLDetails = u
	return b
}

func (b *UpdateOrderBuilder) Build() (*UpdateOrderRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetOrderDetailsBuilder assembles and signs a GetOrderDetailsRequest.
type GetOrderDetailsBuilder struct {
	merchant MerchantInfo
	req      GetOrderDetailsRequest
}

func NewGetOrderDetailsBuilder(m MerchantInfo) *GetOrderDetailsBuilder {
	return &GetOrderDetailsBuilder{merchant: m}
}

func (b *GetOrderDetailsBuilder) SessionToken(token string) *GetOrderDetailsBuilder {
	b.req.SessionToken = token
	return b
}

func (b *GetOrderDetailsBuilder) ClientRequestID(id string) *GetOrderDetailsBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *GetOrderDetailsBuilder) OrderID(id string) *GetOrderDetailsBuilder {
	b.req.OrderID = id
	return b
}

func (b *GetOrderDetailsBuilder) Build() (*GetOrderDetailsRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
