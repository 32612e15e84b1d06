package safecharge

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/stremovskyy/recorder"

	"github.com/safecharge/safecharge-go/cashier"
	"github.com/safecharge/safecharge-go/consts"
	"github.com/safecharge/safecharge-go/internal/httpclient"
	"github.com/safecharge/safecharge-go/log"
)

// Client is the main SafeCharge Cashier SDK client.
//
// It groups operations into services:
//   - Session, Orders, Payments, Transactions
//   - Subscriptions, UPO (user payment options), Users
//
// Requests built by hand (not through a builder) are stamped with the merchant
// identity, timestamp and checksum automatically before sending. Requests that
// already carry a checksum are only re-validated.
//
// Service methods return both the decoded response and a *GatewayError when
// the API answers with status ERROR, so the full error payload stays available.
type Client struct {
	cfg config

	http *httpclient.Client

	session       *SessionService
	orders        *OrdersService
	payments      *PaymentsService
	transactions  *TransactionsService
	subscriptions *SubscriptionsService
	upo           *UPOService
	users         *UsersService
}

func NewClient(opts ...Option) (Safecharge, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	c := &Client{cfg: cfg}
	c.http = httpclient.New(cfg.httpClient, cfg.logger, cfg.retryAttempts, cfg.retryWait, nil, cfg.recorder, cfg.logBodies)

	c.session = &SessionService{c: c}
	c.orders = &OrdersService{c: c}
	c.payments = &PaymentsService{c: c}
	c.transactions = &TransactionsService{c: c}
	c.subscriptions = &SubscriptionsService{c: c}
	c.upo = &UPOService{c: c}
	c.users = &UsersService{c: c}
	return c, nil
}

// NewDefaultClient is a convenience wrapper around NewClient() with default configuration.
func NewDefaultClient() (Safecharge, error) {
	return NewClient()
}

// NewClientWithRecorder attaches a recorder on top of the given options.
func NewClientWithRecorder(rec recorder.Recorder, opts ...Option) (Safecharge, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(opts...)
}

func (c *Client) Session() *SessionService             { return c.session }
func (c *Client) Orders() *OrdersService               { return c.orders }
func (c *Client) Payments() *PaymentsService           { return c.payments }
func (c *Client) Transactions() *TransactionsService   { return c.transactions }
func (c *Client) Subscriptions() *SubscriptionsService { return c.subscriptions }
func (c *Client) UPO() *UPOService                     { return c.upo }
func (c *Client) Users() *UsersService                 { return c.users }

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

func joinURL(base string, p string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	u.Path = path.Join(u.Path, p)
	return u.String(), nil
}

func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return &APIError{StatusCode: hs.StatusCode, Body: hs.Body}
	}
	return err
}

func ensureMerchantReady(c *Client) error {
	if c == nil {
		return errors.New("client is nil")
	}
	if c.cfg.merchant.MerchantKey == "" {
		return errors.New("merchant credentials are not configured; use WithMerchantCredentials(...)")
	}
	return nil
}

// prepare stamps and checksums a raw request, or re-validates an already
// finalized one coming from a builder.
func (c *Client) prepare(req cashier.Request) error {
	if req.Base().Checksum == "" {
		if err := ensureMerchantReady(c); err != nil {
			return err
		}
		return cashier.Finalize(c.cfg.merchant, req)
	}
	return cashier.Validate(req)
}

// call runs the shared request pipeline: prepare, resolve URL, honor dry run,
// POST JSON and translate transport errors.
func (c *Client) call(ctx context.Context, endpointPath string, req cashier.Request, out any, runOpts []RunOption) error {
	if c == nil {
		return errors.New("client is nil")
	}
	if err := c.prepare(req); err != nil {
		return err
	}
	full, err := joinURL(c.cfg.serverHost, endpointPath)
	if err != nil {
		return err
	}
	if shouldDryRun(runOpts, "POST", full, req) {
		return nil
	}
	_, _, err = c.http.DoJSON(ctx, "POST", full, req, out)
	return wrapAPIError(err)
}

// Do performs a prepared request against an arbitrary cashier endpoint path.
//
// Escape hatch for endpoints the typed services do not cover yet.
func (c *Client) Do(ctx context.Context, endpointPath string, req cashier.Request, out any, runOpts ...RunOption) error {
	if req == nil {
		return &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	return c.call(ctx, endpointPath, req, out, runOpts)
}

// =========================
// Session
// =========================

type SessionService struct{ c *Client }

// GetSessionToken opens a merchant session. The returned token authenticates
// subsequent order and payment calls.
func (s *SessionService) GetSessionToken(ctx context.Context, req *cashier.GetSessionTokenRequest, runOpts ...RunOption) (*cashier.GetSessionTokenResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		req = &cashier.GetSessionTokenRequest{}
	}
	var out cashier.GetSessionTokenResponse
	if err := s.c.call(ctx, consts.GetSessionTokenPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// =========================
// Orders
// =========================

type OrdersService struct{ c *Client }

// OpenOrder creates an order in the cashier system.
func (s *OrdersService) OpenOrder(ctx context.Context, req *cashier.OpenOrderRequest, runOpts ...RunOption) (*cashier.OpenOrderResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.OpenOrderResponse
	if err := s.c.call(ctx, consts.OpenOrderPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// UpdateOrder changes an open order before payment.
func (s *OrdersService) UpdateOrder(ctx context.Context, req *cashier.UpdateOrderRequest, runOpts ...RunOption) (*cashier.UpdateOrderResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.UpdateOrderResponse
	if err := s.c.call(ctx, consts.UpdateOrderPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// GetOrderDetails returns the current state of an order.
func (s *OrdersService) GetOrderDetails(ctx context.Context, req *cashier.GetOrderDetailsRequest, runOpts ...RunOption) (*cashier.GetOrderDetailsResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.GetOrderDetailsResponse
	if err := s.c.call(ctx, consts.GetOrderDetailsPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// =========================
// Payments
// =========================

type PaymentsService struct{ c *Client }

// PaymentCC charges or authorizes a credit card.
func (s *PaymentsService) PaymentCC(ctx context.Context, req *cashier.PaymentCCRequest, runOpts ...RunOption) (*cashier.PaymentCCResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.PaymentCCResponse
	if err := s.c.call(ctx, consts.PaymentCCPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// PaymentAPM pays with an alternative payment method.
func (s *PaymentsService) PaymentAPM(ctx context.Context, req *cashier.PaymentAPMRequest, runOpts ...RunOption) (*cashier.PaymentAPMResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.PaymentAPMResponse
	if err := s.c.call(ctx, consts.PaymentAPMPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Dynamic3D starts a 3D Secure flow and returns the issuer challenge data.
func (s *PaymentsService) Dynamic3D(ctx context.Context, req *cashier.Dynamic3DRequest, runOpts ...RunOption) (*cashier.Dynamic3DResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.Dynamic3DResponse
	if err := s.c.call(ctx, consts.Dynamic3DPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Payment3D completes a 3D Secure flow started by Dynamic3D.
func (s *PaymentsService) Payment3D(ctx context.Context, req *cashier.Payment3DRequest, runOpts ...RunOption) (*cashier.Payment3DResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.Payment3DResponse
	if err := s.c.call(ctx, consts.Payment3DPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// GetMerchantPaymentMethods lists payment methods enabled for the merchant site.
func (s *PaymentsService) GetMerchantPaymentMethods(ctx context.Context, req *cashier.GetMerchantPaymentMethodsRequest, runOpts ...RunOption) (*cashier.GetMerchantPaymentMethodsResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		req = &cashier.GetMerchantPaymentMethodsRequest{}
	}
	var out cashier.GetMerchantPaymentMethodsResponse
	if err := s.c.call(ctx, consts.GetMerchantPaymentMethodsPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// =========================
// Transactions
// =========================

type TransactionsService struct{ c *Client }

// Settle captures a previously authorized amount.
func (s *TransactionsService) Settle(ctx context.Context, req *cashier.SettleTransactionRequest, runOpts ...RunOption) (*cashier.SettleTransactionResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.SettleTransactionResponse
	if err := s.c.call(ctx, consts.SettleTransactionPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Void cancels an unsettled authorization.
func (s *TransactionsService) Void(ctx context.Context, req *cashier.VoidTransactionRequest, runOpts ...RunOption) (*cashier.VoidTransactionResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.VoidTransactionResponse
	if err := s.c.call(ctx, consts.VoidTransactionPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Refund returns settled funds to the card holder.
func (s *TransactionsService) Refund(ctx context.Context, req *cashier.RefundTransactionRequest, runOpts ...RunOption) (*cashier.RefundTransactionResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.RefundTransactionResponse
	if err := s.c.call(ctx, consts.RefundTransactionPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// =========================
// Subscriptions
// =========================

type SubscriptionsService struct{ c *Client }

// Create starts a recurring billing subscription on a stored payment option.
func (s *SubscriptionsService) Create(ctx context.Context, req *cashier.CreateSubscriptionRequest, runOpts ...RunOption) (*cashier.CreateSubscriptionResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.CreateSubscriptionResponse
	if err := s.c.call(ctx, consts.CreateSubscriptionPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Cancel stops a subscription.
func (s *SubscriptionsService) Cancel(ctx context.Context, req *cashier.CancelSubscriptionRequest, runOpts ...RunOption) (*cashier.CancelSubscriptionResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.CancelSubscriptionResponse
	if err := s.c.call(ctx, consts.CancelSubscriptionPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// List returns a user's subscriptions, optionally filtered by status.
func (s *SubscriptionsService) List(ctx context.Context, req *cashier.GetSubscriptionsListRequest, runOpts ...RunOption) (*cashier.GetSubscriptionsListResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.GetSubscriptionsListResponse
	if err := s.c.call(ctx, consts.GetSubscriptionsListPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Plans returns the subscription plans configured for the merchant site.
func (s *SubscriptionsService) Plans(ctx context.Context, req *cashier.GetSubscriptionPlansRequest, runOpts ...RunOption) (*cashier.GetSubscriptionPlansResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		req = &cashier.GetSubscriptionPlansRequest{}
	}
	var out cashier.GetSubscriptionPlansResponse
	if err := s.c.call(ctx, consts.GetSubscriptionPlansPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// =========================
// UPO (user payment options)
// =========================

type UPOService struct{ c *Client }

// AddCreditCard stores a credit card as a reusable payment option.
func (s *UPOService) AddCreditCard(ctx context.Context, req *cashier.AddUPOCreditCardRequest, runOpts ...RunOption) (*cashier.AddUPOCreditCardResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.AddUPOCreditCardResponse
	if err := s.c.call(ctx, consts.AddUPOCreditCardPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// AddAPM stores an alternative payment method as a reusable payment option.
func (s *UPOService) AddAPM(ctx context.Context, req *cashier.AddUPOAPMRequest, runOpts ...RunOption) (*cashier.AddUPOAPMResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.AddUPOAPMResponse
	if err := s.c.call(ctx, consts.AddUPOAPMPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// EditCreditCard updates expiry or billing data on a stored card.
func (s *UPOService) EditCreditCard(ctx context.Context, req *cashier.EditUPOCreditCardRequest, runOpts ...RunOption) (*cashier.EditUPOCreditCardResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.EditUPOCreditCardResponse
	if err := s.c.call(ctx, consts.EditUPOCreditCardPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Delete removes a stored payment option.
func (s *UPOService) Delete(ctx context.Context, req *cashier.DeleteUPORequest, runOpts ...RunOption) (*cashier.DeleteUPOResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.DeleteUPOResponse
	if err := s.c.call(ctx, consts.DeleteUPOPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Suspend blocks a stored payment option from use.
func (s *UPOService) Suspend(ctx context.Context, req *cashier.SuspendUPORequest, runOpts ...RunOption) (*cashier.SuspendUPOResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.SuspendUPOResponse
	if err := s.c.call(ctx, consts.SuspendUPOPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Enable lifts a suspension from a stored payment option.
func (s *UPOService) Enable(ctx context.Context, req *cashier.EnableUPORequest, runOpts ...RunOption) (*cashier.EnableUPOResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.EnableUPOResponse
	if err := s.c.call(ctx, consts.EnableUPOPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// List returns the payment options stored for a user.
func (s *UPOService) List(ctx context.Context, req *cashier.GetUserUPOsRequest, runOpts ...RunOption) (*cashier.GetUserUPOsResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.GetUserUPOsResponse
	if err := s.c.call(ctx, consts.GetUserUPOsPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// =========================
// Users
// =========================

type UsersService struct{ c *Client }

// Create registers a cashier user identified by userTokenId.
func (s *UsersService) Create(ctx context.Context, req *cashier.CreateUserRequest, runOpts ...RunOption) (*cashier.CreateUserResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.CreateUserResponse
	if err := s.c.call(ctx, consts.CreateUserPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// Update changes a cashier user's profile data.
func (s *UsersService) Update(ctx context.Context, req *cashier.UpdateUserRequest, runOpts ...RunOption) (*cashier.UpdateUserResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.UpdateUserResponse
	if err := s.c.call(ctx, consts.UpdateUserPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}

// GetDetails returns a cashier user's profile.
func (s *UsersService) GetDetails(ctx context.Context, req *cashier.GetUserDetailsRequest, runOpts ...RunOption) (*cashier.GetUserDetailsResponse, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	var out cashier.GetUserDetailsResponse
	if err := s.c.call(ctx, consts.GetUserDetailsPath, req, &out, runOpts); err != nil {
		return nil, err
	}
	return &out, gatewayError(out.BaseResponse())
}
