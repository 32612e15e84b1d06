package safecharge

import (
	"context"
	"net/url"

	"github.com/safecharge/safecharge-go/cashier"
	"github.com/safecharge/safecharge-go/log"
)

// Safecharge is the main SDK interface.
type Safecharge interface {
	Session() *SessionService
	Orders() *OrdersService
	Payments() *PaymentsService
	Transactions() *TransactionsService
	Subscriptions() *SubscriptionsService
	UPO() *UPOService
	Users() *UsersService

	Do(ctx context.Context, endpointPath string, req cashier.Request, out any, runOpts ...RunOption) error
	VerifyDMN(params url.Values) error

	SetLogLevel(level log.Level)
}

var _ Safecharge = (*Client)(nil)
