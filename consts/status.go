package consts

// ResponseStatus is the API-level status of a cashier response.
//
// Values are taken from the SafeCharge documentation.
type ResponseStatus string

const (
	ResponseStatusSuccess ResponseStatus = "SUCCESS"
	ResponseStatusError   ResponseStatus = "ERROR"
)

// TransactionStatus is the gateway-level result of a financial transaction.
type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusDeclined TransactionStatus = "DECLINED"
	TransactionStatusError    TransactionStatus = "ERROR"
	TransactionStatusPending  TransactionStatus = "PENDING"
)

// TransactionType selects auth-only vs immediate capture for card payments.
type TransactionType string

const (
	TransactionTypeAuth TransactionType = "Auth"
	TransactionTypeSale TransactionType = "Sale"
)

// DMNStatus values reported in payment notification callbacks.
type DMNStatus string

const (
	DMNStatusApproved DMNStatus = "APPROVED"
	DMNStatusDeclined DMNStatus = "DECLINED"
	DMNStatusError    DMNStatus = "ERROR"
	DMNStatusPending  DMNStatus = "PENDING"
)
