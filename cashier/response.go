package cashier

import "github.com/safecharge/safecharge-go/consts"

// Response carries the fields common to every cashier response.
type Response struct {
	Status            consts.ResponseStatus `json:"status"`
	ErrCode           int                   `json:"errCode"`
	Reason            string                `json:"reason"`
	MerchantID        string                `json:"merchantId"`
	MerchantSiteID    string                `json:"merchantSiteId"`
	InternalRequestID int64                 `json:"internalRequestId"`
	ClientRequestID   string                `json:"clientRequestId"`
	Version           string                `json:"version"`
	SessionToken      string                `json:"sessionToken,omitempty"`
}

func (r *Response) BaseResponse() *Response { return r }

// Success reports whether the API accepted the request. A successful API
// status does not imply the gateway approved the transaction; check
// TransactionStatus for that.
func (r *Response) Success() bool {
	return r != nil && r.Status == consts.ResponseStatusSuccess
}

// TransactionResponse extends Response with the gateway transaction result
// shared by payment, settle, void and refund responses.
type TransactionResponse struct {
	Response

	TransactionID         string                   `json:"transactionId"`
	ExternalTransactionID string                   `json:"externalTransactionId"`
	AuthCode              string                   `json:"authCode"`
	TransactionStatus     consts.TransactionStatus `json:"transactionStatus"`
	GwErrorCode           int                      `json:"gwErrorCode"`
	GwErrorReason         string                   `json:"gwErrorReason"`
	GwExtendedErrorCode   int                      `json:"gwExtendedErrorCode"`
	PaymentMethodErrCode  int                      `json:"paymentMethodErrorCode"`
	CustomData            string                   `json:"customData,omitempty"`
}

// Approved reports whether the gateway approved the transaction.
func (r *TransactionResponse) Approved() bool {
	return r != nil && r.Success() && r.TransactionStatus == consts.TransactionStatusApproved
}
