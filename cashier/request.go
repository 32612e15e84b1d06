package cashier

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"

	"github.com/safecharge/safecharge-go/internal/checksum"
)

// BaseRequest carries the fields common to every cashier request.
//
// TimeStamp, ClientRequestID and Checksum are filled in by Finalize;
// merchant identity comes from MerchantInfo.
type BaseRequest struct {
	MerchantID      string `json:"merchantId" validate:"required"`
	MerchantSiteID  string `json:"merchantSiteId" validate:"required"`
	ClientRequestID string `json:"clientRequestId,omitempty" validate:"maxLen:255"`
	ClientUniqueID  string `json:"clientUniqueId,omitempty" validate:"maxLen:45"`
	SessionToken    string `json:"sessionToken,omitempty"`
	TimeStamp       string `json:"timeStamp" validate:"required"`
	Checksum        string `json:"checksum" validate:"required"`
}

func (b *BaseRequest) Base() *BaseRequest { return b }

// Request is implemented by every cashier request type.
type Request interface {
	Base() *BaseRequest
	checksumMapping() checksum.OrderMapping
}

// sessionScoped marks requests that cannot be sent without a session token
// obtained from getSessionToken.
type sessionScoped interface {
	requiresSessionToken()
}

// crossFieldChecker lets a request add constraints that span multiple
// fields, e.g. amount vs item totals.
type crossFieldChecker interface {
	crossFieldChecks(ve *ValidationError)
}

// Finalize completes a request in place: it stamps merchant identity and
// timestamp, generates a clientRequestId when the caller did not set one,
// computes the checksum over the request's order mapping and then runs
// declarative field validation.
func Finalize(m MerchantInfo, req Request) error {
	if req == nil {
		return errors.New("cashier: request is nil")
	}

	b := req.Base()
	b.MerchantID = m.MerchantID
	b.MerchantSiteID = m.MerchantSiteID
	if b.TimeStamp == "" {
		b.TimeStamp = time.Now().UTC().Format(checksum.TimeStampLayout)
	}
	if b.ClientRequestID == "" {
		b.ClientRequestID = uuid.NewString()
	}

	sum, err := checksum.Calculate(m.algorithm(), m.MerchantKey, req.checksumMapping(), checksum.ParamsFrom(req))
	if err != nil {
		return err
	}
	b.Checksum = sum

	return Validate(req)
}

// Validate runs the declarative field constraints of req and reports every
// violated constraint as a field of the returned *ValidationError.
func Validate(req Request) error {
	if req == nil {
		return errors.New("cashier: request is nil")
	}

	ve := &ValidationError{}
	if _, ok := req.(sessionScoped); ok && req.Base().SessionToken == "" {
		ve.Add("sessionToken", "is required")
	}
	if cc, ok := req.(crossFieldChecker); ok {
		cc.crossFieldChecks(ve)
	}

	v := validate.Struct(req)
	// Report every violated field, not just the first.
	v.StopOnError = false
	if !v.Validate() {
		fields := make([]string, 0, len(v.Errors))
		for field := range v.Errors {
			fields = append(fields, field)
		}
		// Map iteration order is random; keep reported fields stable.
		sort.Strings(fields)
		for _, field := range fields {
			for _, msg := range v.Errors[field] {
				ve.Add(field, msg)
				break
			}
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
