package cashier

import "github.com/safecharge/safecharge-go/internal/checksum"

// CreateUserRequest corresponds to "Create user" (POST /createUser.do).
type CreateUserRequest struct {
	BaseRequest

	UserTokenID string `json:"userTokenId" validate:"required|maxLen:255"`
	FirstName   string `json:"firstName,omitempty" validate:"maxLen:30"`
	LastName    string `json:"lastName,omitempty" validate:"maxLen:40"`
	Address     string `json:"address,omitempty" validate:"maxLen:60"`
	State       string `json:"state,omitempty" validate:"maxLen:2"`
	City        string `json:"city,omitempty" validate:"maxLen:30"`
	Zip         string `json:"zip,omitempty" validate:"maxLen:10"`
	CountryCode string `json:"countryCode,omitempty" validate:"maxLen:2|regexp:^[A-Z]{2}$"`
	Phone       string `json:"phone,omitempty" validate:"maxLen:18"`
	Locale      string `json:"locale,omitempty" validate:"maxLen:5"`
	Email       string `json:"email,omitempty" validate:"email|maxLen:100"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"regexp:^[0-9]{4}-[0-9]{2}-[0-9]{2}$"`
}

func (*CreateUserRequest) checksumMapping() checksum.OrderMapping { return checksum.CashierUser }

type CreateUserResponse struct {
	Response

	UserID string `json:"userId"`
}

// UpdateUserRequest corresponds to "Update user" (POST /updateUser.do).
type UpdateUserRequest struct {
	BaseRequest

	UserTokenID string `json:"userTokenId" validate:"required|maxLen:255"`
	FirstName   string `json:"firstName,omitempty" validate:"maxLen:30"`
	LastName    string `json:"lastName,omitempty" validate:"maxLen:40"`
	Address     string `json:"address,omitempty" validate:"maxLen:60"`
	State       string `json:"state,omitempty" validate:"maxLen:2"`
	City        string `json:"city,omitempty" validate:"maxLen:30"`
	Zip         string `json:"zip,omitempty" validate:"maxLen:10"`
	CountryCode string `json:"countryCode,omitempty" validate:"maxLen:2|regexp:^[A-Z]{2}$"`
	Phone       string `json:"phone,omitempty" validate:"maxLen:18"`
	Locale      string `json:"locale,omitempty" validate:"maxLen:5"`
	Email       string `json:"email,omitempty" validate:"email|maxLen:100"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"regexp:^[0-9]{4}-[0-9]{2}-[0-9]{2}$"`
}

func (*UpdateUserRequest) checksumMapping() checksum.OrderMapping { return checksum.CashierUser }

type UpdateUserResponse struct {
	Response

	UserID string `json:"userId"`
}

// GetUserDetailsRequest corresponds to "Get user details" (POST /getUserDetails.do).
type GetUserDetailsRequest struct {
	BaseRequest

	UserTokenID string `json:"userTokenId" validate:"required|maxLen:255"`
}

func (*GetUserDetailsRequest) checksumMapping() checksum.OrderMapping { return checksum.CashierUser }

type GetUserDetailsResponse struct {
	Response

	UserID      string       `json:"userId"`
	UserDetails *UserDetails `json:"userDetails,omitempty"`
}

// CreateUserBuilder assembles and signs a CreateUserRequest.
type CreateUserBuilder struct {
	merchant MerchantInfo
	req      CreateUserRequest
}

func NewCreateUserBuilder(m MerchantInfo) *CreateUserBuilder {
	return &CreateUserBuilder{merchant: m}
}

func (b *CreateUserBuilder) ClientRequestID(id string) *CreateUserBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *CreateUserBuilder) UserTokenID(id string) *CreateUserBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *CreateUserBuilder) Name(firstName, lastName string) *CreateUserBuilder {
	b.req.FirstName = firstName
	b.req.LastName = lastName
	return b
}

func (b *CreateUserBuilder) Address(address, city, state, zip, countryCode string) *CreateUserBuilder {
	b.req.Address = address
	b.req.City = city
	b.req.State = state
	b.req.Zip = zip
	b.req.CountryCode = countryCode
	return b
}

func (b *CreateUserBuilder) Phone(phone string) *CreateUserBuilder {
	b.req.Phone = phone
	return b
}

func (b *CreateUserBuilder) Email(email string) *CreateUserBuilder {
	b.req.Email = email
	return b
}

func (b *CreateUserBuilder) Locale(locale string) *CreateUserBuilder {
	b.req.Locale = locale
	return b
}

func (b *CreateUserBuilder) DateOfBirth(dateOfBirth string) *CreateUserBuilder {
	b.req.DateOfBirth = dateOfBirth
	return b
}

func (b *CreateUserBuilder) Build() (*CreateUserRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateUserBuilder assembles and signs an UpdateUserRequest.
type UpdateUserBuilder struct {
	merchant MerchantInfo
	req      UpdateUserRequest
}

func NewUpdateUserBuilder(m MerchantInfo) *UpdateUserBuilder {
	return &UpdateUserBuilder{merchant: m}
}

func (b *UpdateUserBuilder) ClientRequestID(id string) *UpdateUserBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *UpdateUserBuilder) UserTokenID(id string) *UpdateUserBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *UpdateUserBuilder) Name(firstName, lastName string) *UpdateUserBuilder {
	b.req.FirstName = firstName
	b.req.LastName = lastName
	return b
}

func (b *UpdateUserBuilder) Address(address, city, state, zip, countryCode string) *UpdateUserBuilder {
	b.req.Address = address
	b.req.City = city
	b.req.State = state
	b.req.Zip = zip
	b.req.CountryCode = countryCode
	return b
}

func (b *UpdateUserBuilder) Phone(phone string) *UpdateUserBuilder {
	b.req.Phone = phone
	return b
}

func (b *UpdateUserBuilder) Email(email string) *UpdateUserBuilder {
	b.req.Email = email
	return b
}

func (b *UpdateUserBuilder) Build() (*UpdateUserRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetUserDetailsBuilder assembles and signs a GetUserDetailsRequest.
type GetUserDetailsBuilder struct {
	merchant MerchantInfo
	req      GetUserDetailsRequest
}

func NewGetUserDetailsBuilder(m MerchantInfo) *GetUserDetailsBuilder {
	return &GetUserDetailsBuilder{merchant: m}
}

func (b *GetUserDetailsBuilder) ClientRequestID(id string) *GetUserDetailsBuilder {
	b.req.ClientRequestID = id
	return b
}

func (b *GetUserDetailsBuilder) UserTokenID(id string) *GetUserDetailsBuilder {
	b.req.UserTokenID = id
	return b
}

func (b *GetUserDetailsBuilder) Build() (*GetUserDetailsRequest, error) {
	req := b.req
	if err := Finalize(b.merchant, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
