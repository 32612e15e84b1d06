package cashier

// Item is one order line. Price and quantity are decimal strings; the
// order total must equal the sum of price*quantity over all items.
type Item struct {
	Name     string `json:"name" validate:"required|maxLen:255"`
	Price    string `json:"price" validate:"required|maxLen:10"`
	Quantity string `json:"quantity" validate:"required|maxLen:10"`
}

// UserDetails describes a cashier user or a billing/shipping address.
type UserDetails struct {
	FirstName   string `json:"firstName,omitempty" validate:"maxLen:30"`
	LastName    string `json:"lastName,omitempty" validate:"maxLen:40"`
	Address     string `json:"address,omitempty" validate:"maxLen:60"`
	Cell        string `json:"cell,omitempty" validate:"maxLen:18"`
	Phone       string `json:"phone,omitempty" validate:"maxLen:18"`
	Zip         string `json:"zip,omitempty" validate:"maxLen:10"`
	City        string `json:"city,omitempty" validate:"maxLen:30"`
	Country     string `json:"country,omitempty" validate:"maxLen:2|regexp:^[A-Z]{2}$"`
	State       string `json:"state,omitempty" validate:"maxLen:2"`
	Email       string `json:"email,omitempty" validate:"email|maxLen:100"`
	County      string `json:"county,omitempty" validate:"maxLen:255"`
	Locale      string `json:"locale,omitempty" validate:"maxLen:5"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"regexp:^[0-9]{4}-[0-9]{2}-[0-9]{2}$"`
}

// CardData holds plain card details for paymentCC/dynamic3D. Either the
// full card fields or a ccTempToken from a tokenization call must be set.
type CardData struct {
	CardNumber      string `json:"cardNumber,omitempty" validate:"regexp:^[0-9]{8,19}$"`
	CardHolderName  string `json:"cardHolderName,omitempty" validate:"maxLen:70"`
	ExpirationMonth string `json:"expirationMonth,omitempty" validate:"in:01,02,03,04,05,06,07,08,09,10,11,12"`
	ExpirationYear  string `json:"expirationYear,omitempty" validate:"regexp:^[0-9]{4}$"`
	CVV             string `json:"CVV,omitempty" validate:"regexp:^[0-9]{3,4}$"`
	CcTempToken     string `json:"ccTempToken,omitempty" validate:"maxLen:45"`
}

// UserPaymentOption references a stored payment option instead of raw card data.
type UserPaymentOption struct {
	UserPaymentOptionID string `json:"userPaymentOptionId" validate:"required|maxLen:45"`
	CVV                 string `json:"CVV,omitempty" validate:"regexp:^[0-9]{3,4}$"`
}

// DeviceDetails describes the customer device, used for risk scoring.
type DeviceDetails struct {
	DeviceType string `json:"deviceType,omitempty" validate:"maxLen:10"`
	DeviceName string `json:"deviceName,omitempty" validate:"maxLen:255"`
	DeviceOS   string `json:"deviceOS,omitempty" validate:"maxLen:255"`
	Browser    string `json:"browser,omitempty" validate:"maxLen:255"`
	IPAddress  string `json:"ipAddress,omitempty" validate:"ip"`
}

// URLDetails overrides the redirect and notification URLs configured for
// the merchant site.
type URLDetails struct {
	SuccessURL      string `json:"successUrl,omitempty" validate:"fullUrl|maxLen:1000"`
	FailureURL      string `json:"failureUrl,omitempty" validate:"fullUrl|maxLen:1000"`
	PendingURL      string `json:"pendingUrl,omitempty" validate:"fullUrl|maxLen:1000"`
	NotificationURL string `json:"notificationUrl,omitempty" validate:"fullUrl|maxLen:1000"`
}

// DynamicDescriptor overrides the descriptor shown on the cardholder statement.
type DynamicDescriptor struct {
	MerchantName  string `json:"merchantName,omitempty" validate:"maxLen:25"`
	MerchantPhone string `json:"merchantPhone,omitempty" validate:"maxLen:13"`
}

// MerchantDetails carries free-form merchant data echoed back in DMNs.
type MerchantDetails struct {
	CustomField1 string `json:"customField1,omitempty" validate:"maxLen:255"`
	CustomField2 string `json:"customField2,omitempty" validate:"maxLen:255"`
	CustomField3 string `json:"customField3,omitempty" validate:"maxLen:255"`
	CustomField4 string `json:"customField4,omitempty" validate:"maxLen:255"`
	CustomField5 string `json:"customField5,omitempty" validate:"maxLen:255"`
}

// Subscription is one entry of a getSubscriptionsList response.
type Subscription struct {
	SubscriptionID     string `json:"subscriptionId"`
	SubscriptionStatus string `json:"subscriptionStatus"`
	PlanID             string `json:"planId"`
	UserPaymentOption  string `json:"userPaymentOptionId"`
	InitialAmount      string `json:"initialAmount"`
	RecurringAmount    string `json:"recurringAmount"`
	Currency           string `json:"currency"`
	StartDate          string `json:"startDate"`
	NextChargeDate     string `json:"nextChargeDate"`
}

// SubscriptionPlan is one entry of a getSubscriptionPlans response.
type SubscriptionPlan struct {
	PlanID          string `json:"planId"`
	Name            string `json:"name"`
	InitialAmount   string `json:"initialAmount"`
	RecurringAmount string `json:"recurringAmount"`
	Currency        string `json:"currency"`
	RecurringPeriod string `json:"recurringPeriod"`
	PlanStatus      string `json:"planStatus"`
}

// UPODetails is one stored payment option of a getUserUPOs response.
type UPODetails struct {
	UserPaymentOptionID string            `json:"userPaymentOptionId"`
	PaymentMethodName   string            `json:"paymentMethodName"`
	UPOStatus           string            `json:"upoStatus"`
	UPOData             map[string]string `json:"upoData,omitempty"`
	ExpiryDate          string            `json:"expiryDate,omitempty"`
	BillingAddress      *UserDetails      `json:"billingAddress,omitempty"`
}

// PaymentMethod is one entry of a getMerchantPaymentMethods response.
type PaymentMethod struct {
	PaymentMethod            string            `json:"paymentMethod"`
	PaymentMethodDisplayName map[string]string `json:"paymentMethodDisplayName,omitempty"`
	CountryCodes             []string          `json:"countryCodes,omitempty"`
	CurrencyCodes            []string          `json:"currencyCodes,omitempty"`
	LogoURL                  string            `json:"logoURL,omitempty"`
	IsDirect                 bool              `json:"isDirect,omitempty"`
	Fields                   []PaymentField    `json:"fields,omitempty"`
}

// PaymentField describes one input the APM expects from the customer.
type PaymentField struct {
	Name    string `json:"name"`
	Regex   string `json:"regex,omitempty"`
	Type    string `json:"type,omitempty"`
	Caption string `json:"caption,omitempty"`
}
