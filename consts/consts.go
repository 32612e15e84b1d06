package consts

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
)

// Server hosts.
const (
	// Integration (sandbox) environment.
	DefaultServerHost = "https://ppp-test.safecharge.com/ppp/api/v1"
	// Production environment.
	ProductionServerHost = "https://secure.safecharge.com/ppp/api/v1"
)

// HashAlgorithm selects the digest used for the request checksum.
//
// MD5 is the legacy cashier default; SHA-256 is what new merchant sites
// are provisioned with and what this SDK defaults to.
type HashAlgorithm string

const (
	HashMD5    HashAlgorithm = "MD5"
	HashSHA256 HashAlgorithm = "SHA-256"
)

// Session endpoint paths.
const (
	GetSessionTokenPath = "/getSessionToken.do"
)

// Order endpoint paths.
const (
	OpenOrderPath       = "/openOrder.do"
	UpdateOrderPath     = "/updateOrder.do"
	GetOrderDetailsPath = "/getOrderDetails.do"
)

// Payment endpoint paths.
const (
	PaymentCCPath                 = "/paymentCC.do"
	PaymentAPMPath                = "/paymentAPM.do"
	Dynamic3DPath                 = "/dynamic3D.do"
	Payment3DPath                 = "/payment3D.do"
	GetMerchantPaymentMethodsPath = "/getMerchantPaymentMethods.do"
)

// Gateway transaction endpoint paths.
const (
	SettleTransactionPath = "/settleTransaction.do"
	VoidTransactionPath   = "/voidTransaction.do"
	RefundTransactionPath = "/refundTransaction.do"
)

// Subscription endpoint paths.
const (
	CreateSubscriptionPath   = "/createSubscription.do"
	CancelSubscriptionPath   = "/cancelSubscription.do"
	GetSubscriptionsListPath = "/getSubscriptionsList.do"
	GetSubscriptionPlansPath = "/getSubscriptionPlans.do"
)

// User payment option endpoint paths.
const (
	AddUPOCreditCardPath  = "/addUPOCreditCard.do"
	AddUPOAPMPath         = "/addUPOAPM.do"
	EditUPOCreditCardPath = "/editUPOCC.do"
	DeleteUPOPath         = "/deleteUPO.do"
	SuspendUPOPath        = "/suspendUPO.do"
	EnableUPOPath         = "/enableUPO.do"
	GetUserUPOsPath       = "/getUserUPOs.do"
)

// User endpoint paths.
const (
	CreateUserPath     = "/createUser.do"
	UpdateUserPath     = "/updateUser.do"
	GetUserDetailsPath = "/getUserDetails.do"
)
