package models

// PaymentStatus is the settlement state of a payment. Initiation is
// the only transition this service performs.
type PaymentStatus string

const (
	PaymentInitiated  PaymentStatus = "initiated"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// CurrencyINR is the only currency the platform charges in.
const CurrencyINR = "INR"

// Payment is a mock payment record. ApplicationRef optionally links it
// to an application; ProviderRef is reserved for a gateway reference.
type Payment struct {
	UserEmail      string        `bson:"user_email" json:"user_email"`
	Purpose        string        `bson:"purpose" json:"purpose"`
	Amount         float64       `bson:"amount" json:"amount"`
	Currency       string        `bson:"currency" json:"currency"`
	Status         PaymentStatus `bson:"status" json:"status"`
	ApplicationRef string        `bson:"application_ref,omitempty" json:"application_ref,omitempty"`
	ProviderRef    string        `bson:"provider_ref,omitempty" json:"provider_ref,omitempty"`
}
