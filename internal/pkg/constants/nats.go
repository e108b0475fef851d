package constants

// NATS subjects for payment events
const (
	// SubjectPaymentStatus carries terminal payment status events for the
	// notification service
	SubjectPaymentStatus = "payments.status"
)
