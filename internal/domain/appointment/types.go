package appointment

// Status is the appointment lifecycle state. Scheduled is the only initial
// state; cancelled and completed are terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// PaymentStatus mirrors the states the external payment collaborator moves
// an intent through. The engine only records it.
type PaymentStatus string

const (
	PaymentPending               PaymentStatus = "pending"
	PaymentRequiresPaymentMethod PaymentStatus = "requires_payment_method"
	PaymentRequiresAction        PaymentStatus = "requires_action"
	PaymentSucceeded             PaymentStatus = "succeeded"
	PaymentRefunded              PaymentStatus = "refunded"
	PaymentFailed                PaymentStatus = "failed"
	PaymentNotRequired           PaymentStatus = "not_required"
)

func (p PaymentStatus) String() string {
	return string(p)
}
