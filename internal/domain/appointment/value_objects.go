package appointment

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCustomerName  = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("customer email is invalid")
	ErrInvalidCustomerPhone = errors.New("customer phone must be 6-32 characters")
	ErrNoteTooLong          = errors.New("notes cannot exceed 1000 characters")
)

const maxNoteLength = 1000

// Customer is a contact snapshot owned by the appointment. It is copied at
// booking time and may differ from the account holder.
type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	if name == "" || len(name) > 120 {
		return Customer{}, ErrInvalidCustomerName
	}
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return Customer{}, ErrInvalidCustomerEmail
	}
	if len(phone) < 6 || len(phone) > 32 {
		return Customer{}, ErrInvalidCustomerPhone
	}

	return Customer{name: name, email: email, phone: phone}, nil
}

// ReconstructCustomer rehydrates a stored contact snapshot without
// re-running validation; the data was validated when it was written.
func ReconstructCustomer(name, email, phone string) Customer {
	return Customer{name: name, email: email, phone: phone}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

// Merge overlays the non-empty fields of other onto c. Used by partial
// updates where a patch may carry only some contact fields.
func (c Customer) Merge(other Customer) Customer {
	merged := c
	if other.name != "" {
		merged.name = other.name
	}
	if other.email != "" {
		merged.email = other.email
	}
	if other.phone != "" {
		merged.phone = other.phone
	}
	return merged
}

// ServiceSnapshot freezes the catalog data an appointment was booked
// against. Later edits to the service never touch it.
type ServiceSnapshot struct {
	Name            string
	DurationMinutes int
	Price           int
}

// Payment records what the external payment collaborator told us. Amount is
// in whole currency units, matching the catalog price.
type Payment struct {
	Status   PaymentStatus
	Amount   int
	Currency string
	IntentID string
}

func NewPayment(amount int, currency, intentID string) Payment {
	status := PaymentNotRequired
	if intentID != "" {
		status = PaymentPending
	}
	if currency == "" {
		currency = "usd"
	}
	return Payment{
		Status:   status,
		Amount:   amount,
		Currency: currency,
		IntentID: intentID,
	}
}

func NewNote(value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) > maxNoteLength {
		return "", ErrNoteTooLong
	}
	return value, nil
}
