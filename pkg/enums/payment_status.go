package enums

import "fmt"

// PaymentStatus tracks how much of a sale has been settled.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusDeposit PaymentStatus = "Deposit"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// DefaultPaymentStatus is assumed when a record carries no status.
const DefaultPaymentStatus = PaymentStatusPending

var validPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusDeposit,
	PaymentStatusPaid,
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentStatus.
func (p PaymentStatus) IsValid() bool {
	for _, candidate := range validPaymentStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentStatus converts raw input into a PaymentStatus.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	for _, candidate := range validPaymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment status %q", value)
}
