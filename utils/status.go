// utils/status.go - travel record status labels and credit display
package utils

import "fmt"

// Travel record display statuses derived from the lifecycle flags.
// Canceled wins over verified: a canceled trip stays canceled even if
// its charge was reconciled.
const (
	TravelStatusCanceled = "Canceled"
	TravelStatusVerified = "Verified"
	TravelStatusBooked   = "Booked"
)

// TravelStatus derives the label shown in list views from the record's
// independent lifecycle flags.
func TravelStatus(canceled, verified bool) string {
	if canceled {
		return TravelStatusCanceled
	}
	if verified {
		return TravelStatusVerified
	}
	return TravelStatusBooked
}

// CreditDisplay formats an available-credit balance for the UI. Exactly
// zero reads "No Credits" rather than "$0.00"; negative balances are
// shown as-is so data-integrity problems stay visible.
func CreditDisplay(balance float64) string {
	if balance == 0 {
		return "No Credits"
	}
	if balance < 0 {
		return fmt.Sprintf("-$%.2f", -balance)
	}
	return fmt.Sprintf("$%.2f", balance)
}
