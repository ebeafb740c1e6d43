package bookings

import (
	"errors"

	"bhromon/models"
	"bhromon/payments"
)

var (
	ErrPaymentNotSucceeded = errors.New("payment not successful")
	ErrAmountMismatch      = errors.New("payment amount mismatch")
	ErrAlreadyConfirmed    = errors.New("payment already confirmed")
)

// VerifyCharge is the confirmation invariant: the payment must have
// actually succeeded, and the amount the processor collected must equal
// the charge recomputed here from catalog data. The client-declared
// amount never participates.
func VerifyCharge(intent payments.Intent, item models.CatalogItem, guests, nights int) error {
	if intent.Status != payments.StatusSucceeded {
		return ErrPaymentNotSucceeded
	}
	expected := payments.MinorUnits(payments.Quote(item, guests, nights))
	if intent.Amount != expected {
		return ErrAmountMismatch
	}
	return nil
}

// CanDelete reports whether the caller may remove a booking: its owner
// (matched by email) or an administrator.
func CanDelete(b models.Booking, callerEmail string, isAdmin bool) bool {
	return isAdmin || (callerEmail != "" && b.UserEmail == callerEmail)
}
