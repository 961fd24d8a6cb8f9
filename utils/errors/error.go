package errors

import (
	"errors"
)

var (
	// ErrNoRefundableDeposit will throw when the merchant holds no refundable margin
	ErrNoRefundableDeposit = errors.New("Merchant has no refundable deposit")
	// ErrDuplicateApplication will throw when a refund application is already outstanding
	ErrDuplicateApplication = errors.New("A margin refund application is already pending")
	// ErrMissingOfflinePayeeInfo will throw when the offline slice has no complete payee
	ErrMissingOfflinePayeeInfo = errors.New("Offline payee information is incomplete")
	// ErrAlreadyAudited will throw on a second audit of the same record
	ErrAlreadyAudited = errors.New("Record has already been audited")
	// ErrRefundExceedsCapture will throw when a refund slice exceeds its captured payment
	ErrRefundExceedsCapture = errors.New("Refund amount exceeds the captured payment")
	// ErrRecordNotFound will throw when the financial record does not exist
	ErrRecordNotFound = errors.New("Financial record not found")
	// ErrMerchantNotFound will throw when the merchant does not exist
	ErrMerchantNotFound = errors.New("Merchant not found")
	ErrGeneral          = errors.New("Something went wrong. Please try again later")
)

// IsPrecondition reports whether err is a no-mutation precondition failure,
// safe to surface to the admin without any cleanup.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoRefundableDeposit) ||
		errors.Is(err, ErrDuplicateApplication) ||
		errors.Is(err, ErrMissingOfflinePayeeInfo)
}

// IsTerminal reports whether err is final for the targeted record and must not
// be retried.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrAlreadyAudited) || errors.Is(err, ErrRefundExceedsCapture)
}
