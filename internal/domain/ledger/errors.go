// Package ledger is the side-effect-free core of the estate-sale books:
// pricing, disposition, commission, job finance, the sale-window gate, bid
// guards, and the item approval lifecycle. Callers load state, apply these
// functions, and persist the result in one write.
package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrNoMatchingItems       = errors.New("no matching available items")
	ErrInvalidDisposition    = errors.New("invalid disposition")
	ErrItemUnavailable       = errors.New("item is not available")
	ErrItemNotFound          = errors.New("approved item not found")
	ErrPhotoIndexOutOfRange  = errors.New("photo index out of range")
	ErrPhotoIndexTaken       = errors.New("photo index already belongs to an approved item")
	ErrEmptyApproval         = errors.New("approval requires at least one item")
	ErrEmptyPhotoGroup       = errors.New("approved item requires at least one photo")
	ErrInvalidItemTransition = errors.New("invalid item document transition")
	ErrReopenReasonRequired  = errors.New("reopen reason is required")
	ErrBidNotSubmitted       = errors.New("bid is not submitted")
	ErrBidNotAccepted        = errors.New("bid is not accepted")
	ErrBidAlreadyPaid        = errors.New("bid already paid")
	ErrBidTrackTaken         = errors.New("another bid is already accepted for this work")
	ErrWorkAlreadyCompleted  = errors.New("work already completed")
	ErrDepositNotConfigured  = errors.New("job has no deposit configured")
	ErrInvalidSaleWindow     = errors.New("online sale start is after its end")
)

// StateError reports a rejected transition together with the state that
// rejected it. errors.Is matches the wrapped sentinel.
type StateError struct {
	Err     error
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v (current: %s)", e.Err, e.Current)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

func stateErr(err error, current any) error {
	return &StateError{Err: err, Current: fmt.Sprint(current)}
}
