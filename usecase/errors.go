package usecase

import "errors"

var (
	ErrTokenNotFound = errors.New("share token not found")
	ErrSelfShare     = errors.New("cannot share a note with yourself")
	ErrNoteNotSynced = errors.New("note has not been synced")
	ErrNotOwner      = errors.New("you do not own this note")
	ErrNoteNotFound  = errors.New("note not found")
)

// StoreError marks a failure that came from the backing store. Its message
// is the store's own, passed through to the client unchanged.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func wrapStore(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
