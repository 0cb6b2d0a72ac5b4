package usecase

import "errors"

// InvalidInputError rejects a submission at the boundary. It carries the
// full list of failing fields and is the only error surfaced to callers
// with detail.
type InvalidInputError struct {
	Fields []ValidationError
}

func (e *InvalidInputError) Error() string {
	return "invalid submission"
}

func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var ie *InvalidInputError
	ok := errors.As(err, &ie)
	return ie, ok
}

// StorageError wraps a persistence failure. Callers see a generic message;
// the wrapped error is for server-side logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
