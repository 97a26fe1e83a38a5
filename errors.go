package liketype

import apperrors "github.com/kleinwareio/liketype/errors"

var (
	// ErrMissingValue matches construction failures caused by an absent value.
	ErrMissingValue = apperrors.New(apperrors.ErrCodeMissingValue, "missing value")
	// ErrIndexOutOfRange matches sequence accesses outside [0, Count).
	ErrIndexOutOfRange = apperrors.New(apperrors.ErrCodeOutOfRange, "index out of range")
)

func missingValue(typeName string) error {
	return apperrors.MissingValue(typeName)
}
