package value

import "github.com/pkg/errors"

var (
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrNullReference         = errors.New("null pointer")
	ErrUnsupportedParse      = errors.New("string parsing unimplemented")
	ErrMissingField          = errors.New("no such field")
)

func conversionError(t Type, target string) error {
	return errors.Wrapf(ErrUnsupportedConversion, "cannot convert type '%s' to %s", t, target)
}

func nullFieldError(t Type, field string) error {
	return errors.Wrapf(ErrNullReference, "cannot access field '%s.%s'", t, field)
}

func missingFieldError(t Type, field string) error {
	return errors.Wrapf(ErrMissingField, "type '%s' has no field '%s'", t, field)
}
