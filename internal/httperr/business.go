package httperr

import "errors"

// BusinessError carries a stable code that handlers turn into a 4xx.
// Repositories return it for failures the caller caused, such as a
// reference to a record that does not exist.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err, or anything it wraps, is a BusinessError
// with the given code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
