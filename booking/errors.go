package booking

import (
	"errors"
	"strings"
)

var (
	ErrClosed             = errors.New("booking already dispatched")
	ErrWrongStep          = errors.New("action not available on this step")
	ErrNoServiceSelected  = errors.New("no service selected")
	ErrUnknownService     = errors.New("unknown service")
	ErrServiceUnavailable = errors.New("service not available with a child service selected")
	ErrServiceNotSelected = errors.New("service not selected")
	ErrUnknownProduct     = errors.New("unknown product")
	ErrProductUnavailable = errors.New("product not available with a child service selected")
	ErrProductNotSelected = errors.New("product not selected")
	ErrUnknownCut         = errors.New("unknown cut style")
	ErrNoStyleChosen      = errors.New("no cut style chosen")
	ErrStylePickerHidden  = errors.New("style picker not shown for the selected services")
	ErrUnknownOption      = errors.New("unknown sub-option")
	ErrUnknownDay         = errors.New("unknown day option")
	ErrDateNotExpected    = errors.New("a calendar date is only taken for another day")
	ErrInvalidDate        = errors.New("invalid date, expected yyyy-mm-dd")
	ErrUnknownTimeSlot    = errors.New("unknown time slot")
)

// ValidationError reports the contact fields that blocked a confirm.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	var missing []string
	if e.Fields.ClientName {
		missing = append(missing, "client name")
	}
	if e.Fields.ChildName {
		missing = append(missing, "child name")
	}
	return "missing required fields: " + strings.Join(missing, ", ")
}
