package formval

// formval is a declarative field and form validation library for Go.
// Copyright (C) 2024 Huy Vu

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is the failure raised by built-in bound checks and, by
// convention, by custom validators and cleaning hooks.
type ValidationError struct {
	message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

func (e *ValidationError) Error() string {
	return e.message
}

// boundaryError renders the shared message template. The boundary slot is
// left empty for checks without one (patterns); trailing whitespace is
// trimmed in that case.
func boundaryError(name string, value any, reason string, boundary any) *ValidationError {
	return &ValidationError{
		message: strings.TrimSpace(fmt.Sprintf("Field `%s` value %v is %s %v", name, value, reason, boundary)),
	}
}

// ConversionError wraps a failure of a field's conversion function. The
// message is the underlying cause's, verbatim.
type ConversionError struct {
	cause error
}

func (e *ConversionError) Error() string {
	return e.cause.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.cause
}

// UsageError reports a caller bug rather than bad input data. It always
// propagates and is never aggregated into a form's errors.
type UsageError struct {
	form string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("No data was provided for %s", e.form)
}

// MissingKeyError reports a declared field with no entry in the raw record.
// Forms aggregate it exactly like a validation error.
type MissingKeyError struct {
	field string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no value provided for field `%s`", e.field)
}

func (e *MissingKeyError) Field() string {
	return e.field
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}

func AsConversionError(err error) (*ConversionError, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
