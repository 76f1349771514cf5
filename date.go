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
	"fmt"
	"reflect"
	"time"

	"github.com/araddon/dateparse"
)

// DateOpt is a bound check on date and date-time fields.
type DateOpt func(name string, val time.Time) error

// Parser converts a raw string into a time. Date and DateTime default to
// free-form parsing via dateparse; pass a Parser option (or WithTimeFormat)
// to inject another one per field.
type Parser func(val string) (time.Time, error)

// WithTimeFormat parses with a fixed layout instead of free-form detection.
func WithTimeFormat(layout string) Parser {
	return func(val string) (time.Time, error) {
		return time.Parse(layout, val)
	}
}

// DateTime accepts a point in time, preserving the time-of-day component.
func DateTime(name string, opts ...any) Descriptor {
	return newDateField(name, false, opts...)
}

// Date truncates converted values to midnight of the parsed day.
func Date(name string, opts ...any) Descriptor {
	return newDateField(name, true, opts...)
}

func newDateField(name string, dateOnly bool, opts ...any) *field[time.Time] {
	f := newField[time.Time](name, dateConversion(func(val string) (time.Time, error) {
		return dateparse.ParseAny(val)
	}, dateOnly))
	for _, opt := range opts {
		switch opt := opt.(type) {
		case DateOpt:
			f.checks = append(f.checks, checkFn[time.Time](opt))
		case Parser:
			f.convert = dateConversion(opt, dateOnly)
		case FieldOpt:
			f.applyGeneric(opt)
		}
	}
	return f
}

func dateConversion(parse Parser, dateOnly bool) conversionFn {
	return func(val any) (any, error) {
		vo := reflect.ValueOf(val)
		if vo.Kind() == reflect.Ptr {
			if vo.IsNil() {
				return nil, fmt.Errorf("cannot parse %T as a date", val)
			}
			vo = vo.Elem()
		}
		if vo.Kind() != reflect.String {
			return nil, fmt.Errorf("cannot parse %T as a date", val)
		}
		parsed, err := parse(vo.String())
		if err != nil {
			return nil, err
		}
		if dateOnly {
			parsed = truncateToDate(parsed)
		}
		return parsed, nil
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func MinDate(min time.Time, message ...string) DateOpt {
	return func(name string, val time.Time) error {
		if val.Before(min) {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "smaller than min date", min)
		}
		return nil
	}
}

func MaxDate(max time.Time, message ...string) DateOpt {
	return func(name string, val time.Time) error {
		if val.After(max) {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "greater than max date", max)
		}
		return nil
	}
}
