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
	"strconv"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// NumberOpt is a bound check on numeric fields. Bounds compare in float64;
// raw carries the field-typed value for message formatting.
type NumberOpt func(name string, val float64, raw any) error

func numberCheck[T number](fn NumberOpt) checkFn[T] {
	return func(name string, val T) error {
		return fn(name, float64(val), val)
	}
}

func newNumberField[T number](name string, opts ...any) *field[T] {
	f := newField[T](name, func(val any) (any, error) {
		return coerceToNumber[T](val)
	})
	for _, opt := range opts {
		switch opt := opt.(type) {
		case NumberOpt:
			f.checks = append(f.checks, numberCheck[T](opt))
		case FieldOpt:
			f.applyGeneric(opt)
		}
	}
	return f
}

func Int(name string, opts ...any) Descriptor {
	return newNumberField[int](name, opts...)
}

func Int32(name string, opts ...any) Descriptor {
	return newNumberField[int32](name, opts...)
}

func Int64(name string, opts ...any) Descriptor {
	return newNumberField[int64](name, opts...)
}

func Uint(name string, opts ...any) Descriptor {
	return newNumberField[uint](name, opts...)
}

func Uint64(name string, opts ...any) Descriptor {
	return newNumberField[uint64](name, opts...)
}

func Float32(name string, opts ...any) Descriptor {
	return newNumberField[float32](name, opts...)
}

func Float64(name string, opts ...any) Descriptor {
	return newNumberField[float64](name, opts...)
}

func Min(min float64, message ...string) NumberOpt {
	return func(name string, val float64, raw any) error {
		if val < min {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, raw, "smaller than min value", min)
		}
		return nil
	}
}

func Max(max float64, message ...string) NumberOpt {
	return func(name string, val float64, raw any) error {
		if val > max {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, raw, "greater than max value", max)
		}
		return nil
	}
}

func coerceToNumber[T number](val any) (any, error) {
	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		if vo.IsNil() {
			var zero T
			return nil, fmt.Errorf("cannot convert %T to %T", val, zero)
		}
		return coerceToNumber[T](vo.Elem().Interface())
	}
	switch {
	case vo.Kind() == reflect.String:
		floatVal, err := strconv.ParseFloat(vo.String(), 64)
		if err != nil {
			return nil, err
		}
		return T(floatVal), nil
	case isNumericKind(vo.Kind()):
		var zero T
		return vo.Convert(reflect.TypeOf(zero)).Interface(), nil
	default:
		var zero T
		return nil, fmt.Errorf("cannot convert %T to %T", val, zero)
	}
}
