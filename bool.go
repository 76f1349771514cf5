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
)

// BoolOpt is a check on boolean fields.
type BoolOpt func(name string, val bool) error

func Bool(name string, opts ...any) Descriptor {
	f := newField[bool](name, coerceToBool)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case BoolOpt:
			f.checks = append(f.checks, checkFn[bool](opt))
		case FieldOpt:
			f.applyGeneric(opt)
		}
	}
	return f
}

func coerceToBool(val any) (any, error) {
	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		if vo.IsNil() {
			return nil, fmt.Errorf("cannot convert %T to bool", val)
		}
		vo = vo.Elem()
	}
	if vo.Kind() != reflect.String {
		return nil, fmt.Errorf("cannot convert %T to bool", val)
	}
	return strconv.ParseBool(vo.String())
}

func True(message ...string) BoolOpt {
	return func(name string, val bool) error {
		if !val {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "not true", "")
		}
		return nil
	}
}

func False(message ...string) BoolOpt {
	return func(name string, val bool) error {
		if val {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "not false", "")
		}
		return nil
	}
}
