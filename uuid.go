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

	"github.com/google/uuid"
)

// UUIDOpt is a check on UUID fields.
type UUIDOpt func(name string, val uuid.UUID) error

func UUID(name string, opts ...any) Descriptor {
	f := newField[uuid.UUID](name, coerceToUUID)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case UUIDOpt:
			f.checks = append(f.checks, checkFn[uuid.UUID](opt))
		case FieldOpt:
			f.applyGeneric(opt)
		}
	}
	return f
}

func coerceToUUID(val any) (any, error) {
	vo := reflect.ValueOf(val)
	if vo.Kind() == reflect.Ptr {
		if vo.IsNil() {
			return nil, fmt.Errorf("cannot convert %T to a UUID", val)
		}
		vo = vo.Elem()
	}
	if vo.Kind() != reflect.String {
		return nil, fmt.Errorf("cannot convert %T to a UUID", val)
	}
	return uuid.Parse(vo.String())
}

func NonNil(message ...string) UUIDOpt {
	return func(name string, val uuid.UUID) error {
		if val == uuid.Nil {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "a nil UUID", "")
		}
		return nil
	}
}
