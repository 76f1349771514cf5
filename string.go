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
	"regexp"
)

// StringOpt is a bound check on string fields.
type StringOpt func(name string, val string) error

// RFC-5322-lite address grammar. Patterns are matched case-insensitively
// against the whole value.
const emailPattern = "[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?"

// http/https/ftp/ftps scheme, dotted hostname, localhost or dotted-quad
// IPv4, optional port, optional path/query.
const urlPattern = "(?:http|ftp)s?://" +
	"(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\\.)+(?:[A-Z]{2,6}\\.?|[A-Z0-9-]{2,}\\.?)|" +
	"localhost|" +
	"\\d{1,3}\\.\\d{1,3}\\.\\d{1,3}\\.\\d{1,3})" +
	"(?::\\d+)?" +
	"(?:/?|[/?]\\S+)"

func String(name string, opts ...any) Descriptor {
	f := newField[string](name, func(val any) (any, error) {
		return fmt.Sprint(val), nil
	})
	for _, opt := range opts {
		switch opt := opt.(type) {
		case StringOpt:
			f.checks = append(f.checks, checkFn[string](opt))
		case FieldOpt:
			f.applyGeneric(opt)
		}
	}
	return f
}

func Email(name string, opts ...any) Descriptor {
	return String(name, append(opts, Matches(emailPattern))...)
}

func URL(name string, opts ...any) Descriptor {
	return String(name, append(opts, Matches(urlPattern))...)
}

func MinLength(min int, message ...string) StringOpt {
	return func(name string, val string) error {
		if len(val) < min {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "shorter than min length", min)
		}
		return nil
	}
}

func MaxLength(max int, message ...string) StringOpt {
	return func(name string, val string) error {
		if len(val) > max {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "longer than max length", max)
		}
		return nil
	}
}

// Matches requires a full, case-insensitive match of patt.
func Matches(patt string, message ...string) StringOpt {
	re, err := regexp.Compile("(?i)^(?:" + patt + ")$")
	return func(name string, val string) error {
		if err != nil {
			return NewValidationError("invalid regexp pattern: " + err.Error())
		}
		if !re.MatchString(val) {
			if len(message) > 0 {
				return NewValidationError(message[0])
			}
			return boundaryError(name, val, "not a valid pattern", "")
		}
		return nil
	}
}
