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
)

// Validator is a custom validation rule applied after a field's built-in
// checks pass. Validators run in declaration order and the first failure
// stops the chain.
type Validator func(val any) error

// Descriptor is the form-facing contract of a field. A descriptor is pure
// configuration: Clean never stores the value it produces, so a single
// descriptor is safe to share across concurrent forms.
type Descriptor interface {
	Name() string
	Type() reflect.Type
	Clean(val any) (any, error)
}

type conversionFn func(val any) (any, error)

// FieldOpt configures behaviour shared by every field kind.
type FieldOpt func(c *fieldConfig)

type fieldConfig struct {
	nullable     bool
	force        bool
	defaultValue any
	convert      conversionFn
	validators   []Validator
}

type checkFn[T any] func(name string, val T) error

type field[T any] struct {
	name string
	fieldConfig
	checks []checkFn[T]
}

func newField[T any](name string, convert conversionFn) *field[T] {
	return &field[T]{
		name:        name,
		fieldConfig: fieldConfig{convert: convert},
	}
}

func (f *field[T]) Name() string {
	return f.name
}

func (f *field[T]) Type() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// Clean runs the full pipeline on one raw value: default substitution,
// nullability, conversion, type check, built-in checks, custom validators.
// It is all-or-nothing: on any failure the returned value is nil.
func (f *field[T]) Clean(val any) (any, error) {
	if val == nil {
		val = f.defaultValue
	}
	if val == nil {
		if f.nullable {
			return nil, nil
		}
		return nil, NewValidationError(fmt.Sprintf("%s field is not nullable", f.name))
	}

	typed, ok := val.(T)
	if !ok {
		if !f.force {
			return nil, NewValidationError(fmt.Sprintf("%s value is not a valid type for %s", f.name, f.Type()))
		}
		converted, err := f.convert(val)
		if err != nil {
			return nil, &ConversionError{cause: err}
		}
		if typed, ok = converted.(T); !ok {
			return nil, NewValidationError(fmt.Sprintf("%s value is not a valid type for %s", f.name, f.Type()))
		}
	}

	for _, check := range f.checks {
		if err := check(f.name, typed); err != nil {
			return nil, err
		}
	}
	for _, validate := range f.validators {
		if err := validate(typed); err != nil {
			return nil, err
		}
	}

	return typed, nil
}

func (f *field[T]) applyGeneric(opt FieldOpt) {
	opt(&f.fieldConfig)
}

// Nullable allows an absent value; a nullable field cleans nil to nil.
func Nullable() FieldOpt {
	return func(c *fieldConfig) {
		c.nullable = true
	}
}

// ForceConversion routes values that are not already of the field's type
// through its conversion function before validation.
func ForceConversion() FieldOpt {
	return func(c *fieldConfig) {
		c.force = true
	}
}

// WithDefault substitutes val when the raw value is absent.
func WithDefault(val any) FieldOpt {
	return func(c *fieldConfig) {
		c.defaultValue = val
	}
}

// WithValidators appends custom validators, preserving order across calls.
func WithValidators(fns ...Validator) FieldOpt {
	return func(c *fieldConfig) {
		c.validators = append(c.validators, fns...)
	}
}

// WithConversion replaces the field's conversion function wholesale.
func WithConversion(fn func(val any) (any, error)) FieldOpt {
	return func(c *fieldConfig) {
		c.convert = fn
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
