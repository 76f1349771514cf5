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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CleanFieldFunc transforms one field's converted value after its
// validation passes; the returned value is re-validated before it is
// stored.
type CleanFieldFunc func(val any) (any, error)

// CleanFormFunc runs after the field loop when every field cleaned
// successfully. It reads cross-field state through Form.Cleaned.
type CleanFormFunc func(f *Form) error

// Schema is one form kind: a named, ordered set of field descriptors plus
// its cleaning hooks. Declaration is a one-time cost per kind; forms share
// the schema without copying it.
type Schema struct {
	name        string
	fields      []Descriptor
	index       map[string]int
	cleaners    map[string]CleanFieldFunc
	formCleaner CleanFormFunc
}

func New(name string, fields ...Descriptor) *Schema {
	s := &Schema{
		name:     name,
		index:    make(map[string]int),
		cleaners: make(map[string]CleanFieldFunc),
	}
	for _, fd := range fields {
		s.add(fd)
	}
	return s
}

// Extend derives a new kind. The base declaration is overlaid most-base
// first: a same-named field keeps the base field's position but takes the
// derived configuration. Cleaners are inherited and overridable the same
// way. The merged declaration is computed here, once per kind.
func (s *Schema) Extend(name string, fields ...Descriptor) *Schema {
	child := &Schema{
		name:        name,
		fields:      slices.Clone(s.fields),
		index:       maps.Clone(s.index),
		cleaners:    maps.Clone(s.cleaners),
		formCleaner: s.formCleaner,
	}
	for _, fd := range fields {
		child.add(fd)
	}
	return child
}

func (s *Schema) add(fd Descriptor) {
	if i, ok := s.index[fd.Name()]; ok {
		s.fields[i] = fd
		return
	}
	s.index[fd.Name()] = len(s.fields)
	s.fields = append(s.fields, fd)
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns the merged declaration in declaration order.
func (s *Schema) Fields() []Descriptor {
	return slices.Clone(s.fields)
}

func (s *Schema) Field(name string) (Descriptor, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

func (s *Schema) CleanField(name string, fn CleanFieldFunc) *Schema {
	s.cleaners[name] = fn
	return s
}

func (s *Schema) CleanForm(fn CleanFormFunc) *Schema {
	s.formCleaner = fn
	return s
}

// Form is one validation session over one raw record. Discard it after
// use; results are memoized on first validation and never recomputed.
type Form struct {
	schema  *Schema
	data    map[string]any
	raise   bool
	cleaned map[string]any
	errs    map[string][]error
	done    bool
}

type FormOpt func(f *Form)

// RaiseOnError makes every failure propagate immediately from FullClean
// instead of being collected, aborting the clean at the first one.
func RaiseOnError() FormOpt {
	return func(f *Form) {
		f.raise = true
	}
}

func (s *Schema) Form(data map[string]any, opts ...FormOpt) *Form {
	f := &Form{
		schema:  s,
		data:    data,
		cleaned: make(map[string]any),
		errs:    make(map[string][]error),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Name() string {
	return f.schema.name
}

// FullClean validates the whole record. An empty record is a caller bug
// and returns a UsageError regardless of the error mode. A field's failure
// never blocks later fields; the whole-form cleaner runs only when no
// field failed. A completed clean is terminal, repeat calls are no-ops.
func (f *Form) FullClean() error {
	if f.done {
		return nil
	}
	if len(f.data) == 0 {
		return &UsageError{form: f.schema.name}
	}

	for _, fd := range f.schema.fields {
		name := fd.Name()
		val, err := f.cleanField(fd)
		if err != nil {
			if f.raise {
				return err
			}
			f.errs[name] = append(f.errs[name], err)
			continue
		}
		f.cleaned[name] = val
	}

	if f.schema.formCleaner != nil && len(f.errs) == 0 {
		if err := f.schema.formCleaner(f); err != nil {
			if f.raise {
				return err
			}
			f.errs[f.schema.name] = append(f.errs[f.schema.name], err)
		}
	}

	f.done = true
	return nil
}

func (f *Form) cleanField(fd Descriptor) (any, error) {
	name := fd.Name()
	raw, ok := f.data[name]
	if !ok {
		return nil, &MissingKeyError{field: name}
	}

	val, err := fd.Clean(raw)
	if err != nil {
		return nil, err
	}

	if cleaner, ok := f.schema.cleaners[name]; ok {
		cleaned, err := cleaner(val)
		if err != nil {
			return nil, err
		}
		val, err = fd.Clean(cleaned)
		if err != nil {
			return nil, err
		}
	}

	return val, nil
}

// IsValid triggers FullClean on first call and memoizes. The error return
// carries the usage error, or the aborting failure under RaiseOnError.
func (f *Form) IsValid() (bool, error) {
	if !f.done {
		if err := f.FullClean(); err != nil {
			return false, err
		}
	}
	return len(f.errs) == 0, nil
}

// CleanedData returns a copy of the validated values, keyed by field name.
// A nullable field cleaned from nil is present with a nil value.
func (f *Form) CleanedData() map[string]any {
	return maps.Clone(f.cleaned)
}

// Errors returns a copy of the aggregated failures. Keys exist only for
// fields (or the schema name, for whole-form failures) that failed.
func (f *Form) Errors() map[string][]error {
	return maps.Clone(f.errs)
}

func (f *Form) Cleaned(name string) any {
	return f.cleaned[name]
}

func (f *Form) FieldErrors(name string) []error {
	return slices.Clone(f.errs[name])
}
