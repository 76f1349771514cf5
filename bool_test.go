package formval_test

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
	"testing"

	f "github.com/HuyVQ18411c/formval"
	"github.com/stretchr/testify/assert"
)

func TestBoolField(t *testing.T) {
	assert := assert.New(t)

	agreed := f.Bool("agreed", f.True())

	val, err := agreed.Clean(true)
	assert.NoError(err)
	assert.Equal(true, val)

	_, err = agreed.Clean(false)
	assert.Error(err)
	assert.Equal("Field `agreed` value false is not true", err.Error())

	converted := f.Bool("agreed", f.True(), f.ForceConversion())
	val, err = converted.Clean("true")
	assert.NoError(err)
	assert.Equal(true, val)

	_, err = converted.Clean("maybe")
	assert.Error(err)
	assert.True(f.IsConversionError(err))

	_, err = converted.Clean((*string)(nil))
	assert.Error(err)
	assert.True(f.IsConversionError(err))
}

func TestBoolFalseCheck(t *testing.T) {
	assert := assert.New(t)

	revoked := f.Bool("revoked", f.False("must not be revoked"))

	_, err := revoked.Clean(true)
	assert.Error(err)
	assert.Equal("must not be revoked", err.Error())
}
