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

func TestNumberBounds(t *testing.T) {
	assert := assert.New(t)

	age := f.Int("age", f.Min(18), f.Max(60))

	val, err := age.Clean(18)
	assert.NoError(err)
	assert.Equal(18, val)

	val, err = age.Clean(60)
	assert.NoError(err)
	assert.Equal(60, val)

	_, err = age.Clean(17)
	assert.Error(err)
	assert.Equal("Field `age` value 17 is smaller than min value 18", err.Error())

	_, err = age.Clean(61)
	assert.Error(err)
	assert.Equal("Field `age` value 61 is greater than max value 60", err.Error())
}

func TestNumberCustomMessage(t *testing.T) {
	assert := assert.New(t)

	count := f.Int("count", f.Min(5, "Number should be >= 5"))

	_, err := count.Clean(1)
	assert.Error(err)
	assert.Equal("Number should be >= 5", err.Error())
}

func TestNumberConversion(t *testing.T) {
	assert := assert.New(t)

	age := f.Int("age", f.Min(18), f.ForceConversion())

	val, err := age.Clean("18")
	assert.NoError(err)
	assert.Equal(18, val)

	val, err = age.Clean(21.0)
	assert.NoError(err)
	assert.Equal(21, val)

	_, err = age.Clean("abc")
	assert.Error(err)
	assert.True(f.IsConversionError(err))
	assert.False(f.IsValidationError(err))
}

func TestNumberNilPointerConversion(t *testing.T) {
	assert := assert.New(t)

	age := f.Int("age", f.ForceConversion())

	val, err := age.Clean(ptrTo(21))
	assert.NoError(err)
	assert.Equal(21, val)

	_, err = age.Clean((*int)(nil))
	assert.Error(err)
	assert.True(f.IsConversionError(err))
}

func ptrTo[T any](val T) *T {
	return &val
}

func TestNumberTypeMismatchWithoutConversion(t *testing.T) {
	assert := assert.New(t)

	age := f.Int("age")

	_, err := age.Clean("18")
	assert.Error(err)
	assert.False(f.IsConversionError(err))
	assert.Equal("age value is not a valid type for int", err.Error())
}

func TestNumberNullability(t *testing.T) {
	assert := assert.New(t)

	_, err := f.Int("age").Clean(nil)
	assert.Error(err)
	assert.Equal("age field is not nullable", err.Error())

	val, err := f.Int("age", f.Nullable()).Clean(nil)
	assert.NoError(err)
	assert.Nil(val)

	val, err = f.Int("age", f.WithDefault(30)).Clean(nil)
	assert.NoError(err)
	assert.Equal(30, val)
}

func TestNumberCustomValidators(t *testing.T) {
	assert := assert.New(t)

	calls := []string{}
	even := func(val any) error {
		calls = append(calls, "even")
		if val.(int)%2 != 0 {
			return f.NewValidationError("value must be even")
		}
		return nil
	}
	positive := func(val any) error {
		calls = append(calls, "positive")
		if val.(int) <= 0 {
			return f.NewValidationError("value must be positive")
		}
		return nil
	}

	count := f.Int("count", f.WithValidators(even, positive))

	_, err := count.Clean(4)
	assert.NoError(err)
	assert.Equal([]string{"even", "positive"}, calls)

	// first failing validator stops the chain
	calls = calls[:0]
	_, err = count.Clean(3)
	assert.Error(err)
	assert.Equal("value must be even", err.Error())
	assert.Equal([]string{"even"}, calls)
}

func TestFloatField(t *testing.T) {
	assert := assert.New(t)

	ratio := f.Float64("ratio", f.Min(0), f.Max(1), f.ForceConversion())

	val, err := ratio.Clean("0.5")
	assert.NoError(err)
	assert.Equal(0.5, val)

	_, err = ratio.Clean(1.5)
	assert.Error(err)
	assert.Equal("Field `ratio` value 1.5 is greater than max value 1", err.Error())
}
