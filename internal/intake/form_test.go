package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBMI(t *testing.T) {
	t.Run("reference values", func(t *testing.T) {
		assert.Equal(t, 22.86, ComputeBMI(70, 175))
		assert.Equal(t, 24.22, ComputeBMI(62, 160))
		assert.Equal(t, 26.23, ComputeBMI(85, 180))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		// 70 / 1.73^2 = 23.388...
		assert.Equal(t, 23.39, ComputeBMI(70, 173))
	})
}

func TestForm_SetField_Numeric(t *testing.T) {
	t.Run("valid number is stored", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldAge, "42"))

		v := f.Snapshot()
		require.NotNil(t, v.Age)
		assert.Equal(t, 42.0, *v.Age)
	})

	t.Run("invalid number returns ValidationError and keeps prior value", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldAge, "42"))

		err := f.SetField(FieldAge, "abc")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, FieldAge, vErr.Field)
		assert.Equal(t, "Please enter a valid number", vErr.Message)

		v := f.Snapshot()
		require.NotNil(t, v.Age)
		assert.Equal(t, 42.0, *v.Age)
	})

	t.Run("empty input clears the field", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldCohort, "2"))
		require.NoError(t, f.SetField(FieldCohort, ""))

		assert.Nil(t, f.Snapshot().Cohort)
	})

	t.Run("no range check on out-of-range values", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldAge, "-5"))
		require.NoError(t, f.SetField(FieldTempC, "500"))
	})

	t.Run("unknown field", func(t *testing.T) {
		f := NewForm()
		err := f.SetField("Glucose", "5.5")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestForm_SetField_Selects(t *testing.T) {
	t.Run("sex and adverse event parse as integers", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldSex, "1"))
		require.NoError(t, f.SetField(FieldAdverseEvent, "1"))

		v := f.Snapshot()
		assert.Equal(t, 1, v.Sex)
		assert.Equal(t, 1, v.AdverseEvent)
	})

	t.Run("no error path even for garbage", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldSex, "not-a-number"))
		assert.Equal(t, 0, f.Snapshot().Sex)
	})
}

func TestForm_BMIDerivation(t *testing.T) {
	t.Run("set when both weight and height are present", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldWeightKg, "70"))
		assert.Nil(t, f.Snapshot().BMI)

		require.NoError(t, f.SetField(FieldHeightCm, "175"))
		v := f.Snapshot()
		require.NotNil(t, v.BMI)
		assert.Equal(t, 22.86, *v.BMI)
	})

	t.Run("recomputed on weight change", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldWeightKg, "70"))
		require.NoError(t, f.SetField(FieldHeightCm, "175"))
		require.NoError(t, f.SetField(FieldWeightKg, "80"))

		v := f.Snapshot()
		require.NotNil(t, v.BMI)
		assert.Equal(t, 26.12, *v.BMI)
	})

	t.Run("cleared when either input is cleared", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldWeightKg, "70"))
		require.NoError(t, f.SetField(FieldHeightCm, "175"))
		require.NotNil(t, f.Snapshot().BMI)

		require.NoError(t, f.SetField(FieldWeightKg, ""))
		assert.Nil(t, f.Snapshot().BMI)

		require.NoError(t, f.SetField(FieldWeightKg, "70"))
		require.NotNil(t, f.Snapshot().BMI)

		require.NoError(t, f.SetField(FieldHeightCm, ""))
		assert.Nil(t, f.Snapshot().BMI)
	})

	t.Run("not user settable", func(t *testing.T) {
		f := NewForm()
		assert.ErrorIs(t, f.SetField(FieldBMI, "25"), ErrFieldReadOnly)
	})

	t.Run("failed parse of height leaves BMI alone", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldWeightKg, "70"))
		require.NoError(t, f.SetField(FieldHeightCm, "175"))

		err := f.SetField(FieldHeightCm, "tall")
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))

		v := f.Snapshot()
		require.NotNil(t, v.BMI)
		assert.Equal(t, 22.86, *v.BMI)
	})
}

func TestForm_Snapshot(t *testing.T) {
	t.Run("copies are independent", func(t *testing.T) {
		f := NewForm()
		require.NoError(t, f.SetField(FieldAge, "30"))

		v := f.Snapshot()
		*v.Age = 99

		fresh := f.Snapshot()
		require.NotNil(t, fresh.Age)
		assert.Equal(t, 30.0, *fresh.Age)
	})
}
