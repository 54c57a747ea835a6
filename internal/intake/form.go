package intake

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
)

// Intake form field names, as they appear on the wire.
const (
	FieldAge          = "Age"
	FieldSex          = "Sex"
	FieldWeightKg     = "Weight_kg"
	FieldHeightCm     = "Height_cm"
	FieldBMI          = "BMI"
	FieldCohort       = "Cohort"
	FieldALT          = "ALT"
	FieldCreatinine   = "Creatinine"
	FieldSBP          = "SBP"
	FieldDBP          = "DBP"
	FieldHR           = "HR"
	FieldTempC        = "Temp_C"
	FieldAdverseEvent = "AdverseEvent"
)

var (
	// ErrUnknownField is returned for a field name outside the fixed set.
	ErrUnknownField = errors.New("unknown form field")
	// ErrFieldReadOnly is returned when a caller tries to set BMI directly.
	ErrFieldReadOnly = errors.New("field is derived and cannot be set")
)

// ValidationError reports a raw value that failed numeric coercion. The
// field keeps its previous value.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidNumber(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Please enter a valid number"}
}

// Values are the intake draft fields. Numeric fields are pointers so that
// "unset" stays distinct from zero; Sex and AdverseEvent are plain 0|1
// selects. BMI is derived from weight and height and is never set by the
// caller.
type Values struct {
	Age          *float64 `json:"Age"`
	Sex          int      `json:"Sex"`
	WeightKg     *float64 `json:"Weight_kg"`
	HeightCm     *float64 `json:"Height_cm"`
	BMI          *float64 `json:"BMI"`
	Cohort       *float64 `json:"Cohort"`
	ALT          *float64 `json:"ALT"`
	Creatinine   *float64 `json:"Creatinine"`
	SBP          *float64 `json:"SBP"`
	DBP          *float64 `json:"DBP"`
	HR           *float64 `json:"HR"`
	TempC        *float64 `json:"Temp_C"`
	AdverseEvent int      `json:"AdverseEvent"`
}

// Form is one patient's in-progress intake draft. It exists only in session
// memory and is reset after submission.
type Form struct {
	mu sync.Mutex
	v  Values
}

func NewForm() *Form {
	return &Form{}
}

// SetField coerces rawText into the named field.
//
//   - Sex and AdverseEvent parse as integers with no error path.
//   - BMI is rejected outright; it only changes via derivation.
//   - Every other field clears on empty input, otherwise parses as a float;
//     a failed parse returns a ValidationError and leaves the stored value
//     untouched.
//
// Range hints (e.g. age 0-120) are advisory; nothing here rejects
// out-of-range numbers.
func (f *Form) SetField(name, rawText string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldSex:
		n, _ := strconv.Atoi(rawText)
		f.v.Sex = n
		return nil
	case FieldAdverseEvent:
		n, _ := strconv.Atoi(rawText)
		f.v.AdverseEvent = n
		return nil
	case FieldBMI:
		return ErrFieldReadOnly
	}

	target := f.numericField(name)
	if target == nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	if rawText == "" {
		*target = nil
	} else {
		n, err := strconv.ParseFloat(rawText, 64)
		if err != nil {
			return invalidNumber(name)
		}
		*target = &n
	}

	if name == FieldWeightKg || name == FieldHeightCm {
		f.deriveBMI()
	}
	return nil
}

func (f *Form) numericField(name string) **float64 {
	switch name {
	case FieldAge:
		return &f.v.Age
	case FieldWeightKg:
		return &f.v.WeightKg
	case FieldHeightCm:
		return &f.v.HeightCm
	case FieldCohort:
		return &f.v.Cohort
	case FieldALT:
		return &f.v.ALT
	case FieldCreatinine:
		return &f.v.Creatinine
	case FieldSBP:
		return &f.v.SBP
	case FieldDBP:
		return &f.v.DBP
	case FieldHR:
		return &f.v.HR
	case FieldTempC:
		return &f.v.TempC
	}
	return nil
}

// deriveBMI recomputes BMI after a weight or height change: set when both
// are present and positive, cleared when either is unset.
func (f *Form) deriveBMI() {
	if f.v.WeightKg != nil && f.v.HeightCm != nil && *f.v.WeightKg > 0 && *f.v.HeightCm > 0 {
		bmi := ComputeBMI(*f.v.WeightKg, *f.v.HeightCm)
		f.v.BMI = &bmi
		return
	}
	if f.v.WeightKg == nil || f.v.HeightCm == nil {
		f.v.BMI = nil
	}
}

// ComputeBMI returns weight / (height in metres)^2 rounded to two decimals.
func ComputeBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// Snapshot returns a copy of the current field values.
func (f *Form) Snapshot() Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.v
	copyPtr := func(p **float64) {
		if *p == nil {
			return
		}
		n := **p
		*p = &n
	}
	copyPtr(&out.Age)
	copyPtr(&out.WeightKg)
	copyPtr(&out.HeightCm)
	copyPtr(&out.BMI)
	copyPtr(&out.Cohort)
	copyPtr(&out.ALT)
	copyPtr(&out.Creatinine)
	copyPtr(&out.SBP)
	copyPtr(&out.DBP)
	copyPtr(&out.HR)
	copyPtr(&out.TempC)
	return out
}
