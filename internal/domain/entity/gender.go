package entity

// Gender is the optional fixed enumeration on an employee record.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the accepted enumeration values.
// The empty string is not valid; absence is modelled by omitting the field.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}

	return false
}
