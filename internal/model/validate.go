package model

// IsValidPatient reports whether a candidate write payload carries every
// required field. A nil candidate is invalid, IsActive must be present
// (true or false both count), and the remaining required fields must be
// exactly non-empty. No format checks are performed: date of birth, email
// and phone are deliberately accepted as opaque non-empty strings.
func IsValidPatient(in *PatientInput) bool {
	if in == nil ||
		in.IsActive == nil ||
		in.FirstName == "" ||
		in.LastName == "" ||
		in.DateOfBirth == "" ||
		in.Email == "" ||
		in.Gender == "" ||
		in.Phone == "" {
		return false
	}
	return true
}
