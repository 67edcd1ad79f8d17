package absence

// AutoApproved reports whether records of type t are approved at creation
// with no manager action. Only work-from-home and work-from-office qualify;
// every other type starts pending.
func AutoApproved(t Type) bool {
	return t == TypeWorkFromHome || t == TypeWorkFromOffice
}

// DocumentAllowed reports whether type t accepts an evidentiary document.
// Sick leave is the only type that does.
func DocumentAllowed(t Type) bool {
	return t == TypeSickLeave
}
