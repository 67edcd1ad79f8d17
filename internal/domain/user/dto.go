package user

// Subordinate is one direct report in a manager's roster. The pending flag
// is derived at roster fetch time and goes stale until the roster is
// fetched again; views must not assume it tracks later approvals.
type Subordinate struct {
	Email                string `json:"email"`
	HasUnapprovedAbsence bool   `json:"hasUnapprovedAbsence"`
}
