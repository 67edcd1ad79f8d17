package absence

import (
	"strings"
	"time"
)

// Type is the fixed absence-type enumeration. Values travel over the wire
// as-is; Display is for rendering only.
type Type string

const (
	TypeSickLeave        Type = "SICK_LEAVE"
	TypeVacation         Type = "VACATION"
	TypeWorkFromHome     Type = "WORK_FROM_HOME"
	TypeWorkFromOffice   Type = "WORK_FROM_OFFICE"
	TypeUnpaidLeave      Type = "UNPAID_LEAVE"
	TypeMaternityLeave   Type = "MATERNITY_LEAVE"
	TypePaternityLeave   Type = "PATERNITY_LEAVE"
	TypeBereavementLeave Type = "BEREAVEMENT_LEAVE"
	TypeJuryDuty         Type = "JURY_DUTY"
	TypeMilitaryLeave    Type = "MILITARY_LEAVE"
	TypeFamilyLeave      Type = "FAMILY_LEAVE"
	TypeOther            Type = "OTHER"
)

// Types lists every valid absence type, in menu order.
var Types = []Type{
	TypeSickLeave,
	TypeVacation,
	TypeWorkFromHome,
	TypeWorkFromOffice,
	TypeUnpaidLeave,
	TypeMaternityLeave,
	TypePaternityLeave,
	TypeBereavementLeave,
	TypeJuryDuty,
	TypeMilitaryLeave,
	TypeFamilyLeave,
	TypeOther,
}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Display renders the enum value for humans: underscores become spaces.
// The underlying value is never mutated.
func (t Type) Display() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// Record is an absence request: a date range, a type, and an approval state.
// StartDate and EndDate are inclusive calendar dates; a single-day absence
// has StartDate == EndDate. Core fields are immutable after creation; only
// Approved (via a manager approval) may change.
type Record struct {
	ID           string
	OwnerEmail   string
	ManagerEmail *string

	StartDate time.Time
	EndDate   time.Time
	Type      Type
	Approved  bool

	DocumentPath *string
	DocumentName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) HasDocument() bool {
	return r.DocumentPath != nil && *r.DocumentPath != ""
}
