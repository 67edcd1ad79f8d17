// Package policy maps an absence type to its creation-time decisions.
package policy

import "github.com/pulsehr/ess-portal-go/internal/domain/absence"

// Decision is what the type dialog needs to know before submitting:
// whether the record starts approved and whether to offer a document field.
type Decision struct {
	Approved        bool
	DocumentAllowed bool
}

// Decide is a pure function of the type; no network or persistence.
func Decide(t absence.Type) Decision {
	return Decision{
		Approved:        absence.AutoApproved(t),
		DocumentAllowed: absence.DocumentAllowed(t),
	}
}
