package entities

import "time"

// Identity is a verified assertion of who is calling.
//
// Account status is checked only when the assertion is issued. A disabled
// account keeps a valid identity until ExpiresAt.
type Identity struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Anonymous reports whether no assertion was presented.
func (i Identity) Anonymous() bool {
	return i.Email == ""
}
