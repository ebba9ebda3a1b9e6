package entities

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDecorator, RoleAdmin:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusDisabled AccountStatus = "disabled"
)

func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusDisabled
}

// Account is a user, decorator or admin of the marketplace.
//
// Storage model (DynamoDB):
//   - PK: email
//
// Email is the natural key; keying the table by it makes signup uniqueness a
// conditional put instead of a read-then-write.
type Account struct {
	ID             string        `json:"_id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	PhotoURL       string        `json:"photoURL,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Address        string        `json:"address,omitempty"`
	Role           Role          `json:"role"`
	Status         AccountStatus `json:"status"`
	TotalEarnings  float64       `json:"totalEarnings"`
	CurrentBalance float64       `json:"currentBalance"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// ProfileUpdate carries the self-editable account fields. Empty values are
// ignored.
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address string
}
