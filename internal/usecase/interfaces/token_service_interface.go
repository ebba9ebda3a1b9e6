package interfaces

import (
	"time"

	"shajghor/internal/domain/entities"
)

// ITokenService signs and verifies identity assertions.
type ITokenService interface {
	Issue(email string, now time.Time) (token string, identity entities.Identity, err error)
	Verify(token string) (entities.Identity, error)
}
