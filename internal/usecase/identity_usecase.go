package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"
)

var ErrAccountDisabled = errors.New("account disabled")

// IIdentityUseCase issues and checks identity assertions.
//
// The disabled-account check happens only in IssueToken. A token issued before
// an admin disables the account stays valid until it expires; Authenticate
// does not consult the directory.
type IIdentityUseCase interface {
	IssueToken(ctx context.Context, email string) (string, entities.Identity, error)
	Authenticate(ctx context.Context, token string) (entities.Identity, error)
}

type IdentityUseCase struct {
	accounts interfaces.IAccountRepository
	tokens   interfaces.ITokenService
	now      func() time.Time
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

func NewIdentityUseCase(accounts interfaces.IAccountRepository, tokens interfaces.ITokenService) *IdentityUseCase {
	return &IdentityUseCase{accounts: accounts, tokens: tokens, now: time.Now}
}

func (u *IdentityUseCase) IssueToken(ctx context.Context, email string) (string, entities.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", entities.Identity{}, ErrInvalidEmail
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("[auth][usecase] account lookup failed email=%s err=%v", email, err)
		return "", entities.Identity{}, upstream(err)
	}
	if acc.Status == entities.AccountStatusDisabled {
		log.Printf("[auth][usecase] issuance refused, account disabled email=%s", email)
		return "", entities.Identity{}, ErrAccountDisabled
	}

	token, identity, err := u.tokens.Issue(email, u.now().UTC())
	if err != nil {
		log.Printf("[auth][usecase] signing failed email=%s err=%v", email, err)
		return "", entities.Identity{}, upstream(err)
	}
	return token, identity, nil
}

func (u *IdentityUseCase) Authenticate(_ context.Context, token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, ErrUnauthenticated
	}
	identity, err := u.tokens.Verify(token)
	if err != nil {
		return entities.Identity{}, ErrUnauthenticated
	}
	if identity.Email == "" {
		return entities.Identity{}, ErrUnauthenticated
	}
	return identity, nil
}
