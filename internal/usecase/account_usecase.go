package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrEmptyProfileUpdate   = errors.New("no valid profile fields to update")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidRole          = errors.New("invalid role")
)

const MessageUserAlreadyExists = "User already exists"

type SignupInput struct {
	Name     string
	Email    string
	PhotoURL string
}

// SignupResult mirrors an insert acknowledgement. A repeated signup is not an
// error: InsertedID is nil and Message explains why.
type SignupResult struct {
	Message    string
	InsertedID *string
	Account    entities.Account
}

// IAccountUseCase is the account directory.
type IAccountUseCase interface {
	Signup(ctx context.Context, in SignupInput) (SignupResult, error)
	GetRole(ctx context.Context, email string) (entities.Role, error)
	GetProfile(ctx context.Context, caller entities.Identity, email string) (entities.Account, error)
	UpdateProfile(ctx context.Context, caller entities.Identity, email string, update entities.ProfileUpdate) (entities.Account, error)
	List(ctx context.Context, caller entities.Identity) ([]entities.Account, error)
	ListDecorators(ctx context.Context, caller entities.Identity) ([]entities.Account, error)
	UpdateStatus(ctx context.Context, caller entities.Identity, email string, status entities.AccountStatus) (entities.Account, error)
	UpdateRole(ctx context.Context, caller entities.Identity, email string, role entities.Role) (entities.Account, error)
}

type AccountUseCase struct {
	repo  interfaces.IAccountRepository
	guard *AuthorizationGuard
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository, guard *AuthorizationGuard) *AccountUseCase {
	return &AccountUseCase{repo: repo, guard: guard}
}

func (u *AccountUseCase) Signup(ctx context.Context, in SignupInput) (SignupResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return SignupResult{}, ErrInvalidEmail
	}

	acc := entities.Account{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Role:      entities.RoleUser,
		Status:    entities.AccountStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	inserted, err := u.repo.Create(ctx, acc)
	if err != nil {
		log.Printf("[account][usecase] signup failed email=%s err=%v", email, err)
		return SignupResult{}, upstream(err)
	}
	if !inserted {
		log.Printf("[account][usecase] signup skipped, already exists email=%s", email)
		return SignupResult{Message: MessageUserAlreadyExists}, nil
	}
	log.Printf("[account][usecase] signup success email=%s id=%s", email, acc.ID)
	return SignupResult{InsertedID: &acc.ID, Account: acc}, nil
}

func (u *AccountUseCase) GetRole(ctx context.Context, email string) (entities.Role, error) {
	acc, err := u.get(ctx, email)
	if err != nil {
		return "", err
	}
	return acc.Role, nil
}

func (u *AccountUseCase) GetProfile(ctx context.Context, caller entities.Identity, email string) (entities.Account, error) {
	if err := u.guard.Self(ctx, caller, email); err != nil {
		return entities.Account{}, err
	}
	return u.get(ctx, email)
}

// UpdateProfile applies only the fields that are non-empty after trimming.
func (u *AccountUseCase) UpdateProfile(ctx context.Context, caller entities.Identity, email string, update entities.ProfileUpdate) (entities.Account, error) {
	if err := u.guard.Self(ctx, caller, email); err != nil {
		return entities.Account{}, err
	}

	update = entities.ProfileUpdate{
		Name:    strings.TrimSpace(update.Name),
		Phone:   strings.TrimSpace(update.Phone),
		Address: strings.TrimSpace(update.Address),
	}
	if update == (entities.ProfileUpdate{}) {
		return entities.Account{}, ErrEmptyProfileUpdate
	}

	acc, err := u.repo.UpdateProfile(ctx, email, update)
	if err != nil {
		log.Printf("[account][usecase] update profile failed email=%s err=%v", email, err)
		return entities.Account{}, upstream(err)
	}
	if acc.Email == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return acc, nil
}

func (u *AccountUseCase) List(ctx context.Context, caller entities.Identity) ([]entities.Account, error) {
	if err := u.guard.Admin(ctx, caller, ""); err != nil {
		return nil, err
	}
	accounts, err := u.repo.List(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	return accounts, nil
}

// ListDecorators returns every account that can be assigned to a booking.
func (u *AccountUseCase) ListDecorators(ctx context.Context, caller entities.Identity) ([]entities.Account, error) {
	if err := u.guard.Admin(ctx, caller, ""); err != nil {
		return nil, err
	}
	accounts, err := u.repo.ListByRole(ctx, entities.RoleDecorator)
	if err != nil {
		return nil, upstream(err)
	}
	return accounts, nil
}

func (u *AccountUseCase) UpdateStatus(ctx context.Context, caller entities.Identity, email string, status entities.AccountStatus) (entities.Account, error) {
	if err := u.guard.Admin(ctx, caller, email); err != nil {
		return entities.Account{}, err
	}
	if !status.Valid() {
		return entities.Account{}, ErrInvalidAccountStatus
	}

	acc, err := u.repo.UpdateStatus(ctx, strings.TrimSpace(email), status)
	if err != nil {
		log.Printf("[account][usecase] update status failed email=%s err=%v", email, err)
		return entities.Account{}, upstream(err)
	}
	if acc.Email == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	log.Printf("[account][usecase] status updated email=%s status=%s by=%s", acc.Email, acc.Status, caller.Email)
	return acc, nil
}

func (u *AccountUseCase) UpdateRole(ctx context.Context, caller entities.Identity, email string, role entities.Role) (entities.Account, error) {
	if err := u.guard.Admin(ctx, caller, email); err != nil {
		return entities.Account{}, err
	}
	if !role.Valid() {
		return entities.Account{}, ErrInvalidRole
	}

	acc, err := u.repo.UpdateRole(ctx, strings.TrimSpace(email), role)
	if err != nil {
		log.Printf("[account][usecase] update role failed email=%s err=%v", email, err)
		return entities.Account{}, upstream(err)
	}
	if acc.Email == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	log.Printf("[account][usecase] role updated email=%s role=%s by=%s", acc.Email, acc.Role, caller.Email)
	return acc, nil
}

func (u *AccountUseCase) get(ctx context.Context, email string) (entities.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Account{}, ErrInvalidEmail
	}
	acc, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Account{}, upstream(err)
	}
	if acc.Email == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return acc, nil
}
