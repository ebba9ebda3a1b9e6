package interfaces

import (
	"context"

	"shajghor/internal/domain/entities"
)

// IAccountRepository abstracts DynamoDB persistence for Account.
//
// Lookups and updates return a zero Account (empty Email) when the account
// does not exist.
type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (inserted bool, err error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	List(ctx context.Context) ([]entities.Account, error)
	ListByRole(ctx context.Context, role entities.Role) ([]entities.Account, error)
	UpdateProfile(ctx context.Context, email string, update entities.ProfileUpdate) (entities.Account, error)
	UpdateStatus(ctx context.Context, email string, status entities.AccountStatus) (entities.Account, error)
	UpdateRole(ctx context.Context, email string, role entities.Role) (entities.Account, error)
}
