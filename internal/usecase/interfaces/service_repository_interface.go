package interfaces

import (
	"context"

	"shajghor/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for catalog services.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	ListByAddedBy(ctx context.Context, email string) ([]entities.Service, error)
	Replace(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}
