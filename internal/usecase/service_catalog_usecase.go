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
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound          = errors.New("service not found")
	ErrInvalidServiceID         = errors.New("invalid service id")
	ErrInvalidServiceTitle      = errors.New("invalid service title")
	ErrInvalidServicePrice      = errors.New("invalid service price")
	ErrInvalidServiceCommission = errors.New("invalid decorator commission")
	ErrInvalidServiceStatus     = errors.New("invalid service status")
)

// ServiceInput is a catalog write. Price and DecoratorCommission arrive as
// text (JSON numbers or numeric strings) and are parsed before storage.
type ServiceInput struct {
	Title               string
	Description         string
	Category            string
	Image               string
	Price               string
	DecoratorCommission string
	Status              entities.ServiceStatus
}

type IServiceCatalogUseCase interface {
	Create(ctx context.Context, caller entities.Identity, in ServiceInput) (entities.Service, error)
	List(ctx context.Context, caller entities.Identity) ([]entities.Service, error)
	Get(ctx context.Context, caller entities.Identity, id string) (entities.Service, error)
	ListByProvider(ctx context.Context, caller entities.Identity, email string) ([]entities.Service, error)
	Update(ctx context.Context, caller entities.Identity, id string, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, caller entities.Identity, id string) error
}

type ServiceCatalogUseCase struct {
	repo  interfaces.IServiceRepository
	guard *AuthorizationGuard
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceRepository, guard *AuthorizationGuard) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo, guard: guard}
}

func (u *ServiceCatalogUseCase) Create(ctx context.Context, caller entities.Identity, in ServiceInput) (entities.Service, error) {
	if err := u.guard.ProviderOrAdmin(ctx, caller, ""); err != nil {
		return entities.Service{}, err
	}

	s, err := buildService(in)
	if err != nil {
		return entities.Service{}, err
	}
	s.ID = uuid.NewString()
	s.AddedBy = caller.Email
	s.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[service][usecase] create failed title=%q err=%v", s.Title, err)
		return entities.Service{}, upstream(err)
	}
	log.Printf("[service][usecase] create success id=%s added_by=%s price=%.2f", created.ID, created.AddedBy, created.Price)
	return created, nil
}

// List returns every service to admins and only active ones to everybody
// else, anonymous callers included.
func (u *ServiceCatalogUseCase) List(ctx context.Context, caller entities.Identity) ([]entities.Service, error) {
	isAdmin, err := u.guard.IsAdmin(ctx, caller)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, upstream(err)
	}
	visible := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if s.VisibleTo(isAdmin) {
			visible = append(visible, s)
		}
	}
	return visible, nil
}

func (u *ServiceCatalogUseCase) Get(ctx context.Context, caller entities.Identity, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	isAdmin, err := u.guard.IsAdmin(ctx, caller)
	if err != nil {
		return entities.Service{}, err
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, upstream(err)
	}
	if s.ID == "" || !s.VisibleTo(isAdmin) {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceCatalogUseCase) ListByProvider(ctx context.Context, caller entities.Identity, email string) ([]entities.Service, error) {
	if err := u.guard.Self(ctx, caller, email); err != nil {
		return nil, err
	}
	services, err := u.repo.ListByAddedBy(ctx, email)
	if err != nil {
		return nil, upstream(err)
	}
	return services, nil
}

// Update replaces every mutable field. AddedBy, TotalBookings and CreatedAt
// are kept from the stored service.
func (u *ServiceCatalogUseCase) Update(ctx context.Context, caller entities.Identity, id string, in ServiceInput) (entities.Service, error) {
	if err := u.guard.Admin(ctx, caller, id); err != nil {
		return entities.Service{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	next, err := buildService(in)
	if err != nil {
		return entities.Service{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, upstream(err)
	}
	if current.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	next.ID = current.ID
	next.AddedBy = current.AddedBy
	next.TotalBookings = current.TotalBookings
	next.CreatedAt = current.CreatedAt

	updated, err := u.repo.Replace(ctx, next)
	if err != nil {
		log.Printf("[service][usecase] update failed id=%s err=%v", id, err)
		return entities.Service{}, upstream(err)
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	log.Printf("[service][usecase] update success id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *ServiceCatalogUseCase) Delete(ctx context.Context, caller entities.Identity, id string) error {
	if err := u.guard.Admin(ctx, caller, id); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[service][usecase] delete failed id=%s err=%v", id, err)
		return upstream(err)
	}
	if !deleted {
		return ErrServiceNotFound
	}
	return nil
}

func buildService(in ServiceInput) (entities.Service, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Service{}, ErrInvalidServiceTitle
	}

	price, err := parseAmount(in.Price, false)
	if err != nil || price < 0 {
		return entities.Service{}, ErrInvalidServicePrice
	}
	// Commission is any decimal; a negative one is stored as given.
	commission, err := parseAmount(in.DecoratorCommission, true)
	if err != nil {
		return entities.Service{}, ErrInvalidServiceCommission
	}

	status := in.Status
	if status == "" {
		status = entities.ServiceStatusActive
	}
	if status != entities.ServiceStatusActive && status != entities.ServiceStatusInactive {
		return entities.Service{}, ErrInvalidServiceStatus
	}

	return entities.Service{
		Title:               title,
		Description:         strings.TrimSpace(in.Description),
		Category:            strings.TrimSpace(in.Category),
		Image:               strings.TrimSpace(in.Image),
		Price:               price,
		DecoratorCommission: commission,
		Status:              status,
	}, nil
}

// parseAmount turns "1200", "1200.50" or " 99 " into a number.
func parseAmount(raw string, optional bool) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if optional {
			return 0, nil
		}
		return 0, errors.New("amount required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
