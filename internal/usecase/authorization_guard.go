package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrForbiddenSelf   = fmt.Errorf("%w: caller does not match resource owner", ErrForbidden)
	ErrForbiddenRole   = fmt.Errorf("%w: caller role not permitted", ErrForbidden)

	// ErrUpstream marks storage or gateway failures. Handlers answer it with a
	// fixed message; the cause is only logged.
	ErrUpstream = errors.New("upstream failure")
)

func upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

// Policy decides whether caller may perform an operation on target. target is
// whatever the operation is keyed by: an email for self-scoped reads, a
// booking id for booking mutations. A nil return means allowed.
type Policy func(ctx context.Context, caller entities.Identity, target string) error

// AuthorizationGuard builds policies from the caller's identity and the
// account directory. It never mutates anything.
type AuthorizationGuard struct {
	accounts interfaces.IAccountRepository
}

func NewAuthorizationGuard(accounts interfaces.IAccountRepository) *AuthorizationGuard {
	return &AuthorizationGuard{accounts: accounts}
}

func (g *AuthorizationGuard) Public(context.Context, entities.Identity, string) error {
	return nil
}

func (g *AuthorizationGuard) Authenticated(_ context.Context, caller entities.Identity, _ string) error {
	if caller.Anonymous() {
		return ErrUnauthenticated
	}
	return nil
}

// Self allows the caller only when the asserted email equals target exactly.
// Role does not matter: an admin reading someone else's bookings is refused.
func (g *AuthorizationGuard) Self(_ context.Context, caller entities.Identity, target string) error {
	if caller.Anonymous() {
		return ErrUnauthenticated
	}
	if caller.Email != target {
		log.Printf("[auth][guard] self mismatch caller=%s target=%s", caller.Email, target)
		return ErrForbiddenSelf
	}
	return nil
}

func (g *AuthorizationGuard) Admin(ctx context.Context, caller entities.Identity, _ string) error {
	role, err := g.role(ctx, caller)
	if err != nil {
		return err
	}
	if role != string(entities.RoleAdmin) {
		log.Printf("[auth][guard] admin required caller=%s role=%q", caller.Email, role)
		return ErrForbiddenRole
	}
	return nil
}

// ProviderOrAdmin compares the role case-insensitively, unlike Admin.
func (g *AuthorizationGuard) ProviderOrAdmin(ctx context.Context, caller entities.Identity, _ string) error {
	role, err := g.role(ctx, caller)
	if err != nil {
		return err
	}
	switch strings.ToLower(role) {
	case string(entities.RoleDecorator), string(entities.RoleAdmin):
		return nil
	}
	log.Printf("[auth][guard] decorator or admin required caller=%s role=%q", caller.Email, role)
	return ErrForbiddenRole
}

// IsAdmin reports whether caller is an admin. Anonymous callers are not.
func (g *AuthorizationGuard) IsAdmin(ctx context.Context, caller entities.Identity) (bool, error) {
	if caller.Anonymous() {
		return false, nil
	}
	err := g.Admin(ctx, caller, "")
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrForbidden):
		return false, nil
	default:
		return false, err
	}
}

// BookingOwner allows the booking's client or an admin. It is not part of the
// default policies; it exists so ownership can be required on cancel or mark
// paid by swapping one table entry.
func (g *AuthorizationGuard) BookingOwner(bookings interfaces.IBookingRepository) Policy {
	return func(ctx context.Context, caller entities.Identity, bookingID string) error {
		if caller.Anonymous() {
			return ErrUnauthenticated
		}
		b, err := bookings.GetByID(ctx, bookingID)
		if err != nil {
			return upstream(err)
		}
		if b.ID == "" {
			return ErrBookingNotFound
		}
		if b.UserEmail == caller.Email {
			return nil
		}
		return g.Admin(ctx, caller, bookingID)
	}
}

func (g *AuthorizationGuard) role(ctx context.Context, caller entities.Identity) (string, error) {
	if caller.Anonymous() {
		return "", ErrUnauthenticated
	}
	if g.accounts == nil {
		return "", upstream(errors.New("account repository not configured"))
	}
	acc, err := g.accounts.GetByEmail(ctx, caller.Email)
	if err != nil {
		log.Printf("[auth][guard] role lookup failed caller=%s err=%v", caller.Email, err)
		return "", upstream(err)
	}
	return string(acc.Role), nil
}

// BookingPolicies holds the policy applied by each booking operation.
type BookingPolicies struct {
	Create                Policy
	Get                   Policy
	ListForUser           Policy
	ListAll               Policy
	Cancel                Policy
	Assign                Policy
	ListAssigned          Policy
	UpdateDecoratorStatus Policy
	TodaySchedule         Policy
	MarkPaid              Policy
	PaymentHistory        Policy
}

// DefaultBookingPolicies reproduces the marketplace's current access rules.
// Cancel and MarkPaid are open to anyone holding the booking id, and
// UpdateDecoratorStatus only needs a valid identity.
func DefaultBookingPolicies(g *AuthorizationGuard) BookingPolicies {
	return BookingPolicies{
		Create:                g.Public,
		Get:                   g.Authenticated,
		ListForUser:           g.Self,
		ListAll:               g.Admin,
		Cancel:                g.Public,
		Assign:                g.Admin,
		ListAssigned:          g.Self,
		UpdateDecoratorStatus: g.Authenticated,
		TodaySchedule:         g.Self,
		MarkPaid:              g.Public,
		PaymentHistory:        g.Self,
	}
}
