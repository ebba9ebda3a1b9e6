package usecase

import (
	"context"
	"fmt"
	"testing"

	"shajghor/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marketplace struct {
	accounts  *memoryAccounts
	bookings  *memoryBookings
	guard     *AuthorizationGuard
	account   *AccountUseCase
	booking   *BookingUseCase
	analytics *AnalyticsUseCase
}

func newMarketplace(bookings ...entities.Booking) *marketplace {
	accounts := newMemoryAccounts(
		entities.Account{Email: "admin@x.com", Role: entities.RoleAdmin, Status: entities.AccountStatusActive},
		entities.Account{Email: "u@x.com", Role: entities.RoleUser, Status: entities.AccountStatusActive},
		entities.Account{Email: "d@x.com", Role: entities.RoleDecorator, Status: entities.AccountStatusActive},
	)
	repo := newMemoryBookings(bookings...)
	guard := NewAuthorizationGuard(accounts)
	return &marketplace{
		accounts:  accounts,
		bookings:  repo,
		guard:     guard,
		account:   NewAccountUseCase(accounts, guard),
		booking:   NewBookingUseCase(repo, DefaultBookingPolicies(guard), nil),
		analytics: NewAnalyticsUseCase(repo, guard),
	}
}

func strPtr(s string) *string { return &s }

func TestSelfScopedOperationsRejectOtherCallers(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()
	intruder := identity("admin@x.com")
	target := "u@x.com"

	ops := map[string]func() error{
		"list bookings": func() error {
			_, err := m.booking.ListForUser(ctx, intruder, target, entities.BookingQuery{})
			return err
		},
		"list assigned": func() error {
			_, err := m.booking.ListAssigned(ctx, intruder, target)
			return err
		},
		"today schedule": func() error {
			_, err := m.booking.TodaySchedule(ctx, intruder, target)
			return err
		},
		"payment history": func() error {
			_, err := m.booking.PaymentHistory(ctx, intruder, target)
			return err
		},
		"provider earnings": func() error {
			_, err := m.analytics.ProviderEarnings(ctx, intruder, target)
			return err
		},
		"profile": func() error {
			_, err := m.account.GetProfile(ctx, intruder, target)
			return err
		},
		"update profile": func() error {
			_, err := m.account.UpdateProfile(ctx, intruder, target, entities.ProfileUpdate{Name: "x"})
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(), ErrForbiddenSelf)
		})
	}
}

func TestAdminOperationsRejectNonAdmins(t *testing.T) {
	m := newMarketplace(entities.Booking{ID: "bk-1", UserEmail: "u@x.com"})
	ctx := context.Background()

	ops := map[string]func(caller entities.Identity) error{
		"list all bookings": func(c entities.Identity) error {
			_, err := m.booking.ListAll(ctx, c)
			return err
		},
		"assign decorator": func(c entities.Identity) error {
			_, err := m.booking.AssignDecorator(ctx, c, "bk-1", entities.Assignment{DecoratorEmail: "d@x.com"})
			return err
		},
		"list decorators": func(c entities.Identity) error {
			_, err := m.account.ListDecorators(ctx, c)
			return err
		},
		"admin stats": func(c entities.Identity) error {
			_, err := m.analytics.AdminStats(ctx, c)
			return err
		},
		"list accounts": func(c entities.Identity) error {
			_, err := m.account.List(ctx, c)
			return err
		},
		"update role": func(c entities.Identity) error {
			_, err := m.account.UpdateRole(ctx, c, "u@x.com", entities.RoleDecorator)
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, email := range []string{"u@x.com", "d@x.com"} {
				assert.ErrorIs(t, op(identity(email)), ErrForbiddenRole, email)
			}
			assert.NoError(t, op(identity("admin@x.com")))
		})
	}
}

func TestForbiddenAssignLeavesBookingUntouched(t *testing.T) {
	m := newMarketplace(entities.Booking{ID: "bk-1", UserEmail: "u@x.com", Status: entities.BookingStatusUnassigned})

	_, err := m.booking.AssignDecorator(context.Background(), identity("d@x.com"), "bk-1", entities.Assignment{DecoratorEmail: "d@x.com"})
	require.ErrorIs(t, err, ErrForbidden)

	b, _ := m.bookings.GetByID(context.Background(), "bk-1")
	assert.Nil(t, b.DecoratorEmail)
	assert.Equal(t, entities.BookingStatusUnassigned, b.Status)
}

func TestMarkPaidTwiceStaysPaid(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()

	id, err := m.booking.Create(ctx, entities.Identity{}, BookingInput{UserEmail: "a@x.com", Price: "50"})
	require.NoError(t, err)

	first, err := m.booking.MarkPaid(ctx, entities.Identity{}, id)
	require.NoError(t, err)
	second, err := m.booking.MarkPaid(ctx, entities.Identity{}, id)
	require.NoError(t, err)

	assert.Equal(t, entities.PaymentStatusPaid, first.PaymentStatus)
	assert.Equal(t, entities.PaymentStatusPaid, second.PaymentStatus)
}

func TestListForUserTotalCountIgnoresPagination(t *testing.T) {
	for n := 0; n <= 9; n++ {
		var seed []entities.Booking
		for i := 0; i < n; i++ {
			seed = append(seed, entities.Booking{ID: fmt.Sprintf("u-%d", i), UserEmail: "u@x.com"})
		}
		seed = append(seed, entities.Booking{ID: "other", UserEmail: "other@x.com"})
		m := newMarketplace(seed...)

		for size := 1; size <= 5; size++ {
			for page := 1; page <= 4; page++ {
				res, err := m.booking.ListForUser(context.Background(), identity("u@x.com"), "u@x.com", entities.BookingQuery{Page: page, Size: size})
				require.NoError(t, err)
				assert.Equal(t, n, res.TotalCount, "n=%d size=%d page=%d", n, size, page)
				assert.LessOrEqual(t, len(res.Result), size)
			}
		}
	}
}

func TestSignupScenario(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()

	first, err := m.account.Signup(ctx, SignupInput{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotNil(t, first.InsertedID)
	assert.Equal(t, entities.RoleUser, first.Account.Role)

	second, err := m.account.Signup(ctx, SignupInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Nil(t, second.InsertedID)
	assert.Equal(t, "User already exists", second.Message)

	all, _ := m.accounts.List(ctx)
	count := 0
	for _, a := range all {
		if a.Email == "a@x.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPaymentHistoryScenario(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()

	id, err := m.booking.Create(ctx, entities.Identity{}, BookingInput{UserEmail: "a@x.com", Price: "50"})
	require.NoError(t, err)
	_, err = m.booking.Create(ctx, entities.Identity{}, BookingInput{UserEmail: "a@x.com", Price: "70"})
	require.NoError(t, err)

	_, err = m.booking.MarkPaid(ctx, entities.Identity{}, id)
	require.NoError(t, err)

	history, err := m.booking.PaymentHistory(ctx, identity("a@x.com"), "a@x.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, id, history[0].ID)
	assert.Equal(t, entities.PaymentStatusPaid, history[0].PaymentStatus)
	assert.Equal(t, 50.0, history[0].Price.Float())
}

func TestProviderEarningsScenario(t *testing.T) {
	m := newMarketplace(
		entities.Booking{ID: "bk-1", DecoratorEmail: strPtr("d@x.com"), DecoratorStatus: strPtr("Completed"), PaymentStatus: entities.PaymentStatusPaid, Price: "100"},
		entities.Booking{ID: "bk-2", DecoratorEmail: strPtr("d@x.com"), DecoratorStatus: strPtr("in-progress"), PaymentStatus: entities.PaymentStatusPaid, Price: "300"},
	)

	res, err := m.analytics.ProviderEarnings(context.Background(), identity("d@x.com"), "d@x.com")
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.TotalEarnings)
	assert.Equal(t, 1, res.TaskCount)
}

func TestFullLifecycle(t *testing.T) {
	m := newMarketplace()
	ctx := context.Background()
	admin := identity("admin@x.com")
	decorator := identity("d@x.com")

	id, err := m.booking.Create(ctx, entities.Identity{}, BookingInput{
		UserEmail:    "u@x.com",
		ServiceTitle: "Wedding Stage",
		Date:         "2026-10-19",
		Price:        "250",
	})
	require.NoError(t, err)

	created, _ := m.bookings.GetByID(ctx, id)
	assert.Equal(t, entities.PaymentStatusUnpaid, created.PaymentStatus)
	assert.Equal(t, entities.BookingStatusUnassigned, created.Status)
	assert.Nil(t, created.DecoratorEmail)

	_, err = m.booking.AssignDecorator(ctx, admin, id, entities.Assignment{DecoratorEmail: "d@x.com"})
	require.NoError(t, err)

	assigned, err := m.booking.ListAssigned(ctx, decorator, "d@x.com")
	require.NoError(t, err)
	require.Len(t, assigned, 1)

	_, err = m.booking.UpdateDecoratorStatus(ctx, decorator, id, entities.DecoratorStatusCompleted)
	require.NoError(t, err)
	_, err = m.booking.MarkPaid(ctx, entities.Identity{}, id)
	require.NoError(t, err)

	earnings, err := m.analytics.ProviderEarnings(ctx, decorator, "d@x.com")
	require.NoError(t, err)
	assert.Equal(t, 250.0, earnings.TotalEarnings)

	stats, err := m.analytics.AdminStats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 250.0, stats.TotalRevenue)
	assert.Equal(t, []entities.ServiceDemand{{Name: "Wedding Stage", Count: 1}}, stats.ChartData)

	require.NoError(t, m.booking.Cancel(ctx, entities.Identity{}, id))
	assert.ErrorIs(t, m.booking.Cancel(ctx, entities.Identity{}, id), ErrBookingNotFound)
}
