package usecase

import (
	"context"
	"log"
	"sort"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"
)

// IAnalyticsUseCase derives earnings and demand from stored bookings. Nothing
// is cached; every call rescans.
type IAnalyticsUseCase interface {
	ProviderEarnings(ctx context.Context, caller entities.Identity, email string) (entities.ProviderEarnings, error)
	AdminStats(ctx context.Context, caller entities.Identity) (entities.AdminStats, error)
}

type AnalyticsUseCase struct {
	bookings interfaces.IBookingRepository
	guard    *AuthorizationGuard
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(bookings interfaces.IBookingRepository, guard *AuthorizationGuard) *AnalyticsUseCase {
	return &AnalyticsUseCase{bookings: bookings, guard: guard}
}

func (u *AnalyticsUseCase) ProviderEarnings(ctx context.Context, caller entities.Identity, email string) (entities.ProviderEarnings, error) {
	if err := u.guard.Self(ctx, caller, email); err != nil {
		return entities.ProviderEarnings{}, err
	}
	assigned, err := u.bookings.ListByDecoratorEmail(ctx, email)
	if err != nil {
		log.Printf("[analytics][usecase] earnings failed email=%s err=%v", email, err)
		return entities.ProviderEarnings{}, upstream(err)
	}
	return SummarizeEarnings(email, assigned), nil
}

func (u *AnalyticsUseCase) AdminStats(ctx context.Context, caller entities.Identity) (entities.AdminStats, error) {
	if err := u.guard.Admin(ctx, caller, ""); err != nil {
		return entities.AdminStats{}, err
	}
	all, err := u.bookings.List(ctx)
	if err != nil {
		log.Printf("[analytics][usecase] admin stats failed err=%v", err)
		return entities.AdminStats{}, upstream(err)
	}
	return SummarizeRevenue(all), nil
}

// SummarizeEarnings totals the bookings that email completed and that were
// paid. A missing or non-numeric price counts as 0.
func SummarizeEarnings(email string, bookings []entities.Booking) entities.ProviderEarnings {
	out := entities.ProviderEarnings{History: []entities.Booking{}}
	for _, b := range bookings {
		if !b.AssignedTo(email) ||
			!b.HasDecoratorStatus(entities.DecoratorStatusCompleted) ||
			b.PaymentStatus != entities.PaymentStatusPaid {
			continue
		}
		out.TotalEarnings += b.Price.Float()
		out.History = append(out.History, b)
	}
	out.TaskCount = len(out.History)
	return out
}

// SummarizeRevenue totals paid bookings and counts them per service title,
// most booked first. Titles with equal counts keep the order in which they
// were first seen.
func SummarizeRevenue(bookings []entities.Booking) entities.AdminStats {
	out := entities.AdminStats{ChartData: []entities.ServiceDemand{}}
	index := map[string]int{}
	for _, b := range bookings {
		if b.PaymentStatus != entities.PaymentStatusPaid {
			continue
		}
		out.TotalBookings++
		out.TotalRevenue += b.Price.Float()

		title := b.Title()
		i, ok := index[title]
		if !ok {
			i = len(out.ChartData)
			index[title] = i
			out.ChartData = append(out.ChartData, entities.ServiceDemand{Name: title})
		}
		out.ChartData[i].Count++
	}
	sort.SliceStable(out.ChartData, func(i, j int) bool {
		return out.ChartData[i].Count > out.ChartData[j].Count
	})
	return out
}
