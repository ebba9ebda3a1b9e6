package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidDecoratorEmail = errors.New("invalid decorator email")

	// ErrBookingCreateFailed is returned when the store rejects a new booking.
	ErrBookingCreateFailed = fmt.Errorf("%w: booking creation failed", ErrUpstream)
)

const (
	DefaultBookingPage = 1
	DefaultBookingSize = 4
)

// BookingInput is a client-submitted booking. It is stored as sent: the
// service is not looked up and the price is not recomputed.
type BookingInput struct {
	UserEmail    string
	UserName     string
	ServiceID    string
	ServiceTitle string
	ServiceName  string
	Date         string
	Location     string
	Price        entities.Price
}

// BookingObserver is notified after a booking transition has been stored.
type BookingObserver interface {
	BookingCreated()
	BookingCancelled()
	BookingAssigned()
	BookingPaid()
}

type IBookingUseCase interface {
	Create(ctx context.Context, caller entities.Identity, in BookingInput) (string, error)
	Get(ctx context.Context, caller entities.Identity, id string) (entities.Booking, error)
	ListForUser(ctx context.Context, caller entities.Identity, email string, q entities.BookingQuery) (entities.BookingPage, error)
	ListAll(ctx context.Context, caller entities.Identity) ([]entities.Booking, error)
	Cancel(ctx context.Context, caller entities.Identity, id string) error
	AssignDecorator(ctx context.Context, caller entities.Identity, id string, a entities.Assignment) (entities.Booking, error)
	ListAssigned(ctx context.Context, caller entities.Identity, email string) ([]entities.Booking, error)
	UpdateDecoratorStatus(ctx context.Context, caller entities.Identity, id string, status string) (entities.Booking, error)
	TodaySchedule(ctx context.Context, caller entities.Identity, email string) ([]entities.Booking, error)
	MarkPaid(ctx context.Context, caller entities.Identity, id string) (entities.Booking, error)
	PaymentHistory(ctx context.Context, caller entities.Identity, email string) ([]entities.Booking, error)
}

// BookingUseCase is the booking lifecycle engine.
//
// Every operation checks its policy first, then performs at most one store
// mutation. There is no locking and no version check; concurrent writers to
// the same booking are last-write-wins.
type BookingUseCase struct {
	repo     interfaces.IBookingRepository
	policies BookingPolicies
	observer BookingObserver
	now      func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, policies BookingPolicies, observer BookingObserver) *BookingUseCase {
	if observer == nil {
		observer = noopBookingObserver{}
	}
	return &BookingUseCase{repo: repo, policies: policies, observer: observer, now: time.Now}
}

// Create stores a new booking in its initial state: unpaid, unassigned and
// without a decorator. Any such fields in the input are not honored.
func (u *BookingUseCase) Create(ctx context.Context, caller entities.Identity, in BookingInput) (string, error) {
	if err := u.policies.Create(ctx, caller, in.UserEmail); err != nil {
		return "", err
	}
	b := entities.Booking{
		ID:            uuid.NewString(),
		UserEmail:     in.UserEmail,
		UserName:      in.UserName,
		ServiceID:     in.ServiceID,
		ServiceTitle:  in.ServiceTitle,
		ServiceName:   in.ServiceName,
		Date:          in.Date,
		Location:      in.Location,
		Price:         in.Price,
		PaymentStatus: entities.PaymentStatusUnpaid,
		Status:        entities.BookingStatusUnassigned,
		CreatedAt:     u.now().UTC(),
	}

	log.Printf("[booking][usecase] create start user=%s service_id=%s date=%s", b.UserEmail, b.ServiceID, b.Date)
	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] create failed user=%s err=%v", b.UserEmail, err)
		return "", fmt.Errorf("%w: %w", ErrBookingCreateFailed, err)
	}
	u.observer.BookingCreated()
	log.Printf("[booking][usecase] create success id=%s", created.ID)
	return created.ID, nil
}

func (u *BookingUseCase) Get(ctx context.Context, caller entities.Identity, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if err := u.policies.Get(ctx, caller, id); err != nil {
		return entities.Booking{}, err
	}
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, upstream(err)
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// ListForUser returns one page of the user's bookings. TotalCount is the
// number of bookings the user has, whatever page was requested.
func (u *BookingUseCase) ListForUser(ctx context.Context, caller entities.Identity, email string, q entities.BookingQuery) (entities.BookingPage, error) {
	if err := u.policies.ListForUser(ctx, caller, email); err != nil {
		return entities.BookingPage{}, err
	}

	all, err := u.repo.ListByUserEmail(ctx, email)
	if err != nil {
		log.Printf("[booking][usecase] list for user failed email=%s err=%v", email, err)
		return entities.BookingPage{}, upstream(err)
	}

	sortBookings(all, q.Sort)
	return entities.BookingPage{Result: paginate(all, q.Page, q.Size), TotalCount: len(all)}, nil
}

func (u *BookingUseCase) ListAll(ctx context.Context, caller entities.Identity) ([]entities.Booking, error) {
	if err := u.policies.ListAll(ctx, caller, ""); err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[booking][usecase] list all failed err=%v", err)
		return nil, upstream(err)
	}
	return all, nil
}

// Cancel hard-deletes the booking. Nothing is kept for audit.
func (u *BookingUseCase) Cancel(ctx context.Context, caller entities.Identity, id string) error {
	id = strings.TrimSpace(id)
	if err := u.policies.Cancel(ctx, caller, id); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidBookingID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[booking][usecase] cancel failed id=%s err=%v", id, err)
		return upstream(err)
	}
	if !deleted {
		return ErrBookingNotFound
	}
	u.observer.BookingCancelled()
	log.Printf("[booking][usecase] cancel success id=%s", id)
	return nil
}

// AssignDecorator writes exactly decoratorEmail and status. The target email
// is not checked against the account directory.
func (u *BookingUseCase) AssignDecorator(ctx context.Context, caller entities.Identity, id string, a entities.Assignment) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if err := u.policies.Assign(ctx, caller, id); err != nil {
		return entities.Booking{}, err
	}
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	a.DecoratorEmail = strings.TrimSpace(a.DecoratorEmail)
	if a.DecoratorEmail == "" {
		return entities.Booking{}, ErrInvalidDecoratorEmail
	}
	if a.Status == "" {
		a.Status = entities.BookingStatusAssigned
	}

	log.Printf("[booking][usecase] assign start id=%s decorator=%s status=%s by=%s", id, a.DecoratorEmail, a.Status, caller.Email)
	updated, err := u.repo.Assign(ctx, id, a)
	if err != nil {
		log.Printf("[booking][usecase] assign failed id=%s err=%v", id, err)
		return entities.Booking{}, upstream(err)
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	u.observer.BookingAssigned()
	return updated, nil
}

func (u *BookingUseCase) ListAssigned(ctx context.Context, caller entities.Identity, email string) ([]entities.Booking, error) {
	if err := u.policies.ListAssigned(ctx, caller, email); err != nil {
		return nil, err
	}
	mine, err := u.repo.ListByDecoratorEmail(ctx, email)
	if err != nil {
		return nil, upstream(err)
	}
	return filterBookings(mine, func(b entities.Booking) bool {
		return b.Status == entities.BookingStatusAssigned
	}), nil
}

// UpdateDecoratorStatus accepts any status string, empty included. Only "in-progress" and
// "Completed" mean anything to the earnings report.
func (u *BookingUseCase) UpdateDecoratorStatus(ctx context.Context, caller entities.Identity, id string, status string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if err := u.policies.UpdateDecoratorStatus(ctx, caller, id); err != nil {
		return entities.Booking{}, err
	}
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	updated, err := u.repo.UpdateDecoratorStatus(ctx, id, status)
	if err != nil {
		log.Printf("[booking][usecase] decorator status failed id=%s err=%v", id, err)
		return entities.Booking{}, upstream(err)
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] decorator status updated id=%s status=%s by=%s", id, status, caller.Email)
	return updated, nil
}

// TodaySchedule lists the decorator's assigned bookings dated today (UTC).
func (u *BookingUseCase) TodaySchedule(ctx context.Context, caller entities.Identity, email string) ([]entities.Booking, error) {
	if err := u.policies.TodaySchedule(ctx, caller, email); err != nil {
		return nil, err
	}
	mine, err := u.repo.ListByDecoratorEmail(ctx, email)
	if err != nil {
		return nil, upstream(err)
	}
	today := u.now().UTC().Format(time.DateOnly)
	return filterBookings(mine, func(b entities.Booking) bool {
		return b.Status == entities.BookingStatusAssigned && strings.HasPrefix(b.Date, today)
	}), nil
}

// MarkPaid sets paymentStatus to paid. It trusts the caller: reaching this
// point is taken as the gateway's success callback, not as proof of payment.
// Marking an already paid booking succeeds and changes nothing.
func (u *BookingUseCase) MarkPaid(ctx context.Context, caller entities.Identity, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if err := u.policies.MarkPaid(ctx, caller, id); err != nil {
		return entities.Booking{}, err
	}
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	updated, err := u.repo.MarkPaid(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] mark paid failed booking_id=%s err=%v", id, err)
		return entities.Booking{}, upstream(err)
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	u.observer.BookingPaid()
	log.Printf("[payment][usecase] mark paid success booking_id=%s", id)
	return updated, nil
}

func (u *BookingUseCase) PaymentHistory(ctx context.Context, caller entities.Identity, email string) ([]entities.Booking, error) {
	if err := u.policies.PaymentHistory(ctx, caller, email); err != nil {
		return nil, err
	}
	mine, err := u.repo.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, upstream(err)
	}
	return filterBookings(mine, func(b entities.Booking) bool {
		return b.PaymentStatus == entities.PaymentStatusPaid
	}), nil
}

// sortBookings orders in place. Unknown keys leave storage order untouched.
func sortBookings(bookings []entities.Booking, key string) {
	var less func(a, b entities.Booking) bool
	switch key {
	case entities.SortByDate:
		less = func(a, b entities.Booking) bool { return a.Date > b.Date }
	case entities.SortByPrice:
		less = func(a, b entities.Booking) bool { return a.Price.Float() < b.Price.Float() }
	case entities.SortByPaymentStatus:
		less = func(a, b entities.Booking) bool { return a.PaymentStatus < b.PaymentStatus }
	default:
		return
	}
	sort.SliceStable(bookings, func(i, j int) bool { return less(bookings[i], bookings[j]) })
}

func paginate(bookings []entities.Booking, page, size int) []entities.Booking {
	if page < 1 {
		page = DefaultBookingPage
	}
	if size < 1 {
		size = DefaultBookingSize
	}
	if page-1 > len(bookings)/size {
		return []entities.Booking{}
	}
	start := (page - 1) * size
	if start >= len(bookings) {
		return []entities.Booking{}
	}
	end := start + size
	if end > len(bookings) {
		end = len(bookings)
	}
	return bookings[start:end]
}

func filterBookings(bookings []entities.Booking, keep func(entities.Booking) bool) []entities.Booking {
	out := make([]entities.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

type noopBookingObserver struct{}

func (noopBookingObserver) BookingCreated()   {}
func (noopBookingObserver) BookingCancelled() {}
func (noopBookingObserver) BookingAssigned()  {}
func (noopBookingObserver) BookingPaid()      {}
