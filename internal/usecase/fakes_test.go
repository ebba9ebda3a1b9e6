package usecase

import (
	"context"
	"sync"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"
)

// memoryBookings is a map-backed IBookingRepository for scenario tests.
// It keeps insertion order so list results are deterministic.
type memoryBookings struct {
	mu    sync.Mutex
	order []string
	items map[string]entities.Booking
}

var _ interfaces.IBookingRepository = (*memoryBookings)(nil)

func newMemoryBookings(seed ...entities.Booking) *memoryBookings {
	m := &memoryBookings{items: map[string]entities.Booking{}}
	for _, b := range seed {
		_, _ = m.Create(context.Background(), b)
	}
	return m
}

func (m *memoryBookings) Create(_ context.Context, b entities.Booking) (entities.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = append(m.order, b.ID)
	m.items[b.ID] = b
	return b, nil
}

func (m *memoryBookings) GetByID(_ context.Context, id string) (entities.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id], nil
}

func (m *memoryBookings) List(_ context.Context) ([]entities.Booking, error) {
	return m.filter(func(entities.Booking) bool { return true }), nil
}

func (m *memoryBookings) ListByUserEmail(_ context.Context, email string) ([]entities.Booking, error) {
	return m.filter(func(b entities.Booking) bool { return b.UserEmail == email }), nil
}

func (m *memoryBookings) ListByDecoratorEmail(_ context.Context, email string) ([]entities.Booking, error) {
	return m.filter(func(b entities.Booking) bool { return b.AssignedTo(email) }), nil
}

func (m *memoryBookings) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memoryBookings) Assign(_ context.Context, id string, a entities.Assignment) (entities.Booking, error) {
	return m.update(id, func(b *entities.Booking) {
		email := a.DecoratorEmail
		b.DecoratorEmail = &email
		b.Status = a.Status
	}), nil
}

func (m *memoryBookings) UpdateDecoratorStatus(_ context.Context, id string, status string) (entities.Booking, error) {
	return m.update(id, func(b *entities.Booking) { b.DecoratorStatus = &status }), nil
}

func (m *memoryBookings) MarkPaid(_ context.Context, id string) (entities.Booking, error) {
	return m.update(id, func(b *entities.Booking) { b.PaymentStatus = entities.PaymentStatusPaid }), nil
}

func (m *memoryBookings) update(id string, apply func(*entities.Booking)) entities.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return entities.Booking{}
	}
	apply(&b)
	m.items[id] = b
	return b
}

func (m *memoryBookings) filter(keep func(entities.Booking) bool) []entities.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Booking
	for _, id := range m.order {
		b, ok := m.items[id]
		if ok && keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// memoryAccounts is a map-backed IAccountRepository keyed by email.
type memoryAccounts struct {
	mu    sync.Mutex
	items map[string]entities.Account
}

var _ interfaces.IAccountRepository = (*memoryAccounts)(nil)

func newMemoryAccounts(seed ...entities.Account) *memoryAccounts {
	m := &memoryAccounts{items: map[string]entities.Account{}}
	for _, a := range seed {
		m.items[a.Email] = a
	}
	return m
}

func (m *memoryAccounts) Create(_ context.Context, a entities.Account) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[a.Email]; ok {
		return false, nil
	}
	m.items[a.Email] = a
	return true, nil
}

func (m *memoryAccounts) GetByEmail(_ context.Context, email string) (entities.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[email], nil
}

func (m *memoryAccounts) List(_ context.Context) ([]entities.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Account, 0, len(m.items))
	for _, a := range m.items {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryAccounts) ListByRole(_ context.Context, role entities.Role) ([]entities.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Account
	for _, a := range m.items {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAccounts) UpdateProfile(_ context.Context, email string, update entities.ProfileUpdate) (entities.Account, error) {
	return m.update(email, func(a *entities.Account) {
		if update.Name != "" {
			a.Name = update.Name
		}
		if update.Phone != "" {
			a.Phone = update.Phone
		}
		if update.Address != "" {
			a.Address = update.Address
		}
	}), nil
}

func (m *memoryAccounts) UpdateStatus(_ context.Context, email string, status entities.AccountStatus) (entities.Account, error) {
	return m.update(email, func(a *entities.Account) { a.Status = status }), nil
}

func (m *memoryAccounts) UpdateRole(_ context.Context, email string, role entities.Role) (entities.Account, error) {
	return m.update(email, func(a *entities.Account) { a.Role = role }), nil
}

func (m *memoryAccounts) update(email string, apply func(*entities.Account)) entities.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.items[email]
	if !ok {
		return entities.Account{}
	}
	apply(&a)
	m.items[email] = a
	return a
}
