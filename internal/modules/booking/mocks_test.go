package booking

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"staydrive/internal/domain"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) CreateStayBooking(ctx context.Context, b *domain.StayBooking) (*domain.StayBooking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StayBooking), args.Error(1)
}

func (m *MockBookingStore) CreateRentalBooking(ctx context.Context, b *domain.RentalBooking) (*domain.RentalBooking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalBooking), args.Error(1)
}

func (m *MockBookingStore) UpdateStayBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.StayBooking, error) {
	args := m.Called(ctx, ref, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StayBooking), args.Error(1)
}

func (m *MockBookingStore) UpdateRentalBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.RentalBooking, error) {
	args := m.Called(ctx, ref, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalBooking), args.Error(1)
}

func (m *MockBookingStore) ListStayBookings(ctx context.Context) ([]domain.StayBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StayBooking), args.Error(1)
}

func (m *MockBookingStore) ListRentalBookings(ctx context.Context) ([]domain.RentalBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalBooking), args.Error(1)
}

type MockItemCatalog struct {
	mock.Mock
}

func (m *MockItemCatalog) GetGuestHouse(ctx context.Context, id int64) (*domain.GuestHouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuestHouse), args.Error(1)
}

func (m *MockItemCatalog) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// memoryStore is a working BookingStore used where a sequence of calls has to
// observe earlier writes.
type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	clock   time.Time
	stays   []domain.StayBooking
	rentals []domain.RentalBooking
}

func newMemoryStore(clock time.Time) *memoryStore {
	return &memoryStore{clock: clock}
}

func (s *memoryStore) tick() (int64, time.Time) {
	s.nextID++
	s.clock = s.clock.Add(time.Minute)
	return s.nextID, s.clock
}

func (s *memoryStore) CreateStayBooking(_ context.Context, b *domain.StayBooking) (*domain.StayBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := *b
	rec.ID, rec.CreatedAt = s.tick()
	s.stays = append(s.stays, rec)
	return &rec, nil
}

func (s *memoryStore) CreateRentalBooking(_ context.Context, b *domain.RentalBooking) (*domain.RentalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := *b
	rec.ID, rec.CreatedAt = s.tick()
	s.rentals = append(s.rentals, rec)
	return &rec, nil
}

func (s *memoryStore) UpdateStayBookingStatus(_ context.Context, ref int64, status domain.BookingStatus) (*domain.StayBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stays {
		if s.stays[i].ID == ref {
			s.stays[i].Status = status
			rec := s.stays[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (s *memoryStore) UpdateRentalBookingStatus(_ context.Context, ref int64, status domain.BookingStatus) (*domain.RentalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rentals {
		if s.rentals[i].ID == ref {
			s.rentals[i].Status = status
			rec := s.rentals[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (s *memoryStore) ListStayBookings(context.Context) ([]domain.StayBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StayBooking(nil), s.stays...), nil
}

func (s *memoryStore) ListRentalBookings(context.Context) ([]domain.RentalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RentalBooking(nil), s.rentals...), nil
}

type staticCatalog struct {
	houses map[int64]domain.GuestHouse
	cars   map[int64]domain.Car
}

func (c staticCatalog) GetGuestHouse(_ context.Context, id int64) (*domain.GuestHouse, error) {
	gh, ok := c.houses[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &gh, nil
}

func (c staticCatalog) GetCar(_ context.Context, id int64) (*domain.Car, error) {
	car, ok := c.cars[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &car, nil
}

func testCatalog() staticCatalog {
	return staticCatalog{
		houses: map[int64]domain.GuestHouse{1: {ID: 1, Name: "Lakeside Cabin", PricePerNight: 150}},
		cars:   map[int64]domain.Car{3: {ID: 3, Name: "City Hatchback", PricePerDay: 45}},
	}
}
