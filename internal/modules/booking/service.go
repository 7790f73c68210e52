package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staydrive/internal/domain"
	"staydrive/internal/pkg/bookingid"
	"staydrive/internal/pkg/logger"
	"staydrive/internal/pkg/pricing"
)

// ListingPath is the admin listing that goes stale whenever a booking is
// created or changes status.
const ListingPath = "/admin/bookings"

type Service struct {
	store    BookingStore
	items    ItemCatalog
	identity IdentityResolver
	cache    Invalidator
	log      logger.Logger

	newID func(tag string) string
	now   func() time.Time
	loc   *time.Location
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithIDGenerator(gen func(tag string) string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(
	store BookingStore,
	items ItemCatalog,
	identity IdentityResolver,
	cache Invalidator,
	log logger.Logger,
	opts ...Option,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		store:    store,
		items:    items,
		identity: identity,
		cache:    cache,
		log:      log,
		newID:    bookingid.Generate,
		now:      time.Now,
		loc:      time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates, prices and stores a new booking in pending status. A
// *ValidationError is returned as is; any collaborator failure comes back as
// ErrSubmissionFailed with the detail only in the log.
func (s *Service) Submit(ctx context.Context, req Request) (*SubmitResult, error) {
	kd, ok := descriptorFor(req.Kind)
	if !ok {
		return nil, ErrInvalidKind
	}

	owner := s.currentUser(ctx)

	if verr := validate(kd, req, s.today()); verr != nil {
		return nil, verr
	}

	rate, err := s.unitRate(ctx, kd, req.ItemID)
	if err != nil {
		return nil, err
	}

	// Dates were checked by validate.
	start, _ := time.Parse(domain.DateLayout, strings.TrimSpace(req.StartDate))
	end, _ := time.Parse(domain.DateLayout, strings.TrimSpace(req.EndDate))
	total := pricing.Total(start, end, rate)
	if req.ClientTotal != 0 && req.ClientTotal != total {
		s.log.Info("booking_price_mismatch kind=%s item_id=%d client_total=%.2f server_total=%.2f",
			kd.kind, req.ItemID, req.ClientTotal, total)
	}

	bookingID := s.newID(kd.tag)

	b, err := kd.create(ctx, s.store, draft{
		req:       req,
		bookingID: bookingID,
		total:     total,
		owner:     owner,
	})
	if err != nil {
		s.log.Error("booking_create_failed kind=%s booking_id=%s item_id=%d error=%v", kd.kind, bookingID, req.ItemID, err)
		return nil, ErrSubmissionFailed
	}

	s.invalidate(ctx)

	s.log.Info("booking_created kind=%s booking_id=%s ref=%d total=%.2f guest=%t",
		kd.kind, bookingID, b.ID, total, owner == nil)

	return &SubmitResult{
		BookingID: bookingID,
		Message:   fmt.Sprintf("Booking created successfully! Your booking ID is %s", bookingID),
		Booking:   &b,
	}, nil
}

// Quote prices a date range against the item's current rate, the same way
// Submit does.
func (s *Service) Quote(ctx context.Context, kind string, itemID int64, startDate, endDate string) (*Quote, error) {
	k, err := domain.ParseBookingKind(kind)
	if err != nil {
		return nil, ErrInvalidKind
	}
	kd, _ := descriptorFor(k)

	rate, err := s.unitRate(ctx, kd, itemID)
	if err != nil {
		return nil, err
	}

	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	q := &Quote{UnitRate: rate, TotalPrice: pricing.Quote(startDate, endDate, rate)}
	start, errStart := time.Parse(domain.DateLayout, startDate)
	end, errEnd := time.Parse(domain.DateLayout, endDate)
	if errStart == nil && errEnd == nil {
		q.Units = pricing.Units(start, end)
	}
	return q, nil
}

// SetStatus overwrites the status of a stored booking. Any status may replace
// any other; the last writer wins.
func (s *Service) SetStatus(ctx context.Context, kind string, ref int64, status string) (*domain.Booking, error) {
	newStatus, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}
	k, err := domain.ParseBookingKind(kind)
	if err != nil {
		return nil, ErrInvalidKind
	}
	kd, _ := descriptorFor(k)

	b, err := kd.update(ctx, s.store, ref, newStatus)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("booking_status_update_failed kind=%s ref=%d status=%s error=%v", k, ref, newStatus, err)
		return nil, ErrStatusUpdateFailed
	}

	s.invalidate(ctx)

	s.log.Info("booking_status_updated kind=%s ref=%d booking_id=%s status=%s", k, ref, b.BookingID, newStatus)
	return &b, nil
}

// ListAll reads both collections and returns them as one list, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var all []domain.Booking
	for _, kd := range allKinds {
		rows, err := kd.list(ctx, s.store)
		if err != nil {
			return nil, fmt.Errorf("list %s bookings: %w", kd.kind, err)
		}
		all = append(all, rows...)
	}
	if all == nil {
		all = []domain.Booking{}
	}
	sortNewestFirst(all)
	return all, nil
}

// GetByID finds a booking by its public booking ID. The CMS cannot be queried
// by that field everywhere, so this scans the full list.
func (s *Service) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrNotFound
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].BookingID, bookingID) {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// MyBookings lists the bookings made by the signed-in user.
func (s *Service) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	user := s.currentUser(ctx)
	if user == nil {
		return nil, ErrUnauthenticated
	}
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0)
	for _, b := range all {
		if b.UserID != nil && *b.UserID == user.ID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) unitRate(ctx context.Context, kd *kindDescriptor, itemID int64) (float64, error) {
	if itemID <= 0 {
		return 0, &ValidationError{Field: kd.itemField, Reason: kd.itemMissing}
	}
	rate, err := kd.rate(ctx, s.items, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, &ValidationError{Field: kd.itemField, Reason: kd.itemMissing}
		}
		s.log.Error("booking_rate_lookup_failed kind=%s item_id=%d error=%v", kd.kind, itemID, err)
		return 0, ErrSubmissionFailed
	}
	return rate, nil
}

func (s *Service) currentUser(ctx context.Context) *domain.Identity {
	if s.identity == nil {
		return nil
	}
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		s.log.Error("identity_lookup_failed error=%v", err)
		return nil
	}
	if user == nil || user.ID == "" {
		return nil
	}
	return user
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ListingPath); err != nil {
		s.log.Error("listing_invalidate_failed path=%s error=%v", ListingPath, err)
	}
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}
