package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"staydrive/internal/domain"
)

// BookingRepository keeps stays and rentals in their own tables, mirroring
// the two CMS collections.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateStayBooking(ctx context.Context, b *domain.StayBooking) (*domain.StayBooking, error) {
	m := toStayModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translate(err)
	}
	out := toDomainStay(m)
	return &out, nil
}

func (r *BookingRepository) CreateRentalBooking(ctx context.Context, b *domain.RentalBooking) (*domain.RentalBooking, error) {
	m := toRentalModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translate(err)
	}
	out := toDomainRental(m)
	return &out, nil
}

func (r *BookingRepository) UpdateStayBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.StayBooking, error) {
	var m stayBookingModel
	if err := r.updateStatus(ctx, &m, ref, status); err != nil {
		return nil, err
	}
	out := toDomainStay(m)
	return &out, nil
}

func (r *BookingRepository) UpdateRentalBookingStatus(ctx context.Context, ref int64, status domain.BookingStatus) (*domain.RentalBooking, error) {
	var m rentalBookingModel
	if err := r.updateStatus(ctx, &m, ref, status); err != nil {
		return nil, err
	}
	out := toDomainRental(m)
	return &out, nil
}

// updateStatus writes the status column and reloads the row into dst.
func (r *BookingRepository) updateStatus(ctx context.Context, dst any, ref int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(dst).
		Where("id = ?", ref).
		Update("booking_status", string(status))
	if tx.Error != nil {
		return fmt.Errorf("update booking status: %w", translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	if err := r.db.WithContext(ctx).First(dst, ref).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *BookingRepository) ListStayBookings(ctx context.Context) ([]domain.StayBooking, error) {
	var rows []stayBookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.StayBooking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainStay(m))
	}
	return out, nil
}

func (r *BookingRepository) ListRentalBookings(ctx context.Context) ([]domain.RentalBooking, error) {
	var rows []rentalBookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.RentalBooking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainRental(m))
	}
	return out, nil
}
