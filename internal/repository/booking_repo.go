package repository

import (
	"context"
	"errors"
	"time"

	"flyease/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInsufficientSlots is returned by CreateConfirmed when the package does
// not have enough remaining capacity at commit time.
var ErrInsufficientSlots = errors.New("insufficient available slots")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	Reference     string          `gorm:"column:reference;uniqueIndex"`
	UserID        int64           `gorm:"column:user_id"`
	PackageID     int64           `gorm:"column:package_id"`
	TravelDate    time.Time       `gorm:"column:travel_date"`
	TravelerCount int             `gorm:"column:traveler_count"`
	SeniorCount   int             `gorm:"column:senior_count"`
	JuniorCount   int             `gorm:"column:junior_count"`
	BaseAmount    decimal.Decimal `gorm:"column:base_amount;type:decimal(12,2)"`
	Discount      decimal.Decimal `gorm:"column:discount;type:decimal(12,2)"`
	FinalAmount   decimal.Decimal `gorm:"column:final_amount;type:decimal(12,2)"`
	Status        string          `gorm:"column:status"`
	BookedAt      time.Time       `gorm:"column:booked_at"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
	CancelledAt   *time.Time      `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		Reference:     m.Reference,
		UserID:        m.UserID,
		PackageID:     m.PackageID,
		TravelDate:    m.TravelDate,
		TravelerCount: m.TravelerCount,
		SeniorCount:   m.SeniorCount,
		JuniorCount:   m.JuniorCount,
		BaseAmount:    m.BaseAmount,
		Discount:      m.Discount,
		FinalAmount:   m.FinalAmount,
		Status:        domain.BookingStatus(m.Status),
		BookedAt:      m.BookedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		PackageID:     b.PackageID,
		TravelDate:    b.TravelDate,
		TravelerCount: b.TravelerCount,
		SeniorCount:   b.SeniorCount,
		JuniorCount:   b.JuniorCount,
		BaseAmount:    b.BaseAmount,
		Discount:      b.Discount,
		FinalAmount:   b.FinalAmount,
		Status:        string(b.Status),
		BookedAt:      b.BookedAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

// CreateConfirmed commits a booking in one transaction: insert the booking,
// insert its payment, then decrement the package capacity with a conditional
// UPDATE. The decrement only matches when enough slots remain, so two
// concurrent commits for the last slots cannot both succeed and the counter
// can never go negative. Zero matched rows rolls everything back.
func (r *BookingRepository) CreateConfirmed(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bm := toBookingModel(b)
		if err := tx.Create(&bm).Error; err != nil {
			return err
		}

		pm := toPaymentModel(p)
		pm.BookingID = bm.ID
		if err := tx.Create(&pm).Error; err != nil {
			return err
		}

		res := tx.Model(&packageModel{}).
			Where("id = ? AND available_slots >= ?", bm.PackageID, bm.TravelerCount).
			UpdateColumn("available_slots", gorm.Expr("available_slots - ?", bm.TravelerCount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var cnt int64
			if err := tx.Model(&packageModel{}).Where("id = ?", bm.PackageID).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrInsufficientSlots
		}

		*b = *toDomainBooking(bm)
		*p = *toDomainPayment(pm)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booked_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []bookingModel
	tx := q.Order("booked_at DESC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	updates := map[string]any{"status": string(status)}
	if status == domain.BookingCancelled {
		updates["cancelled_at"] = time.Now()
	}
	res := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", bookingID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CompletedBookingForPackage returns the id of a completed booking the user
// holds for the package, for review eligibility.
func (r *BookingRepository) CompletedBookingForPackage(ctx context.Context, userID, packageID int64) (int64, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND package_id = ? AND status = ?", userID, packageID, string(domain.BookingCompleted)).
		Order("booked_at DESC").
		First(&m)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return m.ID, nil
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
