package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"flyease/internal/database"
	"flyease/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedPackage(t *testing.T, db *gorm.DB, slots int) *domain.TravelPackage {
	t.Helper()

	pkg := &domain.TravelPackage{
		Name:           "Lisbon Getaway",
		Destination:    "Lisbon, Portugal",
		UnitPrice:      decimal.RequireFromString("100.00"),
		AvailableSlots: slots,
		StartDate:      time.Now().AddDate(0, 2, 0),
		EndDate:        time.Now().AddDate(0, 2, 5),
	}
	require.NoError(t, NewPackageRepository(db).Create(context.Background(), pkg))
	return pkg
}

func confirmedBooking(packageID int64, travelers int) (*domain.Booking, *domain.Payment) {
	amount := decimal.NewFromInt(100).Mul(decimal.NewFromInt(int64(travelers)))
	b := &domain.Booking{
		Reference:     fmt.Sprintf("BK-%d-%d", packageID, travelers),
		UserID:        1,
		PackageID:     packageID,
		TravelDate:    time.Now().AddDate(0, 2, 0),
		TravelerCount: travelers,
		BaseAmount:    amount,
		Discount:      decimal.Zero,
		FinalAmount:   amount,
		Status:        domain.BookingConfirmed,
		BookedAt:      time.Now(),
	}
	p := &domain.Payment{
		Method:   "card",
		Amount:   amount,
		Currency: "eur",
		Status:   domain.PaymentCompleted,
		PaidAt:   time.Now(),
	}
	return b, p
}

func TestCreateConfirmed_DecrementsSlotsAndLinksPayment(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	pkg := seedPackage(t, db, 5)

	b, p := confirmedBooking(pkg.ID, 3)
	require.NoError(t, repo.CreateConfirmed(ctx, b, p))

	assert.NotZero(t, b.ID)
	assert.Equal(t, b.ID, p.BookingID)

	got, err := NewPackageRepository(db).GetByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableSlots)

	payments, err := NewPaymentRepository(db).GetByBookingID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(300)))
}

func TestCreateConfirmed_OverCapacityRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	pkg := seedPackage(t, db, 5)

	first, firstPay := confirmedBooking(pkg.ID, 3)
	require.NoError(t, repo.CreateConfirmed(ctx, first, firstPay))

	// Two slots left. A second commit for three travelers must match zero
	// rows on the conditional decrement and roll back entirely.
	second, secondPay := confirmedBooking(pkg.ID, 3)
	second.Reference = "BK-over-capacity"
	err := repo.CreateConfirmed(ctx, second, secondPay)
	assert.ErrorIs(t, err, ErrInsufficientSlots)

	got, err := NewPackageRepository(db).GetByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableSlots)

	var bookings, payments int64
	require.NoError(t, db.Model(&bookingModel{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&paymentModel{}).Count(&payments).Error)
	assert.Equal(t, int64(1), bookings)
	assert.Equal(t, int64(1), payments)
}

func TestCreateConfirmed_ExactRemainingCapacitySucceeds(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	pkg := seedPackage(t, db, 4)

	b, p := confirmedBooking(pkg.ID, 4)
	require.NoError(t, repo.CreateConfirmed(ctx, b, p))

	got, err := NewPackageRepository(db).GetByID(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableSlots)
}

func TestCreateConfirmed_UnknownPackage(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b, p := confirmedBooking(999, 2)
	err := repo.CreateConfirmed(ctx, b, p)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var bookings int64
	require.NoError(t, db.Model(&bookingModel{}).Count(&bookings).Error)
	assert.Zero(t, bookings)
}
