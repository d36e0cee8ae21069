package repository

import (
	"context"
	"time"

	"flyease/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID         int64           `gorm:"column:id;primaryKey"`
	BookingID  int64           `gorm:"column:booking_id"`
	Method     string          `gorm:"column:method"`
	ProviderTx *string         `gorm:"column:provider_tx"`
	Amount     decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	Currency   string          `gorm:"column:currency"`
	Status     string          `gorm:"column:status"`
	PaidAt     time.Time       `gorm:"column:paid_at"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	var providerTx string
	if m.ProviderTx != nil {
		providerTx = *m.ProviderTx
	}

	return &domain.Payment{
		ID:         m.ID,
		BookingID:  m.BookingID,
		Method:     m.Method,
		ProviderTx: providerTx,
		Amount:     m.Amount,
		Currency:   m.Currency,
		Status:     domain.PaymentStatus(m.Status),
		PaidAt:     m.PaidAt,
		CreatedAt:  m.CreatedAt,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	var providerTx *string
	if p.ProviderTx != "" {
		v := p.ProviderTx
		providerTx = &v
	}

	return paymentModel{
		ID:         p.ID,
		BookingID:  p.BookingID,
		Method:     p.Method,
		ProviderTx: providerTx,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Status:     string(p.Status),
		PaidAt:     p.PaidAt,
		CreatedAt:  p.CreatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("created_at").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}
