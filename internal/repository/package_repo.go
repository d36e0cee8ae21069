package repository

import (
	"context"
	"strings"
	"time"

	"flyease/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

type packageModel struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	Name           string          `gorm:"column:name"`
	Destination    string          `gorm:"column:destination"`
	Description    *string         `gorm:"column:description"`
	UnitPrice      decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2)"`
	AvailableSlots int             `gorm:"column:available_slots"`
	StartDate      time.Time       `gorm:"column:start_date"`
	EndDate        time.Time       `gorm:"column:end_date"`
	ImageURL       *string         `gorm:"column:image_url"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (packageModel) TableName() string { return "travel_packages" }

func toDomainPackage(m packageModel) *domain.TravelPackage {
	var description, imageURL string
	if m.Description != nil {
		description = *m.Description
	}
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}

	return &domain.TravelPackage{
		ID:             m.ID,
		Name:           m.Name,
		Destination:    m.Destination,
		Description:    description,
		UnitPrice:      m.UnitPrice,
		AvailableSlots: m.AvailableSlots,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		ImageURL:       imageURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toPackageModel(p *domain.TravelPackage) packageModel {
	var description, imageURL *string
	if p.Description != "" {
		v := p.Description
		description = &v
	}
	if p.ImageURL != "" {
		v := p.ImageURL
		imageURL = &v
	}

	return packageModel{
		ID:             p.ID,
		Name:           p.Name,
		Destination:    p.Destination,
		Description:    description,
		UnitPrice:      p.UnitPrice,
		AvailableSlots: p.AvailableSlots,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		ImageURL:       imageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.TravelPackage) error {
	m := toPackageModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPackage(m)
	return nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.TravelPackage, error) {
	var m packageModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPackage(m), nil
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.TravelPackage) error {
	m := toPackageModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&packageModel{}, id).Error
}

type PackageFilters struct {
	Destination string
	MaxPrice    *decimal.Decimal
	FromDate    *time.Time
	Limit       int
	Offset      int
}

func (r *PackageRepository) List(ctx context.Context, f PackageFilters) ([]domain.TravelPackage, int64, error) {
	q := r.db.WithContext(ctx).Model(&packageModel{})
	if f.Destination != "" {
		q = q.Where("LOWER(destination) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(f.Destination))+"%")
	}
	if f.MaxPrice != nil {
		q = q.Where("unit_price <= ?", *f.MaxPrice)
	}
	if f.FromDate != nil {
		q = q.Where("start_date >= ?", *f.FromDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []packageModel
	tx := q.Order("start_date").Limit(f.Limit).Offset(f.Offset).Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.TravelPackage, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPackage(m))
	}
	return out, total, nil
}
