package repository

import (
	"context"
	"strings"
	"time"

	"flyease/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	Email          string     `gorm:"column:email;uniqueIndex"`
	PasswordHash   string     `gorm:"column:password_hash"`
	PasswordFormat *string    `gorm:"column:password_format"`
	Name           string     `gorm:"column:name"`
	Phone          *string    `gorm:"column:phone"`
	Role           string     `gorm:"column:role"`
	IsBanned       bool       `gorm:"column:is_banned"`
	BannedAt       *time.Time `gorm:"column:banned_at"`
	BanReason      *string    `gorm:"column:ban_reason"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone, format, banReason string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.PasswordFormat != nil {
		format = *m.PasswordFormat
	}
	if m.BanReason != nil {
		banReason = *m.BanReason
	}

	return &domain.User{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		PasswordFormat: domain.PasswordFormat(format),
		Name:           m.Name,
		Phone:          phone,
		Role:           domain.UserRole(m.Role),
		IsBanned:       m.IsBanned,
		BannedAt:       m.BannedAt,
		BanReason:      banReason,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	email := strings.TrimSpace(strings.ToLower(u.Email))

	var phone, format, banReason *string
	if u.Phone != "" {
		v := u.Phone
		phone = &v
	}
	if u.PasswordFormat != "" {
		v := string(u.PasswordFormat)
		format = &v
	}
	if u.BanReason != "" {
		v := u.BanReason
		banReason = &v
	}

	return userModel{
		ID:             u.ID,
		Email:          email,
		PasswordHash:   u.PasswordHash,
		PasswordFormat: format,
		Name:           u.Name,
		Phone:          phone,
		Role:           string(u.Role),
		IsBanned:       u.IsBanned,
		BannedAt:       u.BannedAt,
		BanReason:      banReason,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Save(&m).Error
}

// UpdateCredentials rewrites the stored password and its format in one shot.
// Used by registration and by any future migration off the legacy format.
func (r *UserRepository) UpdateCredentials(ctx context.Context, userID int64, hash string, format domain.PasswordFormat) error {
	return r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":   hash,
		"password_format": string(format),
	}).Error
}

func (r *UserRepository) SetBanned(ctx context.Context, userID int64, banned bool, reason string) error {
	updates := map[string]any{"is_banned": banned}
	if banned {
		updates["banned_at"] = time.Now()
		updates["ban_reason"] = reason
	} else {
		updates["banned_at"] = nil
		updates["ban_reason"] = nil
	}
	return r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var rows []userModel
	tx := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}
