package repositories

import (
	"context"
	"gin-tasktracker/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IRevokedTokenRepository interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	Exists(ctx context.Context, token string) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type RevokedTokenRepository struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) IRevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

// Add inserts token, doing nothing if it is already present.
func (r *RevokedTokenRepository) Add(ctx context.Context, token string, expiresAt time.Time) error {
	revoked := models.RevokedToken{
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&revoked)
	return result.Error
}

func (r *RevokedTokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.RevokedToken{}).Where("token = ?", token).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *RevokedTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", now.UTC()).Delete(&models.RevokedToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
