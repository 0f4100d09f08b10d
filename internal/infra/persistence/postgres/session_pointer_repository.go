package postgres

import (
	"context"
	"path"

	"cambaeats/internal/domain/repository"
	"cambaeats/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionPointerRepository implements repository.SessionPointerStore for one key.
type sessionPointerRepository struct {
	db  *gorm.DB
	key string
}

// NewSessionPointerRepository is the constructor for sessionPointerRepository.
func NewSessionPointerRepository(db *gorm.DB, key string) repository.SessionPointerStore {
	return &sessionPointerRepository{db: db, key: key}
}

// Load returns the stored cart identifier. A missing row or NULL cart_id means none.
func (repo *sessionPointerRepository) Load(ctx context.Context) (string, bool, error) {
	var pointerM model.SessionPointerModel

	err := repo.db.WithContext(ctx).
		Where("session_key = ?", repo.key).
		First(&pointerM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to load session pointer")
	}
	if pointerM.CartID == nil || *pointerM.CartID == "" {
		return "", false, nil
	}

	return *pointerM.CartID, true, nil
}

func (repo *sessionPointerRepository) Save(ctx context.Context, cartID string) error {
	if err := repo.upsert(repo.db.WithContext(ctx), &cartID).Error; err != nil {
		return errors.Wrap(err, "failed to save session pointer")
	}

	return nil
}

// Clear keeps the row and nulls cart_id.
func (repo *sessionPointerRepository) Clear(ctx context.Context) error {
	if err := repo.upsert(repo.db.WithContext(ctx), nil).Error; err != nil {
		return errors.Wrap(err, "failed to clear session pointer")
	}

	return nil
}

func (repo *sessionPointerRepository) upsert(db *gorm.DB, cartID *string) *gorm.DB {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cart_id", "updated_at"}),
	}).Create(&model.SessionPointerModel{
		SessionKey: repo.key,
		CartID:     cartID,
	})
}

type sessionPointerProvider struct {
	db  *gorm.DB
	key string
}

// NewSessionPointerProvider scopes rows by <key>/<sessionID>
func NewSessionPointerProvider(db *gorm.DB, key string) repository.SessionPointerProvider {
	return &sessionPointerProvider{db: db, key: key}
}

func (p *sessionPointerProvider) ForSession(sessionID string) repository.SessionPointerStore {
	return NewSessionPointerRepository(p.db, path.Join(p.key, sessionID))
}
