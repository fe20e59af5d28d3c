package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"tripmind/entities"
	"tripmind/pkg/access/repository"
	"tripmind/pkg/locker"
)

type grantRepo struct {
	db    *gorm.DB
	locks *locker.KeyedMutex
}

func New(db *gorm.DB) repository.GrantRepository {
	return &grantRepo{db: db, locks: locker.New()}
}

func (r *grantRepo) Find(tripID, granteeUserID string) (*entities.AccessGrant, error) {
	var g entities.AccessGrant
	err := r.db.Where("trip_id = ? AND grantee_user_id = ?", tripID, granteeUserID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Upsert serializes writes per (trip, grantee) pair; re-inviting updates the
// existing row instead of duplicating it.
func (r *grantRepo) Upsert(g *entities.AccessGrant) error {
	unlock := r.locks.Lock(g.TripID + "/" + g.GranteeUserID)
	defer unlock()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing entities.AccessGrant
		err := tx.Where("trip_id = ? AND grantee_user_id = ?", g.TripID, g.GranteeUserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(g).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&entities.AccessGrant{}).
			Where("trip_id = ? AND grantee_user_id = ?", g.TripID, g.GranteeUserID).
			Updates(map[string]any{
				"permission": g.Permission,
				"status":     g.Status,
				"granted_at": g.GrantedAt,
			}).Error
	})
}

func (r *grantRepo) ListByTrip(tripID string) ([]entities.AccessGrant, error) {
	var gs []entities.AccessGrant
	if err := r.db.Where("trip_id = ?", tripID).Order("granted_at ASC").Find(&gs).Error; err != nil {
		return nil, err
	}
	return gs, nil
}
