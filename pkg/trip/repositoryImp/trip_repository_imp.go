package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tripmind/entities"
	"tripmind/pkg/locker"
	"tripmind/pkg/trip/repository"
)

type tripRepo struct {
	db    *gorm.DB
	locks *locker.KeyedMutex
}

func New(db *gorm.DB) repository.TripRepository {
	return &tripRepo{db: db, locks: locker.New()}
}

func (r *tripRepo) Create(t *entities.Trip, planJSON string) error {
	unlock := r.locks.Lock(t.TripID)
	defer unlock()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing entities.Trip
		err := tx.Where("trip_id = ?", t.TripID).First(&existing).Error
		if err == nil {
			return repository.ErrAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		t.LatestVersion = 1
		t.LatestJSON = planJSON
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		v := entities.PlanVersion{
			TripID:        t.TripID,
			VersionNumber: 1,
			ModifiedBy:    t.OwnerUserID,
			PlanJSON:      planJSON,
			CreatedAt:     time.Now().UTC(),
		}
		return tx.Create(&v).Error
	})
}

// Append inserts the next version and moves the latest pointer in one
// transaction, under the trip's lock so concurrent appends cannot race the
// MAX+1 numbering.
func (r *tripRepo) Append(tripID, planJSON, modifiedBy string) (int, error) {
	unlock := r.locks.Lock(tripID)
	defer unlock()

	var n int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var t entities.Trip
		if err := tx.Where("trip_id = ?", tripID).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		n = t.LatestVersion + 1
		v := entities.PlanVersion{
			TripID:        tripID,
			VersionNumber: n,
			ModifiedBy:    modifiedBy,
			PlanJSON:      planJSON,
			CreatedAt:     time.Now().UTC(),
		}
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Trip{}).Where("trip_id = ?", tripID).
			Updates(map[string]any{"latest_version": n, "latest_json": planJSON}).Error
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *tripRepo) Find(tripID string) (*entities.Trip, error) {
	var t entities.Trip
	if err := r.db.Where("trip_id = ?", tripID).First(&t).Error; err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *tripRepo) Owner(tripID string) (string, error) {
	t, err := r.Find(tripID)
	if err != nil {
		return "", err
	}
	return t.OwnerUserID, nil
}

func (r *tripRepo) Version(tripID string, n int) (*entities.PlanVersion, error) {
	var v entities.PlanVersion
	if err := r.db.Where("trip_id = ? AND version_number = ?", tripID, n).First(&v).Error; err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r *tripRepo) ListVersions(tripID string) ([]entities.PlanVersion, error) {
	var vs []entities.PlanVersion
	if err := r.db.Where("trip_id = ?", tripID).Order("version_number ASC").Find(&vs).Error; err != nil {
		return nil, err
	}
	return vs, nil
}

func (r *tripRepo) ListByOwner(userID string) ([]entities.Trip, error) {
	var ts []entities.Trip
	if err := r.db.Where("owner_user_id = ?", userID).Order("created_at ASC").Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *tripRepo) Delete(tripID string) error {
	unlock := r.locks.Lock(tripID)
	defer unlock()

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("trip_id = ?", tripID).Delete(&entities.Trip{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		for _, model := range []any{
			&entities.PlanVersion{},
			&entities.AccessGrant{},
			&entities.Message{},
		} {
			if err := tx.Where("trip_id = ?", tripID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}
