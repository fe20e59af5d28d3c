package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"tripmind/entities"
	"tripmind/pkg/locker"
	"tripmind/pkg/message/repository"
)

type messageRepo struct {
	db    *gorm.DB
	locks *locker.KeyedMutex
}

func New(db *gorm.DB) repository.MessageRepository {
	return &messageRepo{db: db, locks: locker.New()}
}

func (r *messageRepo) Append(m *entities.Message) error {
	unlock := r.locks.Lock(m.TripID)
	defer unlock()

	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxID *int
		if err := tx.Model(&entities.Message{}).
			Where("trip_id = ?", m.TripID).
			Select("MAX(message_id)").Scan(&maxID).Error; err != nil {
			return err
		}
		next := 1
		if maxID != nil {
			next = *maxID + 1
		}
		m.MessageID = next
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}
		return tx.Create(m).Error
	})
}

func (r *messageRepo) List(tripID string) ([]entities.Message, error) {
	var ms []entities.Message
	if err := r.db.Where("trip_id = ?", tripID).Order("message_id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}
