package repositoryImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tripmind/entities"
	"tripmind/pkg/profile/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Upsert(u *entities.User) error {
	var existing entities.User
	err := r.db.Where("user_id = ?", u.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(u).Error
	}
	if err != nil {
		return err
	}
	u.ID = existing.ID
	return r.db.Save(u).Error
}

func (r *userRepo) FindByUserID(userID string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByIdentifier(id string) (*entities.User, error) {
	var u entities.User
	q := r.db.Where("user_id = ?", id)
	if strings.Contains(id, "@") {
		q = r.db.Where("user_id = ? OR email = ?", id, id)
	}
	if err := q.First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
