package repository

import "tripmind/entities"

type UserRepository interface {
	Upsert(u *entities.User) error
	FindByUserID(userID string) (*entities.User, error)
	// FindByIdentifier resolves either a user id or an email address, the
	// two forms an invite may carry.
	FindByIdentifier(id string) (*entities.User, error)
}
