package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the repositories that take part in a single
// transaction. Every member is bound to the same *gorm.DB handle.
type Repositories struct {
	Applications   ApplicationRepository
	AjussiProfiles AjussiProfileRepository
	Users          UserRepository
}

// UnitOfWork runs a function against transaction-scoped repositories; any
// error rolls every write inside the function back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(r Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories{
			Applications:   NewApplicationRepository(tx),
			AjussiProfiles: NewAjussiProfileRepository(tx),
			Users:          NewUserRepository(tx),
		})
	})
}
