package repository

import (
	"github.com/quangdng/talentgate/internal/model"
	"gorm.io/gorm"
)

// ApplicationRepository is intentionally create-only: applications have no
// update or delete path.
type ApplicationRepository interface {
	Create(application *model.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *model.Application) error {
	return r.db.Create(application).Error
}
