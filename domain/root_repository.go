package domain

import "github.com/cloudcopper/bytesize/domain/models"

type RootRepository interface {
	Create(model *models.Root) error
	Delete(id models.RootID) error
	FindAll() ([]*models.Root, error)
	FindByID(id models.RootID) (*models.Root, error)
	IterateAll(func(*models.Root) (bool, error)) error
}
