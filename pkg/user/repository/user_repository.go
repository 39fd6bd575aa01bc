package repository

import "harvestpro/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByID(id uint) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
	List() ([]entities.User, error)
	UpdateRole(id uint, role string) error
	SetActive(id uint, active bool) error
	CountByActive() (total, active int64, err error)
}
