package repositoryImp

import (
	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByUsername(username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List() ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Order("username ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) UpdateRole(id uint, role string) error {
	return r.db.Model(&entities.User{}).Where("user_id = ?", id).Update("role", role).Error
}

func (r *userRepo) SetActive(id uint, active bool) error {
	return r.db.Model(&entities.User{}).Where("user_id = ?", id).Update("is_active", active).Error
}

func (r *userRepo) CountByActive() (int64, int64, error) {
	var total, active int64
	if err := r.db.Model(&entities.User{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&entities.User{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
