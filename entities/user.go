package entities

import "time"

// Roles assignable to a user account.
const (
	RoleAdmin            = "admin"
	RoleFarmManager      = "farm_manager"
	RoleFieldSupervisor  = "field_supervisor"
	RoleFieldWorker      = "field_worker"
	RoleInventoryManager = "inventory_manager"
)

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Username     string `gorm:"uniqueIndex" json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"index" json:"role"` // admin|farm_manager|field_supervisor|field_worker|inventory_manager
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) CanManageFarms() bool {
	return u.Role == RoleAdmin || u.Role == RoleFarmManager
}

func (u *User) CanTrackHarvests() bool {
	switch u.Role {
	case RoleAdmin, RoleFarmManager, RoleFieldSupervisor, RoleFieldWorker:
		return true
	}
	return false
}

func (u *User) CanManageInventory() bool {
	return u.Role == RoleAdmin || u.Role == RoleInventoryManager
}

func (u *User) CanManageUsers() bool {
	return u.Role == RoleAdmin || u.Role == RoleFarmManager
}

func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleFarmManager, RoleFieldSupervisor, RoleFieldWorker, RoleInventoryManager:
		return true
	}
	return false
}
