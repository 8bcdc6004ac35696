package models

import "time"

// Role is the position an employee holds in a store.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Employee is a store-scoped account. Password is write-only: it is accepted
// on creation and never returned by the API.
type Employee struct {
	ID           ID        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password     string    `json:"password,omitempty" gorm:"-" validate:"required,min=1"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Role         Role      `json:"role" gorm:"type:varchar(32)" validate:"omitempty,oneof=employee manager"`
	StoreID      ID        `json:"store_id" gorm:"index;type:varchar(36)"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
