package models

import "time"

// Store is a shop owned by the user who created it. Products and employees
// are scoped to a store.
type Store struct {
	ID        ID        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	OwnerID   ID        `json:"-" gorm:"index;type:varchar(36)"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
