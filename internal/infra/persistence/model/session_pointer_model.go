package model

import (
	"time"
)

// SessionPointerModel is the GORM-specific struct for the 'session_pointers' table.
// A NULL cart_id means the session has no active cart.
type SessionPointerModel struct {
	SessionKey string  `gorm:"type:varchar(255);primaryKey"`
	CartID     *string `gorm:"type:varchar(255)"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionPointerModel) TableName() string {
	return "session_pointers"
}
