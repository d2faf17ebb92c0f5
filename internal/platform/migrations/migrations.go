package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the users schema. Picture and is_active are persisted here
// even though the original storage omitted them; the input schema always
// accepted both.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&userRecord{})
}

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Password  string    `gorm:"column:password"`
	Picture   *string   `gorm:"column:picture"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }
