package model

// User represents the database row for the users table. Password holds
// either a legacy plain-text value or a bcrypt hash; the domain decides
// which when the row is materialized.
type User struct {
	UserID   uint64 `gorm:"column:user_id;primaryKey"`
	Name     string `gorm:"column:name"`
	Email    string `gorm:"column:email;uniqueIndex"`
	Phone    string `gorm:"column:phone"`
	Address  string `gorm:"column:address"`
	Password string `gorm:"column:password"`
	RoleID   uint8  `gorm:"column:role_id"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
