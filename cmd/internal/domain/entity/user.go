package entity

// RoleAdmin is the only elevated role; every other value (including
// the empty string) is an ordinary patient account.
const RoleAdmin = "admin"

type User struct {
	Email     string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Role      string
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
