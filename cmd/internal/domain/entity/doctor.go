package entity

// Doctor is an admin-managed roster entry. Specialty names overlap with
// the option catalog informationally only; nothing is enforced.
type Doctor struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string
	Specialty string `gorm:"not null"`
	Slots     StringList
	CreatedAt int64 `gorm:"not null"`
}
