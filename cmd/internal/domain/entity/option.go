package entity

// AppointmentOption is a catalog entry for a treatment: its full slot
// list and price. Maintained by catalog management, read-only here.
type AppointmentOption struct {
	ID    int        `gorm:"primaryKey"`
	Name  string     `gorm:"uniqueIndex;not null"`
	Price float64    `gorm:"not null"`
	Slots StringList `gorm:"not null"`
}
