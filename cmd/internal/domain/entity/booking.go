package entity

// Booking reserves one slot for one treatment on one date.
// The composite unique index enforces the one-booking-per-
// (date, treatment, requester) rule at the store, so concurrent
// submissions cannot slip past the service-level duplicate check.
type Booking struct {
	ID              string `gorm:"primaryKey"`
	AppointmentDate string `gorm:"not null;uniqueIndex:idx_booking_claim"` // "MMM DD, YYYY"
	Treatment       string `gorm:"not null;uniqueIndex:idx_booking_claim"` // References: appointment_options(name)
	Slot            string `gorm:"not null"`
	Email           string `gorm:"not null;uniqueIndex:idx_booking_claim"`
	PatientName     string `gorm:"not null"`
	Phone           string
	Price           float64
	Paid            bool `gorm:"not null"`
	TransactionID   string
	CreatedAt       int64 `gorm:"not null"`
	UpdatedAt       int64 `gorm:"not null"`
}
