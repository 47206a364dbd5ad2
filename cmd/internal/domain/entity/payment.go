package entity

// Payment records one successful charge. Immutable once created; its
// creation triggers the one-time paid/transaction update of the
// referenced booking.
type Payment struct {
	ID            string `gorm:"primaryKey"`
	BookingID     string `gorm:"not null;index"`
	TransactionID string `gorm:"not null"`
	Amount        float64
	Email         string
	CreatedAt     int64 `gorm:"not null"`
}
