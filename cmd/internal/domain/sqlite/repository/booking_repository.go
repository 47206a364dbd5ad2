package repository

import (
	"errors"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"gorm.io/gorm"
)

// ErrDuplicateBooking surfaces the store-level uniqueness of the
// (appointment_date, treatment, email) triple. It is the backstop for
// concurrent submissions that pass the service's pre-check.
var ErrDuplicateBooking = errors.New("booking already exists for this date and treatment")

type DefaultBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *DefaultBookingRepository {
	return &DefaultBookingRepository{db: db}
}

func (b *DefaultBookingRepository) Save(booking *entity.Booking) error {
	err := b.db.Create(booking).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateBooking
	}
	return err
}

func (b *DefaultBookingRepository) FindByID(id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := b.db.First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

func (b *DefaultBookingRepository) FindByEmail(email string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	err := b.db.Where("email = ?", email).
		Order("created_at asc").
		Find(&bookings).Error
	return bookings, err
}

func (b *DefaultBookingRepository) FindByDate(date string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	err := b.db.Where("appointment_date = ?", date).Find(&bookings).Error
	return bookings, err
}

// FindClaim looks up the booking holding the (date, treatment, email)
// claim, if any.
func (b *DefaultBookingRepository) FindClaim(date, treatment, email string) (*entity.Booking, error) {
	var booking entity.Booking
	err := b.db.
		Where("appointment_date = ?", date).
		Where("treatment = ?", treatment).
		Where("email = ?", email).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &booking, err
}

// MarkPaid flips the one-time paid flag on the referenced booking.
// Zero affected rows (unknown booking id) is not an error.
func (b *DefaultBookingRepository) MarkPaid(id, transactionID string) error {
	return b.db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"paid":           true,
			"transaction_id": transactionID,
			"updated_at":     utils.NowUTC(),
		}).Error
}
