package service

import (
	"errors"
	"fmt"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/sqlite/repository"
	"doctorsportal/cmd/internal/integration/invoice"
	"doctorsportal/cmd/internal/integration/mail"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type BookingRepository interface {
	Save(booking *entity.Booking) error
	FindByID(id string) (*entity.Booking, error)
	FindByEmail(email string) ([]*entity.Booking, error)
	FindByDate(date string) ([]*entity.Booking, error)
	FindClaim(date, treatment, email string) (*entity.Booking, error)
	MarkPaid(id, transactionID string) error
}

type PaymentRepository interface {
	Save(payment *entity.Payment) error
}

type BookingRequest struct {
	AppointmentDate string  `json:"appointmentDate" validate:"required,apptdate"`
	Treatment       string  `json:"treatment" validate:"required,max=128"`
	Slot            string  `json:"slot" validate:"required,slotlabel"`
	Email           string  `json:"email" validate:"required,email"`
	PatientName     string  `json:"patientName" validate:"required,max=128"`
	Phone           string  `json:"phone" validate:"max=32"`
	Price           float64 `json:"price" validate:"gte=0"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	AppointmentDate string  `json:"appointmentDate"`
	Treatment       string  `json:"treatment"`
	Slot            string  `json:"slot"`
	Email           string  `json:"email"`
	PatientName     string  `json:"patientName"`
	Phone           string  `json:"phone"`
	Price           float64 `json:"price"`
	Paid            bool    `json:"paid"`
	TransactionID   string  `json:"transactionId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

type PaymentRequest struct {
	BookingID     string  `json:"bookingId" validate:"required,uuid4"`
	TransactionID string  `json:"transactionId" validate:"required,max=128"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Email         string  `json:"email" validate:"omitempty,email"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"bookingId"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	CreatedAt     string  `json:"createdAt"`
}

type DefaultBookingService struct {
	BookingRepo BookingRepository
	PaymentRepo PaymentRepository
	Validate    *validator.Validate
	Mailer      mail.Mailer
}

func NewBookingService(bookingRepo BookingRepository, paymentRepo PaymentRepository, validate *validator.Validate, mailer mail.Mailer) *DefaultBookingService {
	return &DefaultBookingService{BookingRepo: bookingRepo, PaymentRepo: paymentRepo, Validate: validate, Mailer: mailer}
}

// Create records a booking unless the requester already holds one for
// the same date and treatment. The pre-check gives the friendly
// conflict message; the store's unique index backstops concurrent
// submissions that race past it, and both paths reject identically.
func (b *DefaultBookingService) Create(req *BookingRequest) (*BookingResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := b.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := b.BookingRepo.FindClaim(req.AppointmentDate, req.Treatment, req.Email)
	if err != nil {
		log.Errorf("failed to check existing booking for %s: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, duplicateBookingError(req.AppointmentDate)
	}

	now := utils.NowUTC()
	booking := &entity.Booking{
		ID:              uuid.NewString(),
		AppointmentDate: req.AppointmentDate,
		Treatment:       req.Treatment,
		Slot:            req.Slot,
		Email:           req.Email,
		PatientName:     req.PatientName,
		Phone:           req.Phone,
		Price:           req.Price,
		Paid:            false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = b.BookingRepo.Save(booking)
	if errors.Is(err, repository.ErrDuplicateBooking) {
		return nil, duplicateBookingError(req.AppointmentDate)
	}
	if err != nil {
		log.Errorf("failed to save booking: %v", err)
		return nil, apierror.InternalServerError
	}
	return toBookingResponse(booking), nil
}

// ListByEmail returns a requester's bookings. A caller may only list
// their own.
func (b *DefaultBookingService) ListByEmail(email, caller string) ([]*BookingResponse, apierror.ErrorResponse) {
	if caller != email {
		return nil, apierror.NewForbidden("you may only list your own bookings")
	}

	bookings, err := b.BookingRepo.FindByEmail(email)
	if err != nil {
		log.Errorf("failed to list bookings for %s: %v", email, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp[i] = toBookingResponse(booking)
	}
	return resp, nil
}

func (b *DefaultBookingService) Get(id string) (*BookingResponse, apierror.ErrorResponse) {
	booking, err := b.BookingRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch booking %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if booking == nil {
		return nil, apierror.NotFoundError
	}
	return toBookingResponse(booking), nil
}

// ConfirmPayment stores the payment record, then best-effort marks the
// referenced booking paid. A payment against an unknown booking id is
// still stored; the zero-row update is not a failure. The receipt mail
// is a single attempt and never surfaces to the caller.
func (b *DefaultBookingService) ConfirmPayment(req *PaymentRequest) (*PaymentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := b.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	payment := &entity.Payment{
		ID:            uuid.NewString(),
		BookingID:     req.BookingID,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Email:         req.Email,
		CreatedAt:     utils.NowUTC(),
	}

	if err := b.PaymentRepo.Save(payment); err != nil {
		log.Errorf("failed to store payment for booking %s: %v", req.BookingID, err)
		return nil, apierror.InternalServerError
	}

	if err := b.BookingRepo.MarkPaid(req.BookingID, req.TransactionID); err != nil {
		log.Errorf("failed to mark booking %s paid: %v", req.BookingID, err)
	}

	b.sendReceipt(payment)

	return &PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		CreatedAt:     utils.FormatEpoch(payment.CreatedAt),
	}, nil
}

func (b *DefaultBookingService) sendReceipt(payment *entity.Payment) {
	if b.Mailer == nil {
		return
	}

	booking, err := b.BookingRepo.FindByID(payment.BookingID)
	if err != nil || booking == nil || booking.Email == "" {
		return
	}

	pdf, err := invoice.Render(booking, payment)
	if err != nil {
		log.Errorf("failed to render receipt for booking %s: %v", booking.ID, err)
		return
	}

	body := fmt.Sprintf("Your payment for %s on %s is confirmed.", booking.Treatment, booking.AppointmentDate)
	att := &mail.Attachment{Name: "receipt.pdf", Data: pdf}
	if err := b.Mailer.Send(booking.Email, "Payment confirmation", body, att); err != nil {
		log.Errorf("failed to send receipt for booking %s: %v", booking.ID, err)
	}
}

func duplicateBookingError(date string) apierror.ErrorResponse {
	return apierror.NewConflict(fmt.Sprintf("you already have a booking on %s", date))
}

func toBookingResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		AppointmentDate: booking.AppointmentDate,
		Treatment:       booking.Treatment,
		Slot:            booking.Slot,
		Email:           booking.Email,
		PatientName:     booking.PatientName,
		Phone:           booking.Phone,
		Price:           booking.Price,
		Paid:            booking.Paid,
		TransactionID:   booking.TransactionID,
		CreatedAt:       utils.FormatEpoch(booking.CreatedAt),
	}
}
