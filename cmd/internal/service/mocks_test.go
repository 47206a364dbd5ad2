package service

import (
	"errors"
	"fmt"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/sqlite/repository"
	"doctorsportal/cmd/internal/integration/mail"
	"doctorsportal/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func newTestValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("apptdate", validators.IsAppointmentDate)
	_ = v.RegisterValidation("slotlabel", validators.IsSlotLabel)
	return v
}

// -- Mock repositories --

type mockOptionRepo struct {
	opts      []*entity.AppointmentOption
	available []*entity.AppointmentOption
	err       error
}

func (m *mockOptionRepo) FindAll() ([]*entity.AppointmentOption, error) {
	return m.opts, m.err
}

func (m *mockOptionRepo) FindNames() ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	names := make([]string, len(m.opts))
	for i, opt := range m.opts {
		names[i] = opt.Name
	}
	return names, nil
}

func (m *mockOptionRepo) FindAvailable(string) ([]*entity.AppointmentOption, error) {
	return m.available, m.err
}

type mockBookingRepo struct {
	bookings map[string]*entity.Booking
	saveErr  error
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (m *mockBookingRepo) Save(b *entity.Booking) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for _, existing := range m.bookings {
		if existing.AppointmentDate == b.AppointmentDate &&
			existing.Treatment == b.Treatment &&
			existing.Email == b.Email {
			return repository.ErrDuplicateBooking
		}
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	m.bookings[b.ID] = b
	return nil
}

func (m *mockBookingRepo) FindByID(id string) (*entity.Booking, error) {
	return m.bookings[id], nil
}

func (m *mockBookingRepo) FindByEmail(email string) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range m.bookings {
		if b.Email == email {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) FindByDate(date string) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range m.bookings {
		if b.AppointmentDate == date {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) FindClaim(date, treatment, email string) (*entity.Booking, error) {
	for _, b := range m.bookings {
		if b.AppointmentDate == date && b.Treatment == treatment && b.Email == email {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) MarkPaid(id, transactionID string) error {
	if b, ok := m.bookings[id]; ok {
		b.Paid = true
		b.TransactionID = transactionID
	}
	return nil
}

type mockPaymentRepo struct {
	payments []*entity.Payment
	saveErr  error
}

func (m *mockPaymentRepo) Save(p *entity.Payment) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.payments = append(m.payments, p)
	return nil
}

type mockUserRepo struct {
	users map[string]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entity.User)}
}

func (m *mockUserRepo) FindByEmail(email string) (*entity.User, error) {
	return m.users[email], nil
}

func (m *mockUserRepo) FindAll() ([]*entity.User, error) {
	var result []*entity.User
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepo) Upsert(user *entity.User) error {
	if existing, ok := m.users[user.Email]; ok {
		existing.Name = user.Name
		existing.UpdatedAt = user.UpdatedAt
		*user = *existing
		return nil
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) SetRole(email, role string) (int64, error) {
	user, ok := m.users[email]
	if !ok {
		return 0, nil
	}
	user.Role = role
	return 1, nil
}

type mockDoctorRepo struct {
	doctors map[string]*entity.Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[string]*entity.Doctor)}
}

func (m *mockDoctorRepo) Save(d *entity.Doctor) error {
	if _, ok := m.doctors[d.ID]; ok {
		return errors.New("duplicate doctor id")
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) FindAll() ([]*entity.Doctor, error) {
	var result []*entity.Doctor
	for _, d := range m.doctors {
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDoctorRepo) Delete(id string) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

// -- Collaborator fakes --

type sentMail struct {
	to         string
	subject    string
	attachment *mail.Attachment
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, _ string, attachment *mail.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, attachment: attachment})
	return nil
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token-for-%s", email), nil
}
