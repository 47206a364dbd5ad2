package service

import (
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type DoctorRepository interface {
	Save(doctor *entity.Doctor) error
	FindAll() ([]*entity.Doctor, error)
	Delete(id string) (int64, error)
}

type DoctorRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=128"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Specialty string   `json:"specialty" validate:"required,max=128"`
	Slots     []string `json:"slots" validate:"dive,slotlabel"`
}

type DoctorResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email,omitempty"`
	Specialty string   `json:"specialty"`
	Slots     []string `json:"slots"`
}

type DefaultDoctorService struct {
	DoctorRepo DoctorRepository
	Validate   *validator.Validate
}

func NewDoctorService(doctorRepo DoctorRepository, validate *validator.Validate) *DefaultDoctorService {
	return &DefaultDoctorService{DoctorRepo: doctorRepo, Validate: validate}
}

func (d *DefaultDoctorService) AddDoctor(req *DoctorRequest) (*DoctorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := d.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	doctor := &entity.Doctor{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Slots:     req.Slots,
		CreatedAt: utils.NowUTC(),
	}

	if err := d.DoctorRepo.Save(doctor); err != nil {
		log.Errorf("failed to save doctor: %v", err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponse(doctor), nil
}

func (d *DefaultDoctorService) GetDoctors() ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch doctors: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp[i] = toDoctorResponse(doctor)
	}
	return resp, nil
}

func (d *DefaultDoctorService) RemoveDoctor(id string) apierror.ErrorResponse {
	rows, err := d.DoctorRepo.Delete(id)
	if err != nil {
		log.Errorf("failed to delete doctor %s: %v", id, err)
		return apierror.InternalServerError
	}
	if rows == 0 {
		return apierror.NotFoundError
	}
	return nil
}

func toDoctorResponse(doctor *entity.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Email:     doctor.Email,
		Specialty: doctor.Specialty,
		Slots:     doctor.Slots,
	}
}
