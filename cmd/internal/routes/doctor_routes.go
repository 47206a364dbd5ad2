package routes

import (
	"net/http"
	"strings"

	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type DoctorService interface {
	AddDoctor(req *service.DoctorRequest) (*service.DoctorResponse, apierror.ErrorResponse)
	GetDoctors() ([]*service.DoctorResponse, apierror.ErrorResponse)
	RemoveDoctor(id string) apierror.ErrorResponse
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) AddDoctor(c echo.Context) error {
	var req service.DoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	doctor, apierr := d.DoctorService.AddDoctor(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, doctor)
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"doctors": doctors}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDoctorRoute) RemoveDoctor(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		apierr := apierror.NewMissingParamError("id")
		return c.JSON(apierr.Code(), apierr)
	}

	if apierr := d.DoctorService.RemoveDoctor(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
