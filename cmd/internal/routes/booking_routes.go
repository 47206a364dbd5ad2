package routes

import (
	"net/http"
	"strings"

	"doctorsportal/cmd/internal/auth"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type BookingService interface {
	Create(req *service.BookingRequest) (*service.BookingResponse, apierror.ErrorResponse)
	ListByEmail(email, caller string) ([]*service.BookingResponse, apierror.ErrorResponse)
	Get(id string) (*service.BookingResponse, apierror.ErrorResponse)
	ConfirmPayment(req *service.PaymentRequest) (*service.PaymentResponse, apierror.ErrorResponse)
}

type DefaultBookingRoute struct {
	BookingService BookingService
}

func NewBookingDefault(bookingService BookingService) *DefaultBookingRoute {
	return &DefaultBookingRoute{BookingService: bookingService}
}

func (b *DefaultBookingRoute) CreateBooking(c echo.Context) error {
	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	booking, apierr := b.BookingService.Create(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (b *DefaultBookingRoute) GetBookings(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if email == "" {
		apierr := apierror.NewMissingParamError("email")
		return c.JSON(apierr.Code(), apierr)
	}

	ident, ok := auth.IdentityFrom(c)
	if !ok {
		return c.JSON(apierror.MissingTokenError.Code(), apierror.MissingTokenError)
	}

	bookings, apierr := b.BookingService.ListByEmail(email, ident.Email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"bookings": bookings}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBookingRoute) GetBooking(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		apierr := apierror.NewMissingParamError("id")
		return c.JSON(apierr.Code(), apierr)
	}

	booking, apierr := b.BookingService.Get(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, booking)
}

func (b *DefaultBookingRoute) CreatePayment(c echo.Context) error {
	var req service.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	paid, apierr := b.BookingService.ConfirmPayment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, paid)
}
