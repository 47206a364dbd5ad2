package routes

import (
	"net/http"

	"doctorsportal/cmd/internal/integration/payment"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type PaymentService interface {
	CreateIntent(req *service.PaymentIntentRequest) (*payment.Intent, apierror.ErrorResponse)
}

type DefaultPaymentRoute struct {
	PaymentService PaymentService
}

func NewPaymentDefault(paymentService PaymentService) *DefaultPaymentRoute {
	return &DefaultPaymentRoute{PaymentService: paymentService}
}

func (p *DefaultPaymentRoute) CreatePaymentIntent(c echo.Context) error {
	var req service.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	intent, apierr := p.PaymentService.CreateIntent(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, intent)
}
