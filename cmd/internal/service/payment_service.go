package service

import (
	"math"

	"doctorsportal/cmd/internal/integration/payment"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type DefaultPaymentService struct {
	Intents  payment.IntentClient
	Validate *validator.Validate
}

func NewPaymentService(intents payment.IntentClient, validate *validator.Validate) *DefaultPaymentService {
	return &DefaultPaymentService{Intents: intents, Validate: validate}
}

// CreateIntent asks the provider for a charge intent covering the given
// price. Single attempt; a provider failure is reported as an upstream
// failure, never swallowed.
func (p *DefaultPaymentService) CreateIntent(req *PaymentIntentRequest) (*payment.Intent, apierror.ErrorResponse) {
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	amountMinor := int64(math.Round(req.Price * 100))
	intent, err := p.Intents.CreateIntent(amountMinor)
	if err != nil {
		log.Errorf("failed to create charge intent for %.2f: %v", req.Price, err)
		return nil, apierror.NewUpstreamFailure("payment provider rejected the charge intent")
	}
	return intent, nil
}
