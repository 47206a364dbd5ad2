package routes

import (
	"net/http"

	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AvailabilityService interface {
	Resolve(date string, strategy service.Strategy) ([]*service.OptionResponse, apierror.ErrorResponse)
	Specialties() ([]string, apierror.ErrorResponse)
}

type DefaultAvailabilityRoute struct {
	AvailabilityService AvailabilityService
}

func NewAvailabilityDefault(availabilityService AvailabilityService) *DefaultAvailabilityRoute {
	return &DefaultAvailabilityRoute{AvailabilityService: availabilityService}
}

// GetOptions resolves availability in process. The date query parameter
// is taken as-is; a missing or unparseable one simply filters against
// nothing and yields the full catalog.
func (a *DefaultAvailabilityRoute) GetOptions(c echo.Context) error {
	return a.resolve(c, service.StrategyCatalog)
}

// GetOptionsV2 resolves the same availability inside the store.
func (a *DefaultAvailabilityRoute) GetOptionsV2(c echo.Context) error {
	return a.resolve(c, service.StrategyStore)
}

func (a *DefaultAvailabilityRoute) resolve(c echo.Context, strategy service.Strategy) error {
	date := c.QueryParam("date")

	opts, apierr := a.AvailabilityService.Resolve(date, strategy)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"options": opts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAvailabilityRoute) GetSpecialties(c echo.Context) error {
	names, apierr := a.AvailabilityService.Specialties()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"specialties": names}
	return c.JSON(http.StatusOK, &resp)
}
