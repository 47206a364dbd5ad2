package service

import (
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

// Strategy selects where the slot set difference is computed. Both
// strategies must return identical results for identical inputs.
type Strategy int

const (
	// StrategyCatalog subtracts booked slots in process.
	StrategyCatalog Strategy = iota
	// StrategyStore pushes the subtraction into the database.
	StrategyStore
)

type OptionRepository interface {
	FindAll() ([]*entity.AppointmentOption, error)
	FindNames() ([]string, error)
	FindAvailable(date string) ([]*entity.AppointmentOption, error)
}

type OptionResponse struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Slots []string `json:"slots"`
}

type DefaultAvailabilityService struct {
	OptionRepo  OptionRepository
	BookingRepo BookingRepository
}

func NewAvailabilityService(optionRepo OptionRepository, bookingRepo BookingRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{OptionRepo: optionRepo, BookingRepo: bookingRepo}
}

// Resolve returns every catalog option with its slot list narrowed to
// the slots still unbooked on the given date. An absent or malformed
// date matches no bookings, so the full catalog comes back untouched;
// that is accepted behavior, not an error.
func (a *DefaultAvailabilityService) Resolve(date string, strategy Strategy) ([]*OptionResponse, apierror.ErrorResponse) {
	var (
		opts []*entity.AppointmentOption
		err  error
	)

	switch strategy {
	case StrategyStore:
		opts, err = a.OptionRepo.FindAvailable(date)
	default:
		opts, err = a.resolveInProcess(date)
	}

	if err != nil {
		log.Errorf("failed to resolve availability for %q: %v", date, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*OptionResponse, len(opts))
	for i, opt := range opts {
		resp[i] = toOptionResponse(opt)
	}
	return resp, nil
}

func (a *DefaultAvailabilityService) resolveInProcess(date string) ([]*entity.AppointmentOption, error) {
	opts, err := a.OptionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	bookings, err := a.BookingRepo.FindByDate(date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]map[string]bool)
	for _, b := range bookings {
		if booked[b.Treatment] == nil {
			booked[b.Treatment] = make(map[string]bool)
		}
		booked[b.Treatment][b.Slot] = true
	}

	resolved := make([]*entity.AppointmentOption, len(opts))
	for i, opt := range opts {
		resolved[i] = &entity.AppointmentOption{
			ID:    opt.ID,
			Name:  opt.Name,
			Price: opt.Price,
			Slots: subtractSlots(opt.Slots, booked[opt.Name]),
		}
	}
	return resolved, nil
}

// Specialties returns the treatment names only, in catalog order.
func (a *DefaultAvailabilityService) Specialties() ([]string, apierror.ErrorResponse) {
	names, err := a.OptionRepo.FindNames()
	if err != nil {
		log.Errorf("failed to list specialties: %v", err)
		return nil, apierror.InternalServerError
	}
	return names, nil
}

// subtractSlots removes taken slots by value equality, preserving the
// catalog's slot order.
func subtractSlots(slots entity.StringList, taken map[string]bool) entity.StringList {
	remaining := make(entity.StringList, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot] {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

func toOptionResponse(opt *entity.AppointmentOption) *OptionResponse {
	return &OptionResponse{
		Name:  opt.Name,
		Price: opt.Price,
		Slots: opt.Slots,
	}
}
