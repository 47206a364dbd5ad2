package validators

import (
	"regexp"

	"doctorsportal/cmd/internal/utils"
	"github.com/go-playground/validator/v10"
)

var slotLabelPattern = regexp.MustCompile(`^\d{2}:\d{2} (AM|PM) - \d{2}:\d{2} (AM|PM)$`)

// IsAppointmentDate accepts calendar dates in the catalog's fixed
// "MMM DD, YYYY" format.
func IsAppointmentDate(fl validator.FieldLevel) bool {
	return utils.IsAppointmentDate(fl.Field().String())
}

// IsSlotLabel accepts slot display strings like "08:00 AM - 09:00 AM".
func IsSlotLabel(fl validator.FieldLevel) bool {
	return slotLabelPattern.MatchString(fl.Field().String())
}
