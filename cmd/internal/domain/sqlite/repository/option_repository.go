package repository

import (
	"encoding/json"

	"doctorsportal/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultOptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *DefaultOptionRepository {
	return &DefaultOptionRepository{db: db}
}

func (o *DefaultOptionRepository) FindAll() ([]*entity.AppointmentOption, error) {
	var opts []*entity.AppointmentOption
	err := o.db.Order("id asc").Find(&opts).Error
	return opts, err
}

func (o *DefaultOptionRepository) FindNames() ([]string, error) {
	var names []string
	err := o.db.Model(&entity.AppointmentOption{}).
		Order("id asc").
		Pluck("name", &names).Error
	return names, err
}

// FindAvailable computes remaining availability inside the store: one
// query that, per catalog option, subtracts the slots already booked for
// the given date from the option's slot list. Slot order follows the
// catalog's array order (json_each keys), and options whose slots are all
// booked still come back with an empty list.
func (o *DefaultOptionRepository) FindAvailable(date string) ([]*entity.AppointmentOption, error) {
	var rows []struct {
		ID    int
		Name  string
		Price float64
		Slots string
	}

	err := o.db.Raw(`
		SELECT o.id    AS id,
		       o.name  AS name,
		       o.price AS price,
		       (SELECT json_group_array(value) FROM (
		               SELECT je.value AS value
		                 FROM json_each(o.slots) AS je
		                WHERE je.value NOT IN (
		                      SELECT b.slot
		                        FROM bookings b
		                       WHERE b.appointment_date = @date
		                         AND b.treatment = o.name)
		                ORDER BY je.key)) AS slots
		  FROM appointment_options o
		 ORDER BY o.id`,
		map[string]any{"date": date},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	opts := make([]*entity.AppointmentOption, len(rows))
	for i, row := range rows {
		var slots entity.StringList
		if err := json.Unmarshal([]byte(row.Slots), &slots); err != nil {
			return nil, err
		}
		opts[i] = &entity.AppointmentOption{
			ID:    row.ID,
			Name:  row.Name,
			Price: row.Price,
			Slots: slots,
		}
	}
	return opts, nil
}
