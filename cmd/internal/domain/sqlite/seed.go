package sqlite

import (
	"doctorsportal/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

var defaultCatalog = []*entity.AppointmentOption{
	{Name: "Teeth Orthodontics", Price: 100, Slots: defaultSlots()},
	{Name: "Cosmetic Dentistry", Price: 300, Slots: defaultSlots()},
	{Name: "Teeth Whitening", Price: 80, Slots: defaultSlots()},
	{Name: "Cavity Protection", Price: 60, Slots: defaultSlots()},
	{Name: "Pediatric Dental", Price: 70, Slots: defaultSlots()},
	{Name: "Oral Surgery", Price: 500, Slots: defaultSlots()},
}

func defaultSlots() entity.StringList {
	return entity.StringList{
		"08:00 AM - 09:00 AM",
		"09:00 AM - 10:00 AM",
		"10:00 AM - 11:00 AM",
		"11:00 AM - 12:00 PM",
		"01:00 PM - 02:00 PM",
		"02:00 PM - 03:00 PM",
		"03:00 PM - 04:00 PM",
		"04:00 PM - 05:00 PM",
	}
}

// SeedCatalog inserts the default treatment catalog when the options
// table is empty. Catalog management itself lives outside this service;
// the seed only makes a fresh install usable.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.AppointmentOption{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&defaultCatalog).Error
}
