package repository

import (
	"doctorsportal/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{db: db}
}

func (d *DefaultDoctorRepository) Save(doctor *entity.Doctor) error {
	return d.db.Create(doctor).Error
}

func (d *DefaultDoctorRepository) FindAll() ([]*entity.Doctor, error) {
	var doctors []*entity.Doctor
	err := d.db.Order("created_at asc").Find(&doctors).Error
	return doctors, err
}

func (d *DefaultDoctorRepository) Delete(id string) (int64, error) {
	result := d.db.Delete(&entity.Doctor{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
