package repository

import (
	"doctorsportal/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{db: db}
}

func (p *DefaultPaymentRepository) Save(payment *entity.Payment) error {
	return p.db.Create(payment).Error
}
