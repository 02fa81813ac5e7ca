package repositories

import (
	"realty-server/db"
	"realty-server/entities"
)

type propertyGormRepository struct {
	db db.Database
}

func NewPropertyGormRepository(database db.Database) PropertyRepository {
	return &propertyGormRepository{db: database}
}

func (r *propertyGormRepository) Create(property *entities.Property) error {
	return r.db.GetDB().Create(property).Error
}

func (r *propertyGormRepository) GetByID(id string) (*entities.Property, error) {
	var property entities.Property
	err := r.db.GetDB().Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyGormRepository) GetAll() ([]entities.Property, error) {
	var properties []entities.Property
	err := r.db.GetDB().Find(&properties).Error
	return properties, err
}
