package repositories

import (
	"realty-server/db"
	"realty-server/entities"
)

type bookingGormRepository struct {
	db db.Database
}

func NewBookingGormRepository(database db.Database) BookingRepository {
	return &bookingGormRepository{db: database}
}

func (r *bookingGormRepository) Create(booking *entities.ServiceBooking) error {
	return r.db.GetDB().Create(booking).Error
}

func (r *bookingGormRepository) GetByID(id string) (*entities.ServiceBooking, error) {
	var booking entities.ServiceBooking
	err := r.db.GetDB().Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingGormRepository) GetAll() ([]entities.ServiceBooking, error) {
	var bookings []entities.ServiceBooking
	err := r.db.GetDB().Find(&bookings).Error
	return bookings, err
}
