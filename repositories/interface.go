package repositories

import "realty-server/entities"

type PropertyRepository interface {
	Create(property *entities.Property) error
	GetByID(id string) (*entities.Property, error)
	GetAll() ([]entities.Property, error)
}

type BookingRepository interface {
	Create(booking *entities.ServiceBooking) error
	GetByID(id string) (*entities.ServiceBooking, error)
	GetAll() ([]entities.ServiceBooking, error)
}

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetAll() ([]entities.User, error)
}
