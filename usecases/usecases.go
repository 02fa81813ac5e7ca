package usecases

import (
	"errors"
	"realty-server/entities"
	"realty-server/repositories"
)

type PropertyUseCase struct {
	PropertyRepo repositories.PropertyRepository
}

func NewPropertyUseCase(propertyRepo repositories.PropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{PropertyRepo: propertyRepo}
}

// CreateProperty creates a new property listing
func (uc *PropertyUseCase) CreateProperty(property *entities.Property) error {
	if property.Title == "" {
		return errors.New("property title is required")
	}
	if property.Price < 0 {
		return errors.New("property price cannot be negative")
	}
	return uc.PropertyRepo.Create(property)
}

// GetProperty retrieves a property by ID
func (uc *PropertyUseCase) GetProperty(id string) (*entities.Property, error) {
	if id == "" {
		return nil, errors.New("property id is required")
	}
	return uc.PropertyRepo.GetByID(id)
}

// GetAllProperties retrieves all property listings
func (uc *PropertyUseCase) GetAllProperties() ([]entities.Property, error) {
	return uc.PropertyRepo.GetAll()
}

type BookingUseCase struct {
	BookingRepo repositories.BookingRepository
}

func NewBookingUseCase(bookingRepo repositories.BookingRepository) *BookingUseCase {
	return &BookingUseCase{BookingRepo: bookingRepo}
}

// CreateBooking creates a new service booking
func (uc *BookingUseCase) CreateBooking(booking *entities.ServiceBooking) error {
	if booking.ServiceType == "" {
		return errors.New("booking service type is required")
	}
	if booking.CustomerName == "" {
		return errors.New("booking customer name is required")
	}
	if booking.Status == "" {
		booking.Status = entities.BookingStatusPending
	}
	return uc.BookingRepo.Create(booking)
}

// GetBooking retrieves a booking by ID
func (uc *BookingUseCase) GetBooking(id string) (*entities.ServiceBooking, error) {
	if id == "" {
		return nil, errors.New("booking id is required")
	}
	return uc.BookingRepo.GetByID(id)
}

// GetAllBookings retrieves all service bookings
func (uc *BookingUseCase) GetAllBookings() ([]entities.ServiceBooking, error) {
	return uc.BookingRepo.GetAll()
}
