package repositories

import (
	"realty-server/db"
	"realty-server/entities"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userGormRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userGormRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userGormRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Find(&users).Error
	return users, err
}
