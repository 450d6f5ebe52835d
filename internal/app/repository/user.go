// internal/app/repository/user.go
package repository

import (
	"errors"
	"fmt"

	"MarketStat-Backend/internal/app/ds"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrLoginTaken возвращается при попытке регистрации с занятым логином
var ErrLoginTaken = errors.New("login already taken")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// RegisterUser регистрирует пользователя, пароль хранится как bcrypt-хэш
func (r *UserRepository) RegisterUser(user *ds.Users) error {
	var existing ds.Users
	err := r.db.Where("login = ?", user.Login).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: %s", ErrLoginTaken, user.Login)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hash)

	return r.db.Create(user).Error
}

// AuthenticateUser проверяет логин и пароль
func (r *UserRepository) AuthenticateUser(login, password string) (*ds.Users, error) {
	var user ds.Users
	if err := r.db.Where("login = ?", login).First(&user).Error; err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return &user, nil
}

// GetUserProfile возвращает профиль пользователя по ID
func (r *UserRepository) GetUserProfile(userID uint) (*ds.Users, error) {
	var user ds.Users
	if err := r.db.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile обновляет логин и/или пароль пользователя
func (r *UserRepository) UpdateUserProfile(userID uint, login, password *string) error {
	updates := map[string]interface{}{}

	if login != nil && *login != "" {
		updates["login"] = *login
	}
	if password != nil && *password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %v", err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Users{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
