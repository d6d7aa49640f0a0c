package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hotelops/backoffice/src/apperrors"
	"github.com/hotelops/backoffice/src/middleware"
	"github.com/hotelops/backoffice/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	tokenTTL time.Duration
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB, tokenTTL time.Duration) *UserService {
	return &UserService{db: db, tokenTTL: tokenTTL}
}

// GetAllUsers retrieves all User records from the database
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.UserModel, error) {
	users := []models.UserModel{}
	if err := s.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser stores a new User with a bcrypt hash of the password
func (s *UserService) CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.Validation("username", "is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.UserModel{Username: username, Password: string(hashedPassword)}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.UserModel{}, "username", username, 0, nil); err != nil {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &models.RegisterResponse{ID: user.Id, Username: user.Username}, nil
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (string, error) {
	var users []models.UserModel
	if err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).Limit(1).Find(&users).Error; err != nil {
		return "", err
	}
	if len(users) == 0 {
		return "", apperrors.Unauthorized("invalid username or password")
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Unauthorized("invalid username or password")
	}

	claims := jwt.MapClaims{
		"id":  user.Id,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetSecretKey()))
}
