package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vaibhavmehta2503/Dine-Qr/entity"
	"github.com/vaibhavmehta2503/Dine-Qr/pkg/identity"
	"github.com/vaibhavmehta2503/Dine-Qr/repository"
	"github.com/vaibhavmehta2503/Dine-Qr/utils"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Signup creates a customer account. A restaurant id may be attached at
// signup (QR onboarding pre-binds the diner to the restaurant they
// scanned); it grants no privileges until an admin raises the role.
func (s *AuthService) Signup(name, email, password string, restaurantID *uint) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, badRequestf("name, email and password are required")
	}

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, storageErr(err)
	}
	if count > 0 {
		return nil, badRequestf("email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		Password:     string(hashed),
		Role:         identity.RoleCustomer,
		RestaurantID: restaurantID,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, storageErr(err)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUnauthenticated
		}
		return "", nil, storageErr(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrUnauthenticated
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, storageErr(err)
	}
	return user, nil
}

func (s *AuthService) ListUsers(caller identity.Identity) ([]entity.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	users, err := s.UserRepo.List()
	if err != nil {
		return nil, storageErr(err)
	}
	return users, nil
}

// UpdateRole changes a user's role. When promoting to staff with a
// restaurant binding, a superadmin may bind to any restaurant; a regular
// admin only to their own.
func (s *AuthService) UpdateRole(caller identity.Identity, userID uint, role string, restaurantID *uint) (*entity.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	switch role {
	case identity.RoleCustomer, identity.RoleStaff, identity.RoleAdmin:
	default:
		return nil, badRequestf("invalid role %q", role)
	}

	var bind *uint
	if role == identity.RoleStaff && restaurantID != nil {
		if caller.Role != identity.RoleSuperadmin && *restaurantID != caller.RestaurantID {
			return nil, ErrForbidden
		}
		bind = restaurantID
	}

	affected, err := s.UserRepo.UpdateRole(userID, role, bind)
	if err != nil {
		return nil, storageErr(err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Profile(userID)
}
