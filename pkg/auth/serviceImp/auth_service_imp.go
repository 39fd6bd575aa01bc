package serviceImp

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/auth/service"
	repo "harvestpro/pkg/user/repository"
)

type authSvc struct {
	users      repo.UserRepository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func New(users repo.UserRepository, secret string, ttl time.Duration, bcryptCost int) service.AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authSvc{users: users, secret: []byte(secret), tokenTTL: ttl, bcryptCost: bcryptCost}
}

func (s *authSvc) Register(username, email, fullName, password, role string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if role == "" {
		role = entities.RoleFieldWorker
	}
	if !entities.ValidRole(role) {
		return nil, errors.New("unknown role: " + role)
	}
	if _, err := s.users.FindByUsername(username); err == nil {
		return nil, service.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entities.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authSvc) Login(username, password string) (*entities.User, string, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, "", service.ErrBadCredentials
	}
	if !u.IsActive {
		return nil, "", service.ErrInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", service.ErrBadCredentials
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  u.UserID,
		"role": u.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return nil, "", err
	}
	return u, signed, nil
}
