package user

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/pkg/jwt"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		RegisterUser(ctx context.Context, req domain.UserRegisterRequest) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		log            *zap.Logger
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		log:            log,
	}
}

func checkPassword(password string) error {
	if password == "" {
		return domain.NewInvalidStateError(domain.MessagePasswordRequired)
	}
	if len(password) < 6 {
		return domain.NewInvalidStateError(domain.MessagePasswordTooShort)
	}
	return nil
}

// RegisterUser creates an account. Whatever authorities or status flags the
// request carried are overridden: every new user starts active with exactly
// one ROLE_USER authority.
func (s *userService) RegisterUser(ctx context.Context, req domain.UserRegisterRequest) (*entities.User, error) {
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:                req.Username,
		Password:                string(hashed),
		IsAccountNonExpired:     true,
		IsAccountNonLocked:      true,
		IsCredentialsNonExpired: true,
		IsEnabled:               true,
		Authorities:             []entities.Role{{Role: domain.RoleUser}},
		UserMeta: &entities.UserMeta{
			Email: req.Email,
			Name:  req.Name,
		},
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, domain.NewInvalidStateError("%s", err.Error())
	}

	if utils.GetConfig("SMTP_HOST") != "" {
		go func(email, name string) {
			body := fmt.Sprintf("<p>Hi %s, welcome to the recipe API! You can now post recipes and reviews.</p>", name)
			if err := mailing.SendMail(email, "Welcome!", body); err != nil {
				s.log.Warn(domain.MessageWelcomeMailFailed, zap.Error(err))
			}
		}(req.Email, req.Name)
	}

	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MessageUsernameNotValid, username)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MessageNoUserWithID, id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	user, err := s.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsWrong
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserLoginResponse{}, domain.ErrCredentialsWrong
	}

	role := domain.RoleUser
	if len(user.Authorities) > 0 {
		role = user.Authorities[0].Role
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), role)
	return domain.UserLoginResponse{Token: token, Role: role}, nil
}
