package service

import (
	"context"
	"time"

	"notebook-dashboard-be/internal/dto"
	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/pkg/serverutils"
	"notebook-dashboard-be/internal/repository/contract"
	"notebook-dashboard-be/internal/repository/memory"
	"notebook-dashboard-be/internal/repository/specification"
	"notebook-dashboard-be/pkg/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*store.Session, error)
	Logout(token string)
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type authService struct {
	userRepo contract.UserRepository
	sessions *memory.SessionRepository
}

func NewAuthService(userRepo contract.UserRepository, sessions *memory.SessionRepository) IAuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	existing, err := s.userRepo.FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewAppError(serverutils.ErrCodeDuplicateUsername, "Username already exists")
	}

	existing, err = s.userRepo.FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewAppError(serverutils.ErrCodeDuplicateEmail, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*store.Session, error) {
	user, err := s.userRepo.FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	// An unknown username and a wrong password are indistinguishable to
	// the caller.
	if user == nil {
		return nil, serverutils.NewAppError(serverutils.ErrCodeInvalidCredentials, "Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewAppError(serverutils.ErrCodeInvalidCredentials, "Invalid username or password")
	}

	sess := &store.Session{
		Token:     uuid.NewString(),
		UserID:    user.Id,
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	s.sessions.Save(sess)

	return sess, nil
}

func (s *authService) Logout(token string) {
	s.sessions.Delete(token)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	sess, found := s.sessions.Get(token)
	if !found {
		return nil, nil
	}
	return s.userRepo.FindOne(ctx, specification.ByID{ID: sess.UserID})
}
