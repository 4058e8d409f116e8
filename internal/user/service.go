package user

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quizmaster/internal/auth"
	"quizmaster/internal/config"
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	Profile(ctx context.Context, userID string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, dto UpdateProfileDTO) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" || dto.Email == "" || dto.Password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email during registration")
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := User{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hash),
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Email, auth.TokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue token after registration")
		return nil, err
	}

	log.Info("User registered", "user_id", u.ID.String())

	return &AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    UserResponse{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	if dto.Email == "" || dto.Password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up email during login")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Email, auth.TokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue token after login")
		return nil, err
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    UserResponse{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}

func (s *service) Profile(ctx context.Context, userID string) (*ProfileResponse, error) {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch user")
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	stats, err := s.repo.Stats(id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch profile stats")
		return nil, err
	}

	return &ProfileResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		TotalQuizzes: stats.TotalQuizzes,
		AverageScore: stats.AverageScore,
		LastQuizDate: stats.LastQuizDate,
	}, nil
}

// UpdateProfile only touches the columns the caller actually provided. A new
// password is hashed before it is stored.
func (s *service) UpdateProfile(ctx context.Context, userID string, dto UpdateProfileDTO) error {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	columns := map[string]interface{}{}
	if dto.Name != nil && *dto.Name != "" {
		columns["name"] = *dto.Name
	}
	if dto.Email != nil && *dto.Email != "" {
		columns["email"] = *dto.Email
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Error("Failed to hash new password")
			return err
		}
		columns["password"] = string(hash)
	}

	if len(columns) == 0 {
		return ErrMissingFields
	}

	if err := s.repo.UpdateColumns(id, columns); err != nil {
		log.WithError(err).Error("Failed to update profile")
		return err
	}

	log.Info("Profile updated", "user_id", userID)
	return nil
}
