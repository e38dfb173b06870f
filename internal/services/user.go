package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserRole(ctx context.Context, id string) (string, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.userRepo.GetByID(ctx, nil, id)
}

// GetUserRole falls back to the plain user role when the account is unknown,
// mirroring how the console treats missing accounts as non-admin.
func (s *userService) GetUserRole(ctx context.Context, id string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return types.RoleUser, nil
	}
	return user.Role, nil
}
