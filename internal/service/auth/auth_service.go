package auth

import (
	"context"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/utils"
	"github.com/HotelkaWants/ASMR-UK/internal/service/users"
)

type Service struct {
	users *users.Service
}

func NewService(users *users.Service) *Service {
	return &Service{users: users}
}

// Login сверяет учётные данные и выпускает сессионный токен с ролью.
func (svc *Service) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, string, error) {
	user, err := svc.users.GetByCredentials(ctx, req.Login, req.Password)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", constants.ErrUnauthorized
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, "", err
	}

	return user, authToken, nil
}
