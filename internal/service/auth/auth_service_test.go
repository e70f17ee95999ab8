package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/utils"
	"github.com/HotelkaWants/ASMR-UK/internal/service/users"
)

type AuthSuite struct {
	suite.Suite

	ctx context.Context
	svc *Service
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupTest() {
	s.ctx = context.Background()
	mem := store.NewMemory()
	usersSvc := users.NewService(mem)
	s.svc = NewService(usersSvc)

	_, err := mem.InsertDZO(s.ctx, &domain.DZO{Name: "ООО Ромашка", Address: "Москва"})
	s.Require().NoError(err)
	_, err = usersSvc.Create(s.ctx, &domain.CreateUserRequest{
		FullName: "Иванов Иван Иванович",
		Login:    "ivanov",
		Password: "секрет",
		Role:     constants.RoleAdminUK,
		DZOID:    1,
	})
	s.Require().NoError(err)
}

func (s *AuthSuite) TestLogin() {
	user, token, err := s.svc.Login(s.ctx, &domain.LoginRequest{Login: "ivanov", Password: "секрет"})
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Require().NotEmpty(token)

	claims, err := utils.ParseAuthToken(token)
	s.Require().NoError(err)
	s.Equal(user.ID, claims.UserID)
	s.Equal(constants.RoleAdminUK, claims.Role)
}

func (s *AuthSuite) TestLoginWrongPassword() {
	user, token, err := s.svc.Login(s.ctx, &domain.LoginRequest{Login: "ivanov", Password: "не тот"})
	s.ErrorIs(err, constants.ErrUnauthorized)
	s.Nil(user)
	s.Empty(token)
}

func (s *AuthSuite) TestLoginUnknownUser() {
	_, _, err := s.svc.Login(s.ctx, &domain.LoginRequest{Login: "petrov", Password: "секрет"})
	s.ErrorIs(err, constants.ErrUnauthorized)
}

func (s *AuthSuite) TestParseGarbageToken() {
	_, err := utils.ParseAuthToken("не.jwt.вовсе")
	s.ErrorIs(err, constants.ErrInvalidAuthToken)
}
