package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

type UsersSuite struct {
	suite.Suite

	ctx   context.Context
	mem   *store.Memory
	svc   *Service
	dzoID int64
}

func TestUsersSuite(t *testing.T) {
	suite.Run(t, new(UsersSuite))
}

func (s *UsersSuite) SetupTest() {
	s.ctx = context.Background()
	s.mem = store.NewMemory()
	s.svc = NewService(s.mem)

	id, err := s.mem.InsertDZO(s.ctx, &domain.DZO{Name: "ООО Ромашка", Address: "Москва"})
	s.Require().NoError(err)
	s.dzoID = id
}

func (s *UsersSuite) createReq() *domain.CreateUserRequest {
	return &domain.CreateUserRequest{
		FullName: "Иванов Иван Иванович",
		Login:    "ivanov",
		Password: "секрет",
		Role:     constants.RoleAdminUK,
		DZOID:    s.dzoID,
	}
}

func (s *UsersSuite) TestCreate() {
	u, err := s.svc.Create(s.ctx, s.createReq())
	s.Require().NoError(err)
	s.NotZero(u.ID)
	s.NotEqual("секрет", u.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("секрет")))
}

func (s *UsersSuite) TestCreateUnknownDZO() {
	req := s.createReq()
	req.DZOID = 999

	u, err := s.svc.Create(s.ctx, req)
	s.ErrorIs(err, constants.ErrForeignKey)
	s.Nil(u)
}

func (s *UsersSuite) TestGetByCredentials() {
	_, err := s.svc.Create(s.ctx, s.createReq())
	s.Require().NoError(err)

	u, err := s.svc.GetByCredentials(s.ctx, "ivanov", "секрет")
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Equal("ivanov", u.Login)

	// неверный пароль и неизвестный логин неразличимы снаружи
	u, err = s.svc.GetByCredentials(s.ctx, "ivanov", "не тот")
	s.Require().NoError(err)
	s.Nil(u)

	u, err = s.svc.GetByCredentials(s.ctx, "petrov", "секрет")
	s.Require().NoError(err)
	s.Nil(u)
}

func (s *UsersSuite) TestUpdateRehashesPassword() {
	created, err := s.svc.Create(s.ctx, s.createReq())
	s.Require().NoError(err)

	err = s.svc.Update(s.ctx, created.ID, &domain.UpdateUserRequest{
		FullName: "Иванов Иван Иванович",
		Login:    "ivanov",
		Password: "новый",
		Role:     constants.RoleAdminUK,
		DZOID:    s.dzoID,
	})
	s.Require().NoError(err)

	u, err := s.svc.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("новый")))
	s.Error(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("секрет")))
}

func (s *UsersSuite) TestUpdateUnknownDZO() {
	created, err := s.svc.Create(s.ctx, s.createReq())
	s.Require().NoError(err)

	req := &domain.UpdateUserRequest{
		FullName: created.FullName,
		Login:    created.Login,
		Password: "секрет",
		Role:     created.Role,
		DZOID:    999,
	}
	s.ErrorIs(s.svc.Update(s.ctx, created.ID, req), constants.ErrForeignKey)
}

func (s *UsersSuite) TestDeleteMissing() {
	s.ErrorIs(s.svc.Delete(s.ctx, 42), constants.ErrDBNotFound)
}

func (s *UsersSuite) TestDelete() {
	created, err := s.svc.Create(s.ctx, s.createReq())
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Delete(s.ctx, created.ID))

	u, err := s.svc.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Nil(u)
}
