package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

// Service ведёт пользователей. Пароль живёт только как bcrypt-хэш: хэшируется
// при создании и обновлении, сверяется односторонним сравнением при входе.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	dzo, err := s.store.GetDZOByID(ctx, req.DZOID)
	if err != nil {
		return nil, storageErr(ctx, "get dzo %d: %v", req.DZOID, err)
	}
	if dzo == nil {
		return nil, constants.ErrForeignKey.Wrapf("ДЗО %d не найдено", req.DZOID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storageErr(ctx, "hash password for %q: %v", req.Login, err)
	}

	u := &domain.User{
		FullName:     req.FullName,
		Login:        req.Login,
		PasswordHash: string(hash),
		Role:         req.Role,
		DZOID:        req.DZOID,
	}
	id, err := s.store.InsertUser(ctx, u)
	if err != nil {
		return nil, storageErr(ctx, "insert user %q: %v", req.Login, err)
	}
	u.ID = id
	return u, nil
}

// GetByCredentials возвращает пользователя только при совпадении логина и
// пароля; иначе (nil, nil), различие "нет такого логина" и "пароль не
// подошёл" наружу не отдаётся.
func (s *Service) GetByCredentials(ctx context.Context, login, password string) (*domain.User, error) {
	u, err := s.store.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, storageErr(ctx, "get user %q: %v", login, err)
	}
	if u == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, storageErr(ctx, "get user %d: %v", id, err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	us, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, storageErr(ctx, "list users: %v", err)
	}
	return us, nil
}

// Update перепроверяет ссылку на ДЗО по новому значению и всегда хэширует
// присланный пароль заново.
func (s *Service) Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) error {
	dzo, err := s.store.GetDZOByID(ctx, req.DZOID)
	if err != nil {
		return storageErr(ctx, "get dzo %d: %v", req.DZOID, err)
	}
	if dzo == nil {
		return constants.ErrForeignKey.Wrapf("ДЗО %d не найдено", req.DZOID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return storageErr(ctx, "hash password for %q: %v", req.Login, err)
	}

	u := &domain.User{
		ID:           id,
		FullName:     req.FullName,
		Login:        req.Login,
		PasswordHash: string(hash),
		Role:         req.Role,
		DZOID:        req.DZOID,
	}
	if err := s.store.UpdateUser(ctx, u); err != nil {
		return storageErr(ctx, "update user %d: %v", id, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return storageErr(ctx, "get user %d: %v", id, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("пользователь %d", id)
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return storageErr(ctx, "delete user %d: %v", id, err)
	}
	return nil
}

func storageErr(ctx context.Context, format string, args ...any) error {
	logger.Errorf(ctx, format, args...)
	return constants.ErrStorage.Wrapf(format, args...)
}
