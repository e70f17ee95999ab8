package dzos

import (
	"context"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

// Service ведёт справочник ДЗО. Удаление не проверяет зависимые значения
// показателей и пользователей — так ведёт себя исходная система.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, d *domain.DZO) (int64, error) {
	id, err := s.store.InsertDZO(ctx, d)
	if err != nil {
		return 0, storageErr(ctx, "insert dzo %q: %v", d.Name, err)
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.DZO, error) {
	d, err := s.store.GetDZOByID(ctx, id)
	if err != nil {
		return nil, storageErr(ctx, "get dzo %d: %v", id, err)
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.DZO, error) {
	ds, err := s.store.ListDZOs(ctx)
	if err != nil {
		return nil, storageErr(ctx, "list dzos: %v", err)
	}
	return ds, nil
}

func (s *Service) Update(ctx context.Context, d *domain.DZO) error {
	if err := s.store.UpdateDZO(ctx, d); err != nil {
		return storageErr(ctx, "update dzo %d: %v", d.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.GetDZOByID(ctx, id)
	if err != nil {
		return storageErr(ctx, "get dzo %d: %v", id, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("ДЗО %d", id)
	}

	if err := s.store.DeleteDZO(ctx, id); err != nil {
		return storageErr(ctx, "delete dzo %d: %v", id, err)
	}
	return nil
}

func storageErr(ctx context.Context, format string, args ...any) error {
	logger.Errorf(ctx, format, args...)
	return constants.ErrStorage.Wrapf(format, args...)
}
