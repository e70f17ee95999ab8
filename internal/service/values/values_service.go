package values

import (
	"context"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

// Service ведёт значения показателей ДЗО. Уникальность определяет составной
// ключ с null-значимыми analytic_2/analytic_3; ссылка на ДЗО проверяется при
// обновлении, но не при создании — асимметрия исходного поведения.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, v *domain.ValueIndicator) error {
	existing, err := s.store.GetValueByKey(ctx, v.Key())
	if err != nil {
		return storageErr(ctx, "get value of %q: %v", v.IndicatorID, err)
	}
	if existing != nil {
		return constants.ErrConflict.Wrapf("значение показателя %q с такими параметрами уже существует", v.IndicatorID)
	}

	if err := s.store.InsertValue(ctx, v); err != nil {
		return storageErr(ctx, "insert value of %q: %v", v.IndicatorID, err)
	}
	return nil
}

func (s *Service) GetByKey(ctx context.Context, key domain.ValueKey) (*domain.ValueIndicator, error) {
	v, err := s.store.GetValueByKey(ctx, key)
	if err != nil {
		return nil, storageErr(ctx, "get value of %q: %v", key.IndicatorID, err)
	}
	return v, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.ValueIndicator, error) {
	vs, err := s.store.ListValues(ctx)
	if err != nil {
		return nil, storageErr(ctx, "list values: %v", err)
	}
	return vs, nil
}

// Update принимает старый ключ и желаемый образ строки: существование
// проверяется по старому ключу, ссылка на ДЗО — по новому значению, запись
// заменяется одним оператором, так что ключевые части меняются этим же
// вызовом.
func (s *Service) Update(ctx context.Context, oldKey domain.ValueKey, v *domain.ValueIndicator) error {
	existing, err := s.store.GetValueByKey(ctx, oldKey)
	if err != nil {
		return storageErr(ctx, "get value of %q: %v", oldKey.IndicatorID, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("значение показателя %q с такими параметрами", oldKey.IndicatorID)
	}

	dzo, err := s.store.GetDZOByID(ctx, v.DZOID)
	if err != nil {
		return storageErr(ctx, "get dzo %d: %v", v.DZOID, err)
	}
	if dzo == nil {
		return constants.ErrForeignKey.Wrapf("ДЗО %d не найдено", v.DZOID)
	}

	if err := s.store.UpdateValueByKey(ctx, oldKey, v); err != nil {
		return storageErr(ctx, "update value of %q: %v", oldKey.IndicatorID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, key domain.ValueKey) error {
	existing, err := s.store.GetValueByKey(ctx, key)
	if err != nil {
		return storageErr(ctx, "get value of %q: %v", key.IndicatorID, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("значение показателя %q с такими параметрами", key.IndicatorID)
	}

	if err := s.store.DeleteValueByKey(ctx, key); err != nil {
		return storageErr(ctx, "delete value of %q: %v", key.IndicatorID, err)
	}
	return nil
}

func storageErr(ctx context.Context, format string, args ...any) error {
	logger.Errorf(ctx, format, args...)
	return constants.ErrStorage.Wrapf(format, args...)
}
