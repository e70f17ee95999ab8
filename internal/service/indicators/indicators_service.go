package indicators

import (
	"context"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

// Service ведёт справочник показателей; каждая из трёх необязательных
// ссылок на вид аналитики проверяется только когда заполнена.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, ind *domain.Indicator) error {
	existing, err := s.store.GetIndicatorByID(ctx, ind.ID)
	if err != nil {
		return storageErr(ctx, "get indicator %q: %v", ind.ID, err)
	}
	if existing != nil {
		return constants.ErrConflict.Wrapf("показатель %q уже существует", ind.ID)
	}

	if err := s.checkAnalyticTypeRefs(ctx, ind); err != nil {
		return err
	}

	if err := s.store.InsertIndicator(ctx, ind); err != nil {
		return storageErr(ctx, "insert indicator %q: %v", ind.ID, err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Indicator, error) {
	ind, err := s.store.GetIndicatorByID(ctx, id)
	if err != nil {
		return nil, storageErr(ctx, "get indicator %q: %v", id, err)
	}
	return ind, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Indicator, error) {
	inds, err := s.store.ListIndicators(ctx)
	if err != nil {
		return nil, storageErr(ctx, "list indicators: %v", err)
	}
	return inds, nil
}

// Update перепроверяет ссылки уже по новым значениям и заменяет строку
// целиком по неизменяемому ключу.
func (s *Service) Update(ctx context.Context, ind *domain.Indicator) error {
	if err := s.checkAnalyticTypeRefs(ctx, ind); err != nil {
		return err
	}

	if err := s.store.UpdateIndicator(ctx, ind); err != nil {
		return storageErr(ctx, "update indicator %q: %v", ind.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.store.GetIndicatorByID(ctx, id)
	if err != nil {
		return storageErr(ctx, "get indicator %q: %v", id, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("показатель %q", id)
	}

	if err := s.store.DeleteIndicator(ctx, id); err != nil {
		return storageErr(ctx, "delete indicator %q: %v", id, err)
	}
	return nil
}

func (s *Service) checkAnalyticTypeRefs(ctx context.Context, ind *domain.Indicator) error {
	for _, ref := range []*string{ind.AnalyticType1, ind.AnalyticType2, ind.AnalyticType3} {
		ref = domain.NullIfEmpty(ref)
		if ref == nil {
			continue
		}
		parent, err := s.store.GetAnalyticTypeByID(ctx, *ref)
		if err != nil {
			return storageErr(ctx, "get analytic type %q: %v", *ref, err)
		}
		if parent == nil {
			return constants.ErrForeignKey.Wrapf("вид аналитики %q не найден", *ref)
		}
	}
	return nil
}

func storageErr(ctx context.Context, format string, args ...any) error {
	logger.Errorf(ctx, format, args...)
	return constants.ErrStorage.Wrapf(format, args...)
}
