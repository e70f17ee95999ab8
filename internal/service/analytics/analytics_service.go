package analytics

import (
	"context"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

// Service ведёт справочники видов аналитики и аналитик: проверки
// уникальности, ссылок на родительский вид и защита вида от удаления при
// живых аналитиках.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ---------- Виды аналитики ----------

func (s *Service) CreateAnalyticType(ctx context.Context, at *domain.AnalyticType) error {
	existing, err := s.store.GetAnalyticTypeByID(ctx, at.ID)
	if err != nil {
		return storageErr(ctx, "get analytic type %q: %v", at.ID, err)
	}
	if existing != nil {
		return constants.ErrConflict.Wrapf("вид аналитики %q уже существует", at.ID)
	}

	if err := s.store.InsertAnalyticType(ctx, at); err != nil {
		return storageErr(ctx, "insert analytic type %q: %v", at.ID, err)
	}
	return nil
}

func (s *Service) GetAnalyticType(ctx context.Context, id string) (*domain.AnalyticType, error) {
	at, err := s.store.GetAnalyticTypeByID(ctx, id)
	if err != nil {
		return nil, storageErr(ctx, "get analytic type %q: %v", id, err)
	}
	return at, nil
}

func (s *Service) ListAnalyticTypes(ctx context.Context) ([]*domain.AnalyticType, error) {
	ats, err := s.store.ListAnalyticTypes(ctx)
	if err != nil {
		return nil, storageErr(ctx, "list analytic types: %v", err)
	}
	return ats, nil
}

func (s *Service) UpdateAnalyticType(ctx context.Context, id, name string) error {
	existing, err := s.store.GetAnalyticTypeByID(ctx, id)
	if err != nil {
		return storageErr(ctx, "get analytic type %q: %v", id, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("вид аналитики %q", id)
	}

	if err := s.store.UpdateAnalyticTypeName(ctx, id, name); err != nil {
		return storageErr(ctx, "update analytic type %q: %v", id, err)
	}
	return nil
}

// DeleteAnalyticType отклоняет удаление, пока на вид ссылается хотя бы одна
// аналитика.
func (s *Service) DeleteAnalyticType(ctx context.Context, id string) error {
	existing, err := s.store.GetAnalyticTypeByID(ctx, id)
	if err != nil {
		return storageErr(ctx, "get analytic type %q: %v", id, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("вид аналитики %q", id)
	}

	count, err := s.store.CountAnalyticsByType(ctx, id)
	if err != nil {
		return storageErr(ctx, "count analytics of type %q: %v", id, err)
	}
	if count > 0 {
		return constants.ErrConflict.Wrapf("вид аналитики %q: есть связанные аналитики", id)
	}

	if err := s.store.DeleteAnalyticType(ctx, id); err != nil {
		return storageErr(ctx, "delete analytic type %q: %v", id, err)
	}
	return nil
}

// ---------- Аналитики ----------

func (s *Service) CreateAnalytic(ctx context.Context, a *domain.Analytic) error {
	existing, err := s.store.GetAnalyticByID(ctx, a.AnalyticTypeID, a.ID)
	if err != nil {
		return storageErr(ctx, "get analytic %q/%q: %v", a.AnalyticTypeID, a.ID, err)
	}
	if existing != nil {
		return constants.ErrConflict.Wrapf("аналитика %q вида %q уже существует", a.ID, a.AnalyticTypeID)
	}

	parent, err := s.store.GetAnalyticTypeByID(ctx, a.AnalyticTypeID)
	if err != nil {
		return storageErr(ctx, "get analytic type %q: %v", a.AnalyticTypeID, err)
	}
	if parent == nil {
		return constants.ErrForeignKey.Wrapf("вид аналитики %q не найден", a.AnalyticTypeID)
	}

	if err := s.store.InsertAnalytic(ctx, a); err != nil {
		return storageErr(ctx, "insert analytic %q/%q: %v", a.AnalyticTypeID, a.ID, err)
	}
	return nil
}

func (s *Service) GetAnalytic(ctx context.Context, typeID, id string) (*domain.Analytic, error) {
	a, err := s.store.GetAnalyticByID(ctx, typeID, id)
	if err != nil {
		return nil, storageErr(ctx, "get analytic %q/%q: %v", typeID, id, err)
	}
	return a, nil
}

func (s *Service) ListAnalytics(ctx context.Context) ([]*domain.Analytic, error) {
	as, err := s.store.ListAnalytics(ctx)
	if err != nil {
		return nil, storageErr(ctx, "list analytics: %v", err)
	}
	return as, nil
}

func (s *Service) ListAnalyticsByType(ctx context.Context, typeID string) ([]*domain.Analytic, error) {
	as, err := s.store.ListAnalyticsByType(ctx, typeID)
	if err != nil {
		return nil, storageErr(ctx, "list analytics of type %q: %v", typeID, err)
	}
	return as, nil
}

// UpdateAnalytic повторяет предварительную проверку create дословно:
// найденная по этому же ключу строка отклоняется как дубликат, поэтому
// обновление существующей аналитики всегда завершается конфликтом. Поведение
// сохранено сознательно, менять его — продуктовое решение.
func (s *Service) UpdateAnalytic(ctx context.Context, typeID, id, name string) error {
	existing, err := s.store.GetAnalyticByID(ctx, typeID, id)
	if err != nil {
		return storageErr(ctx, "get analytic %q/%q: %v", typeID, id, err)
	}
	if existing != nil {
		return constants.ErrConflict.Wrapf("аналитика %q вида %q уже существует", id, typeID)
	}

	parent, err := s.store.GetAnalyticTypeByID(ctx, typeID)
	if err != nil {
		return storageErr(ctx, "get analytic type %q: %v", typeID, err)
	}
	if parent == nil {
		return constants.ErrForeignKey.Wrapf("вид аналитики %q не найден", typeID)
	}

	if err := s.store.UpdateAnalyticName(ctx, typeID, id, name); err != nil {
		return storageErr(ctx, "update analytic %q/%q: %v", typeID, id, err)
	}
	return nil
}

func (s *Service) DeleteAnalytic(ctx context.Context, typeID, id string) error {
	existing, err := s.store.GetAnalyticByID(ctx, typeID, id)
	if err != nil {
		return storageErr(ctx, "get analytic %q/%q: %v", typeID, id, err)
	}
	if existing == nil {
		return constants.ErrDBNotFound.Wrapf("аналитика %q вида %q", id, typeID)
	}

	if err := s.store.DeleteAnalytic(ctx, typeID, id); err != nil {
		return storageErr(ctx, "delete analytic %q/%q: %v", typeID, id, err)
	}
	return nil
}

func storageErr(ctx context.Context, format string, args ...any) error {
	logger.Errorf(ctx, format, args...)
	return constants.ErrStorage.Wrapf(format, args...)
}
