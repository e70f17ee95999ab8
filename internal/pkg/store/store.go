package store

import (
	"context"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store — абстрактное реляционное хранилище шести сущностей. Методы Get*
// возвращают (nil, nil), когда записи нет: отсутствие — не ошибка, проверки
// целостности поверх этих операций живут в сервисном слое.
type Store interface {
	InsertAnalyticType(ctx context.Context, at *domain.AnalyticType) error
	GetAnalyticTypeByID(ctx context.Context, id string) (*domain.AnalyticType, error)
	ListAnalyticTypes(ctx context.Context) ([]*domain.AnalyticType, error)
	UpdateAnalyticTypeName(ctx context.Context, id, name string) error
	DeleteAnalyticType(ctx context.Context, id string) error
	CountAnalyticsByType(ctx context.Context, typeID string) (int64, error)

	InsertAnalytic(ctx context.Context, a *domain.Analytic) error
	GetAnalyticByID(ctx context.Context, typeID, id string) (*domain.Analytic, error)
	ListAnalytics(ctx context.Context) ([]*domain.Analytic, error)
	ListAnalyticsByType(ctx context.Context, typeID string) ([]*domain.Analytic, error)
	UpdateAnalyticName(ctx context.Context, typeID, id, name string) error
	DeleteAnalytic(ctx context.Context, typeID, id string) error

	InsertIndicator(ctx context.Context, ind *domain.Indicator) error
	GetIndicatorByID(ctx context.Context, id string) (*domain.Indicator, error)
	ListIndicators(ctx context.Context) ([]*domain.Indicator, error)
	UpdateIndicator(ctx context.Context, ind *domain.Indicator) error
	DeleteIndicator(ctx context.Context, id string) error

	InsertValue(ctx context.Context, v *domain.ValueIndicator) error
	GetValueByKey(ctx context.Context, key domain.ValueKey) (*domain.ValueIndicator, error)
	ListValues(ctx context.Context) ([]*domain.ValueIndicator, error)
	UpdateValueByKey(ctx context.Context, oldKey domain.ValueKey, v *domain.ValueIndicator) error
	DeleteValueByKey(ctx context.Context, key domain.ValueKey) error

	InsertDZO(ctx context.Context, d *domain.DZO) (int64, error)
	GetDZOByID(ctx context.Context, id int64) (*domain.DZO, error)
	ListDZOs(ctx context.Context) ([]*domain.DZO, error)
	UpdateDZO(ctx context.Context, d *domain.DZO) error
	DeleteDZO(ctx context.Context, id int64) error

	InsertUser(ctx context.Context, u *domain.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
	DeleteUser(ctx context.Context, id int64) error

	// CopyRows — невалидируемая массовая загрузка: либо все строки, либо ни
	// одной.
	CopyRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
}

type pgStore struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &pgStore{pool: pool}
}
