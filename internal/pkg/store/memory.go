package store

import (
	"context"
	"sort"
	"sync"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

// Memory — хранилище в памяти с теми же контрактами, что и у pgStore
// (включая правило "пусто значит NULL" для частей ключа значения). На нём
// работают тесты сервисного слоя.
type Memory struct {
	mu sync.Mutex

	analyticTypes []*domain.AnalyticType
	analytics     []*domain.Analytic
	indicators    []*domain.Indicator
	values        []*domain.ValueIndicator
	dzos          []*domain.DZO
	users         []*domain.User

	nextDZOID  int64
	nextUserID int64

	copied map[string][][]any
}

func NewMemory() *Memory {
	return &Memory{
		nextDZOID:  1,
		nextUserID: 1,
		copied:     make(map[string][][]any),
	}
}

func cloneOpt(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// sameOpt сравнивает необязательные части ключа: отсутствие совпадает только
// с отсутствием.
func sameOpt(a, b *string) bool {
	a, b = domain.NullIfEmpty(a), domain.NullIfEmpty(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameKey(row *domain.ValueIndicator, k domain.ValueKey) bool {
	return row.IndicatorID == k.IndicatorID &&
		domain.SameDate(row.PeriodStart, k.PeriodStart) &&
		domain.SameDate(row.PeriodEnd, k.PeriodEnd) &&
		row.Analytic1 == k.Analytic1 &&
		sameOpt(row.Analytic2, k.Analytic2) &&
		sameOpt(row.Analytic3, k.Analytic3)
}

// ---------- AnalyticType ----------

func (m *Memory) InsertAnalyticType(_ context.Context, at *domain.AnalyticType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *at
	m.analyticTypes = append(m.analyticTypes, &cp)
	return nil
}

func (m *Memory) GetAnalyticTypeByID(_ context.Context, id string) (*domain.AnalyticType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, at := range m.analyticTypes {
		if at.ID == id {
			cp := *at
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListAnalyticTypes(_ context.Context) ([]*domain.AnalyticType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.AnalyticType, 0, len(m.analyticTypes))
	for _, at := range m.analyticTypes {
		cp := *at
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateAnalyticTypeName(_ context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, at := range m.analyticTypes {
		if at.ID == id {
			at.Name = name
			break
		}
	}
	return nil
}

func (m *Memory) DeleteAnalyticType(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, at := range m.analyticTypes {
		if at.ID == id {
			m.analyticTypes = append(m.analyticTypes[:i], m.analyticTypes[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) CountAnalyticsByType(_ context.Context, typeID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.analytics {
		if a.AnalyticTypeID == typeID {
			n++
		}
	}
	return n, nil
}

// ---------- Analytic ----------

func (m *Memory) InsertAnalytic(_ context.Context, a *domain.Analytic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.analytics = append(m.analytics, &cp)
	return nil
}

func (m *Memory) GetAnalyticByID(_ context.Context, typeID, id string) (*domain.Analytic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.analytics {
		if a.AnalyticTypeID == typeID && a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListAnalytics(_ context.Context) ([]*domain.Analytic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Analytic, 0, len(m.analytics))
	for _, a := range m.analytics {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AnalyticTypeID != out[j].AnalyticTypeID {
			return out[i].AnalyticTypeID < out[j].AnalyticTypeID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) ListAnalyticsByType(ctx context.Context, typeID string) ([]*domain.Analytic, error) {
	all, _ := m.ListAnalytics(ctx)
	out := make([]*domain.Analytic, 0, len(all))
	for _, a := range all {
		if a.AnalyticTypeID == typeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *Memory) UpdateAnalyticName(_ context.Context, typeID, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.analytics {
		if a.AnalyticTypeID == typeID && a.ID == id {
			a.Name = name
			break
		}
	}
	return nil
}

func (m *Memory) DeleteAnalytic(_ context.Context, typeID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.analytics {
		if a.AnalyticTypeID == typeID && a.ID == id {
			m.analytics = append(m.analytics[:i], m.analytics[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- Indicator ----------

func (m *Memory) InsertIndicator(_ context.Context, ind *domain.Indicator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *ind
	cp.AnalyticType1 = domain.NullIfEmpty(cloneOpt(ind.AnalyticType1))
	cp.AnalyticType2 = domain.NullIfEmpty(cloneOpt(ind.AnalyticType2))
	cp.AnalyticType3 = domain.NullIfEmpty(cloneOpt(ind.AnalyticType3))
	m.indicators = append(m.indicators, &cp)
	return nil
}

func (m *Memory) GetIndicatorByID(_ context.Context, id string) (*domain.Indicator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ind := range m.indicators {
		if ind.ID == id {
			cp := *ind
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListIndicators(_ context.Context) ([]*domain.Indicator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Indicator, 0, len(m.indicators))
	for _, ind := range m.indicators {
		cp := *ind
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateIndicator(_ context.Context, ind *domain.Indicator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.indicators {
		if row.ID == ind.ID {
			row.Name = ind.Name
			row.AnalyticType1 = domain.NullIfEmpty(cloneOpt(ind.AnalyticType1))
			row.AnalyticType2 = domain.NullIfEmpty(cloneOpt(ind.AnalyticType2))
			row.AnalyticType3 = domain.NullIfEmpty(cloneOpt(ind.AnalyticType3))
			break
		}
	}
	return nil
}

func (m *Memory) DeleteIndicator(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, ind := range m.indicators {
		if ind.ID == id {
			m.indicators = append(m.indicators[:i], m.indicators[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- ValueIndicator ----------

func (m *Memory) InsertValue(_ context.Context, v *domain.ValueIndicator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *v
	cp.Analytic2 = domain.NullIfEmpty(cloneOpt(v.Analytic2))
	cp.Analytic3 = domain.NullIfEmpty(cloneOpt(v.Analytic3))
	m.values = append(m.values, &cp)
	return nil
}

func (m *Memory) GetValueByKey(_ context.Context, key domain.ValueKey) (*domain.ValueIndicator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.values {
		if sameKey(v, key) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListValues(_ context.Context) ([]*domain.ValueIndicator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.ValueIndicator, 0, len(m.values))
	for _, v := range m.values {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !domain.SameDate(a.PeriodStart, b.PeriodStart) {
			return domain.FormatDate(a.PeriodStart) < domain.FormatDate(b.PeriodStart)
		}
		if !domain.SameDate(a.PeriodEnd, b.PeriodEnd) {
			return domain.FormatDate(a.PeriodEnd) < domain.FormatDate(b.PeriodEnd)
		}
		return a.IndicatorID < b.IndicatorID
	})
	return out, nil
}

func (m *Memory) UpdateValueByKey(_ context.Context, oldKey domain.ValueKey, v *domain.ValueIndicator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.values {
		if sameKey(row, oldKey) {
			cp := *v
			cp.Analytic2 = domain.NullIfEmpty(cloneOpt(v.Analytic2))
			cp.Analytic3 = domain.NullIfEmpty(cloneOpt(v.Analytic3))
			m.values[i] = &cp
			break
		}
	}
	return nil
}

func (m *Memory) DeleteValueByKey(_ context.Context, key domain.ValueKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.values {
		if sameKey(v, key) {
			m.values = append(m.values[:i], m.values[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- DZO ----------

func (m *Memory) InsertDZO(_ context.Context, d *domain.DZO) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	cp.ID = m.nextDZOID
	m.nextDZOID++
	m.dzos = append(m.dzos, &cp)
	return cp.ID, nil
}

func (m *Memory) GetDZOByID(_ context.Context, id int64) (*domain.DZO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.dzos {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListDZOs(_ context.Context) ([]*domain.DZO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.DZO, 0, len(m.dzos))
	for _, d := range m.dzos {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateDZO(_ context.Context, d *domain.DZO) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.dzos {
		if row.ID == d.ID {
			row.Name = d.Name
			row.Address = d.Address
			break
		}
	}
	return nil
}

func (m *Memory) DeleteDZO(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.dzos {
		if d.ID == id {
			m.dzos = append(m.dzos[:i], m.dzos[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- User ----------

func (m *Memory) InsertUser(_ context.Context, u *domain.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	cp.ID = m.nextUserID
	m.nextUserID++
	m.users = append(m.users, &cp)
	return cp.ID, nil
}

func (m *Memory) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetUserByLogin(_ context.Context, login string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Login == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListUsers(_ context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateUser(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.users {
		if row.ID == u.ID {
			row.FullName = u.FullName
			row.Login = u.Login
			row.PasswordHash = u.PasswordHash
			row.Role = u.Role
			row.DZOID = u.DZOID
			break
		}
	}
	return nil
}

func (m *Memory) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			break
		}
	}
	return nil
}

// ---------- Bulk ----------

// CopyRows складывает строки как есть: массовая загрузка обходит проверки,
// содержимое по таблицам доступно тестам через CopiedRows.
func (m *Memory) CopyRows(_ context.Context, table string, columns []string, rows [][]any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.copied[table] = append(m.copied[table], rows...)
	return int64(len(rows)), nil
}

// CopiedRows возвращает принятые bulk-загрузкой строки таблицы.
func (m *Memory) CopiedRows(table string) [][]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copied[table]
}
