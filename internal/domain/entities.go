package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticType — вид аналитики, справочник классификаций.
type AnalyticType struct {
	ID   string `db:"analytic_type_id" json:"analytic_type_id"`
	Name string `db:"name" json:"name"`
}

// Analytic — конкретное значение внутри вида аналитики. Составной ключ
// (analytic_type_id, analytic_id). Periods are carried by the record mapping
// only, the table does not persist them.
type Analytic struct {
	AnalyticTypeID string     `db:"analytic_type_id" json:"analytic_type_id"`
	ID             string     `db:"analytic_id" json:"analytic_id"`
	Name           string     `db:"name" json:"name"`
	PeriodStart    *time.Time `db:"-" json:"period_start,omitempty"`
	PeriodEnd      *time.Time `db:"-" json:"period_end,omitempty"`
}

// Indicator — показатель, до трёх необязательных ссылок на виды аналитики.
type Indicator struct {
	ID            string     `db:"indicator_id" json:"indicator_id"`
	Name          string     `db:"name" json:"name"`
	AnalyticType1 *string    `db:"analytic_type_1" json:"analytic_type_1,omitempty"`
	AnalyticType2 *string    `db:"analytic_type_2" json:"analytic_type_2,omitempty"`
	AnalyticType3 *string    `db:"analytic_type_3" json:"analytic_type_3,omitempty"`
	PeriodStart   *time.Time `db:"-" json:"period_start,omitempty"`
	PeriodEnd     *time.Time `db:"-" json:"period_end,omitempty"`
}

// ValueIndicator — одно значение показателя ДЗО за период. Составной ключ:
// (indicator_id, period_start, period_end, analytic_1) плюс analytic_2 и
// analytic_3, которые участвуют в ключе только когда заполнены (пустое
// значение хранится и сравнивается как NULL, не как '').
type ValueIndicator struct {
	IndicatorID string          `db:"indicator_id" json:"indicator_id"`
	PeriodStart *time.Time      `db:"period_start" json:"period_start"`
	PeriodEnd   *time.Time      `db:"period_end" json:"period_end"`
	Analytic1   string          `db:"analytic_1" json:"analytic_1"`
	Analytic2   *string         `db:"analytic_2" json:"analytic_2,omitempty"`
	Analytic3   *string         `db:"analytic_3" json:"analytic_3,omitempty"`
	Sum         decimal.Decimal `db:"sum_value" json:"sum_value"`
	DZOID       int64           `db:"dzo_id" json:"dzo_id"`
}

// ValueKey — составной ключ значения показателя.
type ValueKey struct {
	IndicatorID string     `json:"indicator_id"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
	Analytic1   string     `json:"analytic_1"`
	Analytic2   *string    `json:"analytic_2,omitempty"`
	Analytic3   *string    `json:"analytic_3,omitempty"`
}

func (v *ValueIndicator) Key() ValueKey {
	return ValueKey{
		IndicatorID: v.IndicatorID,
		PeriodStart: v.PeriodStart,
		PeriodEnd:   v.PeriodEnd,
		Analytic1:   v.Analytic1,
		Analytic2:   v.Analytic2,
		Analytic3:   v.Analytic3,
	}
}

// DZO — дочернее зависимое общество.
type DZO struct {
	ID      int64  `db:"dzo_id" json:"dzo_id"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
}

// User of the system. PasswordHash is a bcrypt hash, cleartext is never
// stored or returned after creation.
type User struct {
	ID           int64  `db:"user_id" json:"user_id"`
	FullName     string `db:"full_name" json:"full_name"`
	Login        string `db:"login" json:"login"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
	DZOID        int64  `db:"dzo_id" json:"dzo_id"`
}

// NullIfEmpty normalizes optional key parts: empty input means "no value",
// stored and matched as NULL.
func NullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// StringOrEmpty разворачивает указатель для отображения.
func StringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
