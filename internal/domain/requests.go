package domain

import "github.com/shopspring/decimal"

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User *User `json:"user"`
}

type CreateAnalyticTypeRequest struct {
	ID   string `json:"analytic_type_id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type UpdateAnalyticTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateAnalyticRequest struct {
	AnalyticTypeID string `json:"analytic_type_id" validate:"required"`
	ID             string `json:"analytic_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
}

type UpdateAnalyticRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateIndicatorRequest struct {
	ID            string `json:"indicator_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	AnalyticType1 string `json:"analytic_type_1"`
	AnalyticType2 string `json:"analytic_type_2"`
	AnalyticType3 string `json:"analytic_type_3"`
}

type UpdateIndicatorRequest struct {
	Name          string `json:"name" validate:"required"`
	AnalyticType1 string `json:"analytic_type_1"`
	AnalyticType2 string `json:"analytic_type_2"`
	AnalyticType3 string `json:"analytic_type_3"`
}

// ValueIndicatorParams — поля значения показателя в том виде, в котором их
// собирает форма: даты строками, необязательные аналитики пустой строкой.
type ValueIndicatorParams struct {
	IndicatorID string          `json:"indicator_id" validate:"required"`
	PeriodStart string          `json:"period_start" validate:"required"`
	PeriodEnd   string          `json:"period_end" validate:"required"`
	Analytic1   string          `json:"analytic_1" validate:"required"`
	Analytic2   string          `json:"analytic_2"`
	Analytic3   string          `json:"analytic_3"`
	Sum         decimal.Decimal `json:"sum_value"`
	DZOID       int64           `json:"dzo_id"`
}

// Record builds the typed record, applying the lenient date normalizer and
// the empty-means-null rule for the optional key parts.
func (p ValueIndicatorParams) Record() *ValueIndicator {
	a2, a3 := p.Analytic2, p.Analytic3
	return &ValueIndicator{
		IndicatorID: p.IndicatorID,
		PeriodStart: ParseDateString(p.PeriodStart),
		PeriodEnd:   ParseDateString(p.PeriodEnd),
		Analytic1:   p.Analytic1,
		Analytic2:   NullIfEmpty(&a2),
		Analytic3:   NullIfEmpty(&a3),
		Sum:         p.Sum,
		DZOID:       p.DZOID,
	}
}

type UpdateValueIndicatorRequest struct {
	Old ValueIndicatorParams `json:"old" validate:"required"`
	New ValueIndicatorParams `json:"new" validate:"required"`
}

type DeleteValueIndicatorRequest struct {
	ValueIndicatorParams
}

type CreateDZORequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type UpdateDZORequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
	DZOID    int64  `json:"dzo_id" validate:"required"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
	DZOID    int64  `json:"dzo_id" validate:"required"`
}
