package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func TestAnalyticTypeFields(t *testing.T) {
	at := AnalyticType{ID: "ВА-01", Name: "Статья затрат"}

	got := AnalyticTypeFromFields(at.Fields())
	assert.Equal(t, at, got)
}

func TestAnalyticFields(t *testing.T) {
	a := Analytic{
		AnalyticTypeID: "ВА-01",
		ID:             "А-001",
		Name:           "Фонд оплаты труда",
		PeriodStart:    datePtr(2023, 1, 1),
		PeriodEnd:      datePtr(2023, 12, 31),
	}

	got := AnalyticFromFields(a.Fields())
	assert.Equal(t, a, got)
}

func TestIndicatorFieldsEmptyRefs(t *testing.T) {
	i := Indicator{
		ID:            "П-100",
		Name:          "Выручка",
		AnalyticType1: strPtr("ВА-01"),
	}

	got := IndicatorFromFields(i.Fields())
	assert.Equal(t, "П-100", got.ID)
	require.NotNil(t, got.AnalyticType1)
	assert.Equal(t, "ВА-01", *got.AnalyticType1)
	// пустые подписи не превращаются в указатели на ""
	assert.Nil(t, got.AnalyticType2)
	assert.Nil(t, got.AnalyticType3)
}

func TestValueIndicatorFields(t *testing.T) {
	v := ValueIndicator{
		IndicatorID: "П-100",
		PeriodStart: datePtr(2023, 1, 1),
		PeriodEnd:   datePtr(2023, 3, 31),
		Analytic1:   "А-001",
		Analytic2:   strPtr("А-002"),
		Sum:         decimal.RequireFromString("1050.75"),
		DZOID:       7,
	}

	fields := v.Fields()
	assert.Equal(t, "1050.75", fields[LabelSum])
	assert.Equal(t, "2023-03-31", fields[LabelValuePeriodEnd])

	got := ValueIndicatorFromFields(fields)
	assert.Equal(t, v.IndicatorID, got.IndicatorID)
	assert.True(t, SameDate(v.PeriodStart, got.PeriodStart))
	assert.True(t, SameDate(v.PeriodEnd, got.PeriodEnd))
	assert.True(t, v.Sum.Equal(got.Sum))
	assert.Equal(t, v.DZOID, got.DZOID)
	require.NotNil(t, got.Analytic2)
	assert.Equal(t, "А-002", *got.Analytic2)
	assert.Nil(t, got.Analytic3)
}

func TestDZOFields(t *testing.T) {
	d := DZO{ID: 3, Name: "ООО Ромашка", Address: "г. Москва, ул. Ленина, 1"}

	got := DZOFromFields(d.Fields())
	assert.Equal(t, d, got)
}

func TestUserFieldsCarriesHash(t *testing.T) {
	u := User{
		ID:           5,
		FullName:     "Иванов Иван Иванович",
		Login:        "ivanov",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         "Администратор УК",
		DZOID:        3,
	}

	fields := u.Fields()
	assert.Equal(t, u.PasswordHash, fields[LabelUserPassword])

	got := UserFromFields(fields)
	assert.Equal(t, u, got)
}

func TestValueKeyFromRecord(t *testing.T) {
	v := ValueIndicator{
		IndicatorID: "П-100",
		PeriodStart: datePtr(2023, 1, 1),
		PeriodEnd:   datePtr(2023, 3, 31),
		Analytic1:   "А-001",
		Analytic3:   strPtr("А-003"),
	}

	k := v.Key()
	assert.Equal(t, v.IndicatorID, k.IndicatorID)
	assert.Equal(t, v.Analytic1, k.Analytic1)
	assert.Nil(t, k.Analytic2)
	assert.Equal(t, v.Analytic3, k.Analytic3)
}
