package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

func memValue(indicatorID string, start, end time.Time, a1 string, a2, a3 *string) *domain.ValueIndicator {
	return &domain.ValueIndicator{
		IndicatorID: indicatorID,
		PeriodStart: &start,
		PeriodEnd:   &end,
		Analytic1:   a1,
		Analytic2:   a2,
		Analytic3:   a3,
		Sum:         decimal.NewFromInt(100),
		DZOID:       1,
	}
}

func TestMemoryValueKeyMatching(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)

	// analytic_2 передана пустой строкой, храниться должна как отсутствие
	require.NoError(t, m.InsertValue(ctx, memValue("П-100", start, end, "А-001", strPtr(""), nil)))

	// поиск и по nil, и по "" находит ту же строку
	got, err := m.GetValueByKey(ctx, domain.ValueKey{
		IndicatorID: "П-100", PeriodStart: &start, PeriodEnd: &end,
		Analytic1: "А-001", Analytic2: nil, Analytic3: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Analytic2)

	// заполненная часть ключа с отсутствующей не совпадает
	got, err = m.GetValueByKey(ctx, domain.ValueKey{
		IndicatorID: "П-100", PeriodStart: &start, PeriodEnd: &end,
		Analytic1: "А-001", Analytic2: strPtr("А-002"),
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryValueUpdateChangesKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)

	v := memValue("П-100", start, end, "А-001", nil, nil)
	require.NoError(t, m.InsertValue(ctx, v))

	repl := memValue("П-100", start, end, "А-001", strPtr("А-002"), nil)
	repl.Sum = decimal.NewFromInt(500)
	require.NoError(t, m.UpdateValueByKey(ctx, v.Key(), repl))

	// старый ключ больше не находит строку
	got, err := m.GetValueByKey(ctx, v.Key())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = m.GetValueByKey(ctx, repl.Key())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Sum.Equal(decimal.NewFromInt(500)))
}

func TestMemoryListValuesOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	d := func(month int) time.Time { return time.Date(2023, time.Month(month), 1, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, m.InsertValue(ctx, memValue("П-200", d(4), d(6), "А-001", nil, nil)))
	require.NoError(t, m.InsertValue(ctx, memValue("П-100", d(1), d(3), "А-001", nil, nil)))
	require.NoError(t, m.InsertValue(ctx, memValue("П-050", d(1), d(3), "А-001", nil, nil)))

	vs, err := m.ListValues(ctx)
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.Equal(t, "П-050", vs[0].IndicatorID)
	assert.Equal(t, "П-100", vs[1].IndicatorID)
	assert.Equal(t, "П-200", vs[2].IndicatorID)
}

func TestMemoryGeneratedIDs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id1, err := m.InsertDZO(ctx, &domain.DZO{Name: "ООО Ромашка", Address: "Москва"})
	require.NoError(t, err)
	id2, err := m.InsertDZO(ctx, &domain.DZO{Name: "ООО Василёк", Address: "Казань"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)

	uid, err := m.InsertUser(ctx, &domain.User{Login: "ivanov", DZOID: id1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), uid)
}

func TestMemoryCopyOnRead(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.InsertAnalyticType(ctx, &domain.AnalyticType{ID: "ВА-01", Name: "Статья затрат"}))

	got, err := m.GetAnalyticTypeByID(ctx, "ВА-01")
	require.NoError(t, err)
	got.Name = "испорчено"

	again, err := m.GetAnalyticTypeByID(ctx, "ВА-01")
	require.NoError(t, err)
	assert.Equal(t, "Статья затрат", again.Name)
}

func TestMemoryCopyRows(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	rows := [][]any{
		{"ВА-01", "Статья затрат"},
		{"ВА-02", "ЦФО"},
	}
	n, err := m.CopyRows(ctx, tableAnalyticTypes, []string{"analytic_type_id", "name"}, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, rows, m.CopiedRows(tableAnalyticTypes))
}
