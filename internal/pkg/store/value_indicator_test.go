package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

func testKey(a2, a3 *string) domain.ValueKey {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	return domain.ValueKey{
		IndicatorID: "П-100",
		PeriodStart: &start,
		PeriodEnd:   &end,
		Analytic1:   "А-001",
		Analytic2:   a2,
		Analytic3:   a3,
	}
}

func strPtr(s string) *string { return &s }

func TestValueKeyWhereNullParts(t *testing.T) {
	sql, args, err := valueKeyWhere(testKey(nil, nil)).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "analytic_2 IS NULL")
	assert.Contains(t, sql, "analytic_3 IS NULL")
	assert.NotContains(t, sql, "analytic_2 = ")
	assert.Len(t, args, 4)
}

func TestValueKeyWhereEmptyEqualsNull(t *testing.T) {
	// пустая строка в необязательной части означает отсутствие значения
	withEmpty, argsEmpty, err := valueKeyWhere(testKey(strPtr(""), strPtr(""))).ToSql()
	require.NoError(t, err)
	withNil, argsNil, err := valueKeyWhere(testKey(nil, nil)).ToSql()
	require.NoError(t, err)

	assert.Equal(t, withNil, withEmpty)
	assert.Equal(t, argsNil, argsEmpty)
}

func TestValueKeyWhereFilledParts(t *testing.T) {
	sql, args, err := valueKeyWhere(testKey(strPtr("А-002"), strPtr("А-003"))).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, sql, "IS NULL")
	assert.Len(t, args, 6)
	assert.Contains(t, args, "А-002")
	assert.Contains(t, args, "А-003")
}

// get и delete обязаны искать строку одним и тем же предикатом.
func TestValueKeyPredicateSymmetry(t *testing.T) {
	key := testKey(strPtr("А-002"), nil)

	getSQL, getArgs, err := builder().Select(valueColumns...).
		From(tableValues).
		Where(valueKeyWhere(key)).
		ToSql()
	require.NoError(t, err)

	delSQL, delArgs, err := builder().Delete(tableValues).
		Where(valueKeyWhere(key)).
		ToSql()
	require.NoError(t, err)

	_, getWhere, ok := strings.Cut(getSQL, " WHERE ")
	require.True(t, ok)
	_, delWhere, ok := strings.Cut(delSQL, " WHERE ")
	require.True(t, ok)

	assert.Equal(t, getWhere, delWhere)
	assert.Equal(t, getArgs, delArgs)
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(nil))
	assert.Nil(t, nullable(strPtr("")))
	assert.Equal(t, "А-002", nullable(strPtr("А-002")))
}
