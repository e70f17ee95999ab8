package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	want := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2023-03-15",
		"15.03.2023",
		"2023-03-15 10:30:00",
	} {
		got := ParseDateString(in)
		require.NotNil(t, got, in)
		assert.True(t, got.Equal(want), in)
	}
}

func TestParseDateTruncatesTime(t *testing.T) {
	in := time.Date(2023, 3, 15, 23, 59, 59, 0, time.FixedZone("MSK", 3*3600))
	got := ParseDate(in)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), *got)
}

func TestParseDateUnparseable(t *testing.T) {
	assert.Nil(t, ParseDateString(""))
	assert.Nil(t, ParseDateString("вчера"))
	assert.Nil(t, ParseDateString("15/03/2023"))
	assert.Nil(t, ParseDate(nil))
	assert.Nil(t, ParseDate(42))
	assert.Nil(t, ParseDate((*time.Time)(nil)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(nil))

	d := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-03-15", FormatDate(&d))
}

func TestSameDate(t *testing.T) {
	a := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	c := time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(&a, &b))
	assert.False(t, SameDate(&a, &c))
	assert.False(t, SameDate(&a, nil))
	assert.True(t, SameDate(nil, nil))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, NullIfEmpty(nil))

	empty := ""
	assert.Nil(t, NullIfEmpty(&empty))

	v := "ЦФО-01"
	got := NullIfEmpty(&v)
	require.NotNil(t, got)
	assert.Equal(t, "ЦФО-01", *got)
}
