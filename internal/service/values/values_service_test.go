package values

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

type ValuesSuite struct {
	suite.Suite

	ctx   context.Context
	mem   *store.Memory
	svc   *Service
	dzoID int64
}

func TestValuesSuite(t *testing.T) {
	suite.Run(t, new(ValuesSuite))
}

func (s *ValuesSuite) SetupTest() {
	s.ctx = context.Background()
	s.mem = store.NewMemory()
	s.svc = NewService(s.mem)

	id, err := s.mem.InsertDZO(s.ctx, &domain.DZO{Name: "ООО Ромашка", Address: "Москва"})
	s.Require().NoError(err)
	s.dzoID = id
}

func strPtr(v string) *string { return &v }

func (s *ValuesSuite) value(a2, a3 *string) *domain.ValueIndicator {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	return &domain.ValueIndicator{
		IndicatorID: "П-100",
		PeriodStart: &start,
		PeriodEnd:   &end,
		Analytic1:   "А-001",
		Analytic2:   a2,
		Analytic3:   a3,
		Sum:         decimal.RequireFromString("1050.75"),
		DZOID:       s.dzoID,
	}
}

func (s *ValuesSuite) TestCreateAndGet() {
	s.Require().NoError(s.svc.Create(s.ctx, s.value(strPtr("А-002"), nil)))

	got, err := s.svc.GetByKey(s.ctx, s.value(strPtr("А-002"), nil).Key())
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.True(got.Sum.Equal(decimal.RequireFromString("1050.75")))
}

func (s *ValuesSuite) TestCreateDuplicateEmptyVsNil() {
	// "" и отсутствие это один и тот же ключ
	s.Require().NoError(s.svc.Create(s.ctx, s.value(strPtr(""), nil)))

	err := s.svc.Create(s.ctx, s.value(nil, strPtr("")))
	s.ErrorIs(err, constants.ErrConflict)
}

func (s *ValuesSuite) TestFilledPartDistinguishesKey() {
	s.Require().NoError(s.svc.Create(s.ctx, s.value(nil, nil)))
	s.NoError(s.svc.Create(s.ctx, s.value(strPtr("А-002"), nil)))
}

// Ссылка на ДЗО при создании не проверяется, исходное поведение.
func (s *ValuesSuite) TestCreateDoesNotCheckDZO() {
	v := s.value(nil, nil)
	v.DZOID = 999

	s.NoError(s.svc.Create(s.ctx, v))
}

func (s *ValuesSuite) TestUpdateChecksDZO() {
	s.Require().NoError(s.svc.Create(s.ctx, s.value(nil, nil)))

	repl := s.value(nil, nil)
	repl.DZOID = 999
	err := s.svc.Update(s.ctx, s.value(nil, nil).Key(), repl)
	s.ErrorIs(err, constants.ErrForeignKey)
}

func (s *ValuesSuite) TestUpdateMissing() {
	err := s.svc.Update(s.ctx, s.value(nil, nil).Key(), s.value(nil, nil))
	s.ErrorIs(err, constants.ErrDBNotFound)
}

func (s *ValuesSuite) TestUpdateByEmptyKeyParts() {
	s.Require().NoError(s.svc.Create(s.ctx, s.value(nil, nil)))

	// старый ключ задан пустыми строками, совпадает с NULL в хранилище
	oldKey := s.value(strPtr(""), strPtr("")).Key()
	repl := s.value(strPtr("А-002"), nil)
	repl.Sum = decimal.NewFromInt(500)
	s.Require().NoError(s.svc.Update(s.ctx, oldKey, repl))

	got, err := s.svc.GetByKey(s.ctx, s.value(nil, nil).Key())
	s.Require().NoError(err)
	s.Nil(got)

	got, err = s.svc.GetByKey(s.ctx, repl.Key())
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.True(got.Sum.Equal(decimal.NewFromInt(500)))
}

func (s *ValuesSuite) TestDeleteByEmptyKeyParts() {
	s.Require().NoError(s.svc.Create(s.ctx, s.value(strPtr(""), nil)))

	s.Require().NoError(s.svc.Delete(s.ctx, s.value(nil, strPtr("")).Key()))

	got, err := s.svc.GetByKey(s.ctx, s.value(nil, nil).Key())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ValuesSuite) TestDeleteMissing() {
	err := s.svc.Delete(s.ctx, s.value(nil, nil).Key())
	s.ErrorIs(err, constants.ErrDBNotFound)
}
