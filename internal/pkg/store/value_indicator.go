package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

var valueColumns = []string{
	"indicator_id", "period_start", "period_end",
	"analytic_1", "analytic_2", "analytic_3",
	"sum_value", "dzo_id",
}

// valueKeyWhere строит предикат составного ключа. Первые четыре части
// сравниваются безусловно; analytic_2 и analytic_3 при пустом значении
// превращаются в `IS NULL`, не в сравнение с пустой строкой. Единственное
// место с этим правилом: get, delete и update обязаны совпадать.
func valueKeyWhere(k domain.ValueKey) sq.And {
	return sq.And{
		sq.Eq{"indicator_id": k.IndicatorID},
		sq.Eq{"period_start": k.PeriodStart},
		sq.Eq{"period_end": k.PeriodEnd},
		sq.Eq{"analytic_1": k.Analytic1},
		sq.Eq{"analytic_2": nullable(k.Analytic2)},
		sq.Eq{"analytic_3": nullable(k.Analytic3)},
	}
}

func (s *pgStore) InsertValue(ctx context.Context, v *domain.ValueIndicator) error {
	query := builder().Insert(tableValues).
		Columns(valueColumns...).
		Values(
			v.IndicatorID, v.PeriodStart, v.PeriodEnd,
			v.Analytic1, nullable(v.Analytic2), nullable(v.Analytic3),
			v.Sum, v.DZOID,
		)

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) GetValueByKey(ctx context.Context, key domain.ValueKey) (*domain.ValueIndicator, error) {
	query := builder().Select(valueColumns...).
		From(tableValues).
		Where(valueKeyWhere(key))

	var selected domain.ValueIndicator
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) ListValues(ctx context.Context) ([]*domain.ValueIndicator, error) {
	query := builder().Select(valueColumns...).
		From(tableValues).
		OrderBy("period_start ASC", "period_end ASC", "indicator_id ASC")

	var selected []*domain.ValueIndicator
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

// UpdateValueByKey — один атомарный UPDATE: все поля на значения новой
// записи, строка находится по старому составному ключу. Так ключевые части
// меняются тем же вызовом.
func (s *pgStore) UpdateValueByKey(ctx context.Context, oldKey domain.ValueKey, v *domain.ValueIndicator) error {
	query := builder().Update(tableValues).
		Set("indicator_id", v.IndicatorID).
		Set("period_start", v.PeriodStart).
		Set("period_end", v.PeriodEnd).
		Set("analytic_1", v.Analytic1).
		Set("analytic_2", nullable(v.Analytic2)).
		Set("analytic_3", nullable(v.Analytic3)).
		Set("sum_value", v.Sum).
		Set("dzo_id", v.DZOID).
		Where(valueKeyWhere(oldKey))

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) DeleteValueByKey(ctx context.Context, key domain.ValueKey) error {
	query := builder().Delete(tableValues).
		Where(valueKeyWhere(key))

	_, err := s.pool.Execx(ctx, query)
	return err
}
