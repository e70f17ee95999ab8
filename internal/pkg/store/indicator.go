package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

var indicatorColumns = []string{"indicator_id", "name", "analytic_type_1", "analytic_type_2", "analytic_type_3"}

func (s *pgStore) InsertIndicator(ctx context.Context, ind *domain.Indicator) error {
	query := builder().Insert(tableIndicators).
		Columns(indicatorColumns...).
		Values(ind.ID, ind.Name, nullable(ind.AnalyticType1), nullable(ind.AnalyticType2), nullable(ind.AnalyticType3))

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) GetIndicatorByID(ctx context.Context, id string) (*domain.Indicator, error) {
	query := builder().Select(indicatorColumns...).
		From(tableIndicators).
		Where(sq.Eq{"indicator_id": id})

	var selected domain.Indicator
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) ListIndicators(ctx context.Context) ([]*domain.Indicator, error) {
	query := builder().Select(indicatorColumns...).
		From(tableIndicators).
		OrderBy("indicator_id ASC")

	var selected []*domain.Indicator
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

// UpdateIndicator — полная замена строки по неизменяемому ключу.
func (s *pgStore) UpdateIndicator(ctx context.Context, ind *domain.Indicator) error {
	query := builder().Update(tableIndicators).
		Set("name", ind.Name).
		Set("analytic_type_1", nullable(ind.AnalyticType1)).
		Set("analytic_type_2", nullable(ind.AnalyticType2)).
		Set("analytic_type_3", nullable(ind.AnalyticType3)).
		Where(sq.Eq{"indicator_id": ind.ID})

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) DeleteIndicator(ctx context.Context, id string) error {
	query := builder().Delete(tableIndicators).
		Where(sq.Eq{"indicator_id": id})

	_, err := s.pool.Execx(ctx, query)
	return err
}
