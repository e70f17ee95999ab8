package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

var analyticTypeColumns = []string{"analytic_type_id", "name"}

func (s *pgStore) InsertAnalyticType(ctx context.Context, at *domain.AnalyticType) error {
	query := builder().Insert(tableAnalyticTypes).
		Columns(analyticTypeColumns...).
		Values(at.ID, at.Name)

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) GetAnalyticTypeByID(ctx context.Context, id string) (*domain.AnalyticType, error) {
	query := builder().Select(analyticTypeColumns...).
		From(tableAnalyticTypes).
		Where(sq.Eq{"analytic_type_id": id})

	var selected domain.AnalyticType
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) ListAnalyticTypes(ctx context.Context) ([]*domain.AnalyticType, error) {
	query := builder().Select(analyticTypeColumns...).
		From(tableAnalyticTypes).
		OrderBy("analytic_type_id ASC")

	var selected []*domain.AnalyticType
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *pgStore) UpdateAnalyticTypeName(ctx context.Context, id, name string) error {
	query := builder().Update(tableAnalyticTypes).
		Set("name", name).
		Where(sq.Eq{"analytic_type_id": id})

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) DeleteAnalyticType(ctx context.Context, id string) error {
	query := builder().Delete(tableAnalyticTypes).
		Where(sq.Eq{"analytic_type_id": id})

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) CountAnalyticsByType(ctx context.Context, typeID string) (int64, error) {
	query := builder().Select("count(*) as count").
		From(tableAnalytics).
		Where(sq.Eq{"analytic_type_id": typeID})

	var selected struct {
		Count int64 `db:"count"`
	}
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return 0, err
	}
	return selected.Count, nil
}
