package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

var analyticColumns = []string{"analytic_type_id", "analytic_id", "name"}

func analyticKeyWhere(typeID, id string) sq.And {
	return sq.And{
		sq.Eq{"analytic_type_id": typeID},
		sq.Eq{"analytic_id": id},
	}
}

func (s *pgStore) InsertAnalytic(ctx context.Context, a *domain.Analytic) error {
	query := builder().Insert(tableAnalytics).
		Columns(analyticColumns...).
		Values(a.AnalyticTypeID, a.ID, a.Name)

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) GetAnalyticByID(ctx context.Context, typeID, id string) (*domain.Analytic, error) {
	query := builder().Select(analyticColumns...).
		From(tableAnalytics).
		Where(analyticKeyWhere(typeID, id))

	var selected domain.Analytic
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) ListAnalytics(ctx context.Context) ([]*domain.Analytic, error) {
	query := builder().Select(analyticColumns...).
		From(tableAnalytics).
		OrderBy("analytic_type_id ASC", "analytic_id ASC")

	var selected []*domain.Analytic
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *pgStore) ListAnalyticsByType(ctx context.Context, typeID string) ([]*domain.Analytic, error) {
	query := builder().Select(analyticColumns...).
		From(tableAnalytics).
		Where(sq.Eq{"analytic_type_id": typeID}).
		OrderBy("analytic_id ASC")

	var selected []*domain.Analytic
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *pgStore) UpdateAnalyticName(ctx context.Context, typeID, id, name string) error {
	query := builder().Update(tableAnalytics).
		Set("name", name).
		Where(analyticKeyWhere(typeID, id))

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) DeleteAnalytic(ctx context.Context, typeID, id string) error {
	query := builder().Delete(tableAnalytics).
		Where(analyticKeyWhere(typeID, id))

	_, err := s.pool.Execx(ctx, query)
	return err
}
