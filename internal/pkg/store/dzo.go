package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

var dzoColumns = []string{"dzo_id", "name", "address"}

// InsertDZO: идентификатор назначает база, возвращаем его через RETURNING.
func (s *pgStore) InsertDZO(ctx context.Context, d *domain.DZO) (int64, error) {
	query := builder().Insert(tableDZOs).
		Columns("name", "address").
		Values(d.Name, d.Address).
		Suffix("RETURNING dzo_id")

	var selected struct {
		ID int64 `db:"dzo_id"`
	}
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return 0, err
	}
	return selected.ID, nil
}

func (s *pgStore) GetDZOByID(ctx context.Context, id int64) (*domain.DZO, error) {
	query := builder().Select(dzoColumns...).
		From(tableDZOs).
		Where(sq.Eq{"dzo_id": id})

	var selected domain.DZO
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) ListDZOs(ctx context.Context) ([]*domain.DZO, error) {
	query := builder().Select(dzoColumns...).
		From(tableDZOs).
		OrderBy("dzo_id ASC")

	var selected []*domain.DZO
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *pgStore) UpdateDZO(ctx context.Context, d *domain.DZO) error {
	query := builder().Update(tableDZOs).
		Set("name", d.Name).
		Set("address", d.Address).
		Where(sq.Eq{"dzo_id": d.ID})

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) DeleteDZO(ctx context.Context, id int64) error {
	query := builder().Delete(tableDZOs).
		Where(sq.Eq{"dzo_id": id})

	_, err := s.pool.Execx(ctx, query)
	return err
}
