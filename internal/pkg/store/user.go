package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
)

var userColumns = []string{"user_id", "full_name", "login", "password_hash", "role", "dzo_id"}

func (s *pgStore) InsertUser(ctx context.Context, u *domain.User) (int64, error) {
	query := builder().Insert(tableUsers).
		Columns(userColumns[1:]...).
		Values(u.FullName, u.Login, u.PasswordHash, u.Role, u.DZOID).
		Suffix("RETURNING user_id")

	var selected struct {
		ID int64 `db:"user_id"`
	}
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return 0, err
	}
	return selected.ID, nil
}

func (s *pgStore) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"user_id": id})

	var selected domain.User
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"login": login})

	var selected domain.User
	err := s.pool.Getx(ctx, &selected, query)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selected, nil
}

func (s *pgStore) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		OrderBy("user_id ASC")

	var selected []*domain.User
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *pgStore) UpdateUser(ctx context.Context, u *domain.User) error {
	query := builder().Update(tableUsers).
		Set("full_name", u.FullName).
		Set("login", u.Login).
		Set("password_hash", u.PasswordHash).
		Set("role", u.Role).
		Set("dzo_id", u.DZOID).
		Where(sq.Eq{"user_id": u.ID})

	_, err := s.pool.Execx(ctx, query)
	return err
}

func (s *pgStore) DeleteUser(ctx context.Context, id int64) error {
	query := builder().Delete(tableUsers).
		Where(sq.Eq{"user_id": id})

	_, err := s.pool.Execx(ctx, query)
	return err
}
