package store

import (
	"context"
	"fmt"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store/xpgx"
)

// CopyRows — массовая вставка в одной транзакции: при любом сбое откат всех
// строк. Проверки целостности сознательно обходятся.
func (s *pgStore) CopyRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	var inserted int64
	err := s.pool.WithinTx(ctx, func(ctx context.Context, db xpgx.DB) error {
		n, err := db.CopyRows(ctx, table, columns, rows)
		if err != nil {
			return fmt.Errorf("copy into %s: %w", table, err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
