package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	tableAnalyticTypes = "analytic_types"
	tableAnalytics     = "analytics"
	tableIndicators    = "indicators"
	tableValues        = "indicator_values"
	tableDZOs          = "dzos"
	tableUsers         = "users"
)

// builder возвращает squirrel SQL Builder объект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullable реализует правило "пусто значит NULL" для необязательных частей
// ключа: squirrel рисует `col IS NULL` для nil-значения в Eq.
func nullable(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}
