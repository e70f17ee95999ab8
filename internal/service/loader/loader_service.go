package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/HotelkaWants/ASMR-UK/internal/domain"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/logger"
	"github.com/HotelkaWants/ASMR-UK/internal/pkg/store"
)

// Service — массовая загрузка табличного файла в одну таблицу. Заголовки
// файла — канонические подписи бизнес-словаря, проверки целостности
// сознательно обходятся; гарантия одна: либо вставлены все строки, либо ни
// одной.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// tableSpec связывает имя таблицы с её колонками и разбором строки файла.
type tableSpec struct {
	columns []string
	convert func(m map[string]string) ([]any, error)
}

var tables = map[string]tableSpec{
	"analytic_types": {
		columns: []string{"analytic_type_id", "name"},
		convert: func(m map[string]string) ([]any, error) {
			at := domain.AnalyticTypeFromFields(m)
			return []any{at.ID, at.Name}, nil
		},
	},
	"analytics": {
		columns: []string{"analytic_type_id", "analytic_id", "name"},
		convert: func(m map[string]string) ([]any, error) {
			a := domain.AnalyticFromFields(m)
			return []any{a.AnalyticTypeID, a.ID, a.Name}, nil
		},
	},
	"indicators": {
		columns: []string{"indicator_id", "name", "analytic_type_1", "analytic_type_2", "analytic_type_3"},
		convert: func(m map[string]string) ([]any, error) {
			ind := domain.IndicatorFromFields(m)
			return []any{ind.ID, ind.Name, ind.AnalyticType1, ind.AnalyticType2, ind.AnalyticType3}, nil
		},
	},
	"indicator_values": {
		columns: []string{"indicator_id", "period_start", "period_end", "analytic_1", "analytic_2", "analytic_3", "sum_value", "dzo_id"},
		convert: func(m map[string]string) ([]any, error) {
			if _, err := decimal.NewFromString(m[domain.LabelSum]); err != nil {
				return nil, fmt.Errorf("сумма %q: %w", m[domain.LabelSum], err)
			}
			v := domain.ValueIndicatorFromFields(m)
			return []any{v.IndicatorID, v.PeriodStart, v.PeriodEnd, v.Analytic1, v.Analytic2, v.Analytic3, v.Sum, v.DZOID}, nil
		},
	},
	"dzos": {
		columns: []string{"name", "address"},
		convert: func(m map[string]string) ([]any, error) {
			d := domain.DZOFromFields(m)
			return []any{d.Name, d.Address}, nil
		},
	},
	"users": {
		columns: []string{"full_name", "login", "password_hash", "role", "dzo_id"},
		convert: func(m map[string]string) ([]any, error) {
			if _, err := strconv.ParseInt(m[domain.LabelDZO], 10, 64); err != nil {
				return nil, fmt.Errorf("ДЗО %q: %w", m[domain.LabelDZO], err)
			}
			u := domain.UserFromFields(m)
			return []any{u.FullName, u.Login, u.PasswordHash, u.Role, u.DZOID}, nil
		},
	},
}

// LoadCSV читает файл с заголовком и вставляет строки в таблицу.
func (s *Service) LoadCSV(ctx context.Context, table string, r io.Reader) (int64, error) {
	spec, ok := tables[table]
	if !ok {
		return 0, constants.ErrBadRequest.Wrapf("неизвестная таблица %q", table)
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, constants.ErrBadRequest.Wrapf("чтение заголовка: %v", err)
	}

	var rows [][]any
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, constants.ErrBadRequest.Wrapf("строка %d: %v", line, err)
		}

		m := make(map[string]string, len(header))
		for i, label := range header {
			if i < len(record) {
				m[label] = record[i]
			}
		}
		row, err := spec.convert(m)
		if err != nil {
			return 0, constants.ErrBadRequest.Wrapf("строка %d: %v", line, err)
		}
		rows = append(rows, row)
	}

	inserted, err := s.store.CopyRows(ctx, table, spec.columns, rows)
	if err != nil {
		logger.Errorf(ctx, "copy %d rows into %s: %v", len(rows), table, err)
		return 0, constants.ErrStorage.Wrapf("загрузка в %s: %v", table, err)
	}

	logger.Infof(ctx, "loaded %d rows into %s", inserted, table)
	return inserted, nil
}
