package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ссылочная целостность живёт в сервисном слое; схема не должна дублировать
// её ограничениями, иначе pg-хранилище разойдётся с Memory: удаление
// показателя или ДЗО с зависимыми строками и массовая загрузка обязаны
// проходить.
func TestSchemaHasNoReferentialConstraints(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := string(raw)

	assert.NotContains(t, schema, "REFERENCES")

	for _, line := range strings.Split(schema, "\n") {
		if strings.Contains(line, "login") {
			assert.NotContains(t, line, "UNIQUE")
		}
	}

	// единственная уникальность — составной ключ значения показателя,
	// с COALESCE по null-значимым частям
	assert.Contains(t, schema, "CREATE UNIQUE INDEX IF NOT EXISTS indicator_values_key_idx")
	assert.Contains(t, schema, `COALESCE(analytic_2, '')`)
	assert.Contains(t, schema, `COALESCE(analytic_3, '')`)
}
