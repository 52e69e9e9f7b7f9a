package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrations_UniqueIDsAndRunsTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range allMigrations {
		assert.False(t, seen[m.ID], "duplicate migration id %s", m.ID)
		seen[m.ID] = true
		assert.NotEmpty(t, strings.TrimSpace(m.UpSQL))
	}
	assert.Contains(t, allMigrations[0].UpSQL, "CREATE TABLE runs")
}
