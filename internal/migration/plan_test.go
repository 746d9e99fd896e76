// internal/migration/plan_test.go
package migration

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigrationFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		err := os.WriteFile(path.Join(dir, name), []byte("-- sql\n"), 0644)
		require.NoError(t, err)
	}
}

func TestBuildPlan(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFiles(t, dir,
		"20230615143000_create_orders.ts",
		"20240101000000_add_index.ts",
		"notes.ts",
		"helpers.sql",
	)
	require.NoError(t, os.Mkdir(path.Join(dir, "archive"), 0755))

	plan, err := BuildPlan(dir, "inventory_schema_migrations")
	require.NoError(t, err)

	require.Len(t, plan.Moves, 2)
	require.Len(t, plan.Updates, 2)

	assert.Equal(t, Move{
		OldPath: path.Join(dir, "20230615143000_create_orders.ts"),
		NewPath: path.Join(dir, "1686839400000_create_orders.ts"),
	}, plan.Moves[0])
	assert.Equal(t, Update{
		OldBase: "20230615143000_create_orders",
		NewBase: "1686839400000_create_orders",
	}, plan.Updates[0])

	assert.Equal(t, Move{
		OldPath: path.Join(dir, "20240101000000_add_index.ts"),
		NewPath: path.Join(dir, "1704067200000_add_index.ts"),
	}, plan.Moves[1])
	assert.Equal(t, Update{
		OldBase: "20240101000000_add_index",
		NewBase: "1704067200000_add_index",
	}, plan.Updates[1])
}

func TestBuildPlanOrderIsLexicographic(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFiles(t, dir,
		"20240101000000_b_second.ts",
		"20230615143000_c_first.ts",
		"20240101000000_a_also_second.ts",
	)

	plan, err := BuildPlan(dir, "inventory_schema_migrations")
	require.NoError(t, err)

	require.Len(t, plan.Updates, 3)
	assert.Equal(t, "20230615143000_c_first", plan.Updates[0].OldBase)
	assert.Equal(t, "20240101000000_a_also_second", plan.Updates[1].OldBase)
	assert.Equal(t, "20240101000000_b_second", plan.Updates[2].OldBase)
}

func TestBuildPlanEmptyDir(t *testing.T) {
	dir := t.TempDir()

	plan, err := BuildPlan(dir, "inventory_schema_migrations")
	require.NoError(t, err)

	assert.Empty(t, plan.Moves)
	assert.Empty(t, plan.Updates)
	assert.Equal(t,
		"# mv commands:\n\n# SQL updates for inventory_schema_migrations (run these in psql):\n",
		plan.Render())
}

func TestBuildPlanMissingDir(t *testing.T) {
	_, err := BuildPlan(path.Join(t.TempDir(), "nope"), "inventory_schema_migrations")
	assert.Error(t, err)
}

func TestBuildPlanInvalidCalendarDate(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFiles(t, dir, "20231315143000_bad_month.ts")

	_, err := BuildPlan(dir, "inventory_schema_migrations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "20231315143000")
}

// Applying the planned renames and planning again must yield an empty plan:
// renamed files carry 13-digit versions and no longer match.
func TestBuildPlanIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFiles(t, dir,
		"20230615143000_create_orders.ts",
		"20240101000000_add_index.ts",
	)

	plan, err := BuildPlan(dir, "inventory_schema_migrations")
	require.NoError(t, err)
	require.Len(t, plan.Moves, 2)

	for _, mv := range plan.Moves {
		require.NoError(t, os.Rename(mv.OldPath, mv.NewPath))
	}

	again, err := BuildPlan(dir, "inventory_schema_migrations")
	require.NoError(t, err)
	assert.Empty(t, again.Moves)
	assert.Empty(t, again.Updates)
	assert.Equal(t,
		"# mv commands:\n\n# SQL updates for inventory_schema_migrations (run these in psql):\n",
		again.Render())
}

func TestRenderScenario(t *testing.T) {
	dir := "src/migrations"
	plan := &RenamePlan{
		Table: "inventory_schema_migrations",
		Moves: []Move{{
			OldPath: path.Join(dir, "20230615143000_create_orders.ts"),
			NewPath: path.Join(dir, "1686839400000_create_orders.ts"),
		}},
		Updates: []Update{{
			OldBase: "20230615143000_create_orders",
			NewBase: "1686839400000_create_orders",
		}},
	}

	expected := "# mv commands:\n" +
		"mv src/migrations/20230615143000_create_orders.ts src/migrations/1686839400000_create_orders.ts\n" +
		"\n" +
		"# SQL updates for inventory_schema_migrations (run these in psql):\n" +
		"update inventory_schema_migrations set name='1686839400000_create_orders' where name='20230615143000_create_orders';\n"
	assert.Equal(t, expected, plan.Render())
}

func TestReadRenamed(t *testing.T) {
	dir := t.TempDir()
	writeMigrationFiles(t, dir,
		"1686839400000_create_orders.ts",
		"20240101000000_add_index.ts",
		"notes.ts",
	)

	renamed, err := ReadRenamed(dir)
	require.NoError(t, err)
	require.Len(t, renamed, 1)
	assert.Equal(t, "1686839400000", renamed[0].Version)
	assert.Equal(t, "create_orders", renamed[0].Name)

	pending, err := ReadFromDir(dir)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "20240101000000", pending[0].Version)
}
