// internal/migration/plan.go
package migration

import (
	"fmt"
	"path"
	"strings"
)

// Move is a single planned file rename.
type Move struct {
	OldPath string
	NewPath string
}

// Update is the tracking-table row change paired with a Move.
type Update struct {
	OldBase string
	NewBase string
}

// RenamePlan holds the ordered rename and SQL update entries for one run.
// Moves and Updates have the same length and order: Updates[i] keeps the
// tracking table consistent with Moves[i].
type RenamePlan struct {
	Table   string
	Moves   []Move
	Updates []Update
}

// BuildPlan scans dir and plans the rename of every 14-digit-version
// migration file to its unix-millisecond equivalent. A file whose new name
// would equal its old name is dropped from the plan, so re-running over an
// already-converted directory plans nothing.
func BuildPlan(dir, table string) (*RenamePlan, error) {
	migrations, err := ReadFromDir(dir)
	if err != nil {
		return nil, err
	}

	plan := &RenamePlan{Table: table}
	for _, m := range migrations {
		ms, err := m.UnixMilliVersion()
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", m.Path, err)
		}

		newBase := ms + "_" + m.Name
		if newBase == m.Base() {
			continue
		}

		plan.Moves = append(plan.Moves, Move{
			OldPath: m.Path,
			NewPath: path.Join(dir, newBase+Ext),
		})
		plan.Updates = append(plan.Updates, Update{
			OldBase: m.Base(),
			NewBase: newBase,
		})
	}

	return plan, nil
}

// Render returns the plan as a printable report: a section of shell mv
// commands, then a section of SQL updates for the tracking table. Both
// sections keep scan order and are emitted even when empty.
func (p *RenamePlan) Render() string {
	var b strings.Builder

	b.WriteString("# mv commands:\n")
	for _, mv := range p.Moves {
		fmt.Fprintf(&b, "mv %s %s\n", mv.OldPath, mv.NewPath)
	}

	fmt.Fprintf(&b, "\n# SQL updates for %s (run these in psql):\n", p.Table)
	for _, u := range p.Updates {
		fmt.Fprintf(&b, "update %s set name='%s' where name='%s';\n", p.Table, u.NewBase, u.OldBase)
	}

	return b.String()
}
