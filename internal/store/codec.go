package store

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/malekluka/malek-kanban-portfolio/internal/model"
)

var errEmptyRecord = errors.New("record holds no column collection")

// Encode serializes the column collection.
func Encode(cols []model.Column) ([]byte, error) {
	if cols == nil {
		cols = []model.Column{}
	}
	return sonic.ConfigStd.Marshal(cols)
}

// Decode parses a stored column collection and rejects data that breaks
// the id invariants. Subtask summaries are recomputed from their items.
func Decode(raw []byte) ([]model.Column, error) {
	var cols []model.Column
	if err := sonic.ConfigStd.Unmarshal(raw, &cols); err != nil {
		return nil, fmt.Errorf("unmarshaling columns: %w", err)
	}
	if cols == nil {
		return nil, errEmptyRecord
	}

	columnIDs := make(map[string]bool, len(cols))
	taskIDs := make(map[string]bool)
	for i := range cols {
		c := &cols[i]
		if c.ID == "" {
			return nil, fmt.Errorf("column %d has no id", i)
		}
		if columnIDs[c.ID] {
			return nil, fmt.Errorf("duplicate column id %q", c.ID)
		}
		columnIDs[c.ID] = true
		if c.Tasks == nil {
			c.Tasks = []model.Task{}
		}
		for j := range c.Tasks {
			t := &c.Tasks[j]
			if t.ID == "" {
				return nil, fmt.Errorf("task %d in column %q has no id", j, c.ID)
			}
			if taskIDs[t.ID] {
				return nil, fmt.Errorf("duplicate task id %q", t.ID)
			}
			taskIDs[t.ID] = true
			if t.Subtasks != nil {
				t.Subtasks.Recount()
			}
		}
	}
	return cols, nil
}
