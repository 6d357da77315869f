package grid

import errorvalues "github.com/limbo/twentyfourseven/internal/error_values"

// Change is a single cell write with the value it replaced.
type Change struct {
	Cell CellID `json:"cell"`
	Old  string `json:"old"`
	New  string `json:"new"`
}

// Batch groups the changes of one user action.
type Batch []Change

func (b Batch) inverse() Batch {
	inv := make(Batch, len(b))
	for i, ch := range b {
		inv[len(b)-1-i] = Change{Cell: ch.Cell, Old: ch.New, New: ch.Old}
	}
	return inv
}

// History is a bounded log of applied batches.
type History struct {
	limit int
	undo  []Batch
	redo  []Batch
}

func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

func (h *History) push(b Batch) {
	h.undo = append(h.undo, b)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

func (h *History) popUndo() (Batch, error) {
	if len(h.undo) == 0 {
		return nil, errorvalues.ErrNothingToUndo
	}
	b := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, b)
	return b, nil
}

func (h *History) popRedo() (Batch, error) {
	if len(h.redo) == 0 {
		return nil, errorvalues.ErrNothingToRedo
	}
	b := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, b)
	return b, nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
