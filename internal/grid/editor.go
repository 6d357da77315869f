package grid

import (
	"strings"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
)

// ClipboardCell is a copied value addressed relative to the first copied cell.
type ClipboardCell struct {
	DayOffset  int    `json:"dayOffset"`
	HourOffset int    `json:"hourOffset"`
	Value      string `json:"value"`
}

// Editor holds the selection and edit history of one month. Not safe for concurrent use.
type Editor struct {
	month    *Month
	selected map[CellID]struct{}
	start    *CellID
	end      *CellID
	history  *History
}

func NewEditor(m *Month, historyLimit int) *Editor {
	return &Editor{
		month:    m,
		selected: make(map[CellID]struct{}),
		history:  NewHistory(historyLimit),
	}
}

func (e *Editor) Month() *Month {
	return e.month
}

func (e *Editor) History() *History {
	return e.history
}

// SelectRectangle replaces the selection with every cell of the box spanned by a and b.
func (e *Editor) SelectRectangle(a, b CellID) error {
	if !e.month.Contains(a) || !e.month.Contains(b) {
		return errorvalues.ErrInvalidCell
	}
	minDay, maxDay := min(a.Day, b.Day), max(a.Day, b.Day)
	minHour, maxHour := min(a.Hour, b.Hour), max(a.Hour, b.Hour)
	e.selected = make(map[CellID]struct{}, (maxDay-minDay+1)*(maxHour-minHour+1))
	for d := minDay; d <= maxDay; d++ {
		for h := minHour; h <= maxHour; h++ {
			e.selected[CellID{Day: d, Hour: h}] = struct{}{}
		}
	}
	e.start, e.end = &a, &b
	return nil
}

// Select replaces the selection with the given cells.
func (e *Editor) Select(ids ...CellID) error {
	for _, id := range ids {
		if !e.month.Contains(id) {
			return errorvalues.ErrInvalidCell
		}
	}
	e.selected = make(map[CellID]struct{}, len(ids))
	for _, id := range ids {
		e.selected[id] = struct{}{}
	}
	e.start, e.end = nil, nil
	return nil
}

func (e *Editor) ToggleCell(id CellID) error {
	if !e.month.Contains(id) {
		return errorvalues.ErrInvalidCell
	}
	if _, ok := e.selected[id]; ok {
		delete(e.selected, id)
	} else {
		e.selected[id] = struct{}{}
	}
	e.start, e.end = nil, nil
	return nil
}

func (e *Editor) ClearSelection() {
	e.selected = make(map[CellID]struct{})
	e.start, e.end = nil, nil
}

func (e *Editor) Selected() []CellID {
	ids := make([]CellID, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sortCells(ids)
	return ids
}

func (e *Editor) IsSelected(id CellID) bool {
	_, ok := e.selected[id]
	return ok
}

// Bounds returns the corners of the last rectangular selection, if any.
func (e *Editor) Bounds() (start, end *CellID) {
	return e.start, e.end
}

func (e *Editor) Copy() ([]ClipboardCell, error) {
	ids := e.Selected()
	if len(ids) == 0 {
		return nil, errorvalues.ErrEmptySelection
	}
	c := ids[0]
	clip := make([]ClipboardCell, 0, len(ids))
	for _, id := range ids {
		clip = append(clip, ClipboardCell{
			DayOffset:  id.Day - c.Day,
			HourOffset: id.Hour - c.Hour,
			Value:      e.month.Value(id),
		})
	}
	return clip, nil
}

// Paste writes clip at the selection, offsets counted from the first selected cell. A single selected
// cell receives the whole clipboard; a larger selection only values whose offset lands on a selected cell.
func (e *Editor) Paste(clip []ClipboardCell) (Batch, error) {
	if len(clip) == 0 {
		return nil, errorvalues.ErrEmptyClipboard
	}
	ids := e.Selected()
	if len(ids) == 0 {
		return nil, errorvalues.ErrEmptySelection
	}
	anchor := ids[0]
	single := len(ids) == 1
	writes := make(map[CellID]string, len(clip))
	for _, cc := range clip {
		target := CellID{Day: anchor.Day + cc.DayOffset, Hour: anchor.Hour + cc.HourOffset}
		if !e.month.Contains(target) {
			continue
		}
		if !single && !e.IsSelected(target) {
			continue
		}
		v, ok := NormalizeValue(cc.Value)
		if !ok {
			continue
		}
		writes[target] = v
	}
	return e.apply(writes), nil
}

// PasteText writes tab/newline separated text from the first selected cell: rows map to hours, columns to days.
func (e *Editor) PasteText(text string) (Batch, error) {
	ids := e.Selected()
	if len(ids) == 0 {
		return nil, errorvalues.ErrEmptySelection
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, errorvalues.ErrEmptyClipboard
	}
	anchor := ids[0]
	writes := make(map[CellID]string)
	for i, row := range strings.Split(text, "\n") {
		for j, col := range strings.Split(row, "\t") {
			target := CellID{Day: anchor.Day + j, Hour: anchor.Hour + i}
			if !e.month.Contains(target) {
				continue
			}
			v, ok := firstLetter(col)
			if !ok {
				continue
			}
			writes[target] = v
		}
	}
	return e.apply(writes), nil
}

func (e *Editor) SetCell(id CellID, value string) (Batch, error) {
	if !e.month.Contains(id) {
		return nil, errorvalues.ErrInvalidCell
	}
	v, ok := NormalizeValue(value)
	if !ok {
		return nil, errorvalues.ErrInvalidCategoryKey
	}
	return e.apply(map[CellID]string{id: v}), nil
}

// FillSelected writes the same value into every selected cell. An empty value clears them.
func (e *Editor) FillSelected(value string) (Batch, error) {
	ids := e.Selected()
	if len(ids) == 0 {
		return nil, errorvalues.ErrEmptySelection
	}
	v, ok := NormalizeValue(value)
	if !ok {
		return nil, errorvalues.ErrInvalidCategoryKey
	}
	writes := make(map[CellID]string, len(ids))
	for _, id := range ids {
		writes[id] = v
	}
	return e.apply(writes), nil
}

func (e *Editor) Undo() (Batch, error) {
	b, err := e.history.popUndo()
	if err != nil {
		return nil, err
	}
	inv := b.inverse()
	e.write(inv)
	return inv, nil
}

func (e *Editor) Redo() (Batch, error) {
	b, err := e.history.popRedo()
	if err != nil {
		return nil, err
	}
	e.write(b)
	return b, nil
}

// apply writes values and records the effective changes as one history entry.
func (e *Editor) apply(writes map[CellID]string) Batch {
	ids := make([]CellID, 0, len(writes))
	for id := range writes {
		ids = append(ids, id)
	}
	sortCells(ids)
	b := make(Batch, 0, len(ids))
	for _, id := range ids {
		old := e.month.Value(id)
		if old == writes[id] {
			continue
		}
		b = append(b, Change{Cell: id, Old: old, New: writes[id]})
	}
	if len(b) == 0 {
		return b
	}
	e.write(b)
	e.history.push(b)
	return b
}

func (e *Editor) write(b Batch) {
	for _, ch := range b {
		e.month.set(ch.Cell, ch.New)
	}
}
