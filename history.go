package slicecube

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

const (
	recordSeparator = "~"
	fieldSeparator  = "_"
)

var ErrMalformedHistory = errors.New("malformed rotation history")

// gridEps is how far a parsed value may sit from an exact grid cell or quarter turn.
const gridEps = 1e-9

// RotationRecord is one applied turn: the slice through Pivot rotated by Angle about Axis.
// Pivot is in grid units, each component one of -1, 0 or 1.
type RotationRecord struct {
	Pivot Vector3
	Axis  Axis
	Angle float64
}

// Inverse is the record that undoes r.
func (r RotationRecord) Inverse() RotationRecord {
	return RotationRecord{Pivot: r.Pivot, Axis: r.Axis, Angle: -r.Angle}
}

// Validate accepts only whole, nonzero quarter turns about a pivot on the grid.
func (r RotationRecord) Validate() error {
	k := r.Angle / QuarterTurn
	if math.IsNaN(k) || math.Abs(k-math.Round(k)) > gridEps || math.Round(k) == 0 {
		return fmt.Errorf("angle %v is not a quarter turn multiple: %w", r.Angle, ErrMalformedHistory)
	}
	for _, c := range []float64{r.Pivot.X, r.Pivot.Y, r.Pivot.Z} {
		cell := math.Round(c)
		if math.Abs(c-cell) > gridEps || math.Abs(cell) > 1 {
			return fmt.Errorf("pivot %v is off the grid: %w", r.Pivot, ErrMalformedHistory)
		}
	}
	return nil
}

// String renders the record as x,y,z_AXIS_angle.
func (r RotationRecord) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return f(r.Pivot.X) + "," + f(r.Pivot.Y) + "," + f(r.Pivot.Z) +
		fieldSeparator + r.Axis.String() + fieldSeparator + f(r.Angle)
}

// ParseRecord reads one x,y,z_AXIS_angle record.
func ParseRecord(s string) (RotationRecord, error) {
	parts := strings.Split(s, fieldSeparator)
	if len(parts) != 3 {
		return RotationRecord{}, fmt.Errorf("record %q: want 3 fields, got %d: %w", s, len(parts), ErrMalformedHistory)
	}
	coords := strings.Split(parts[0], ",")
	if len(coords) != 3 {
		return RotationRecord{}, fmt.Errorf("record %q: want 3 pivot coordinates: %w", s, ErrMalformedHistory)
	}
	var pivot [3]float64
	for i, c := range coords {
		v, err := parseFinite(c)
		if err != nil {
			return RotationRecord{}, fmt.Errorf("record %q pivot: %w", s, err)
		}
		pivot[i] = v
	}
	axis, err := ParseAxis(parts[1])
	if err != nil {
		return RotationRecord{}, fmt.Errorf("record %q: %v: %w", s, err, ErrMalformedHistory)
	}
	angle, err := parseFinite(parts[2])
	if err != nil {
		return RotationRecord{}, fmt.Errorf("record %q angle: %w", s, err)
	}
	r := RotationRecord{Pivot: NewVector3(pivot[0], pivot[1], pivot[2]), Axis: axis, Angle: angle}
	if err := r.Validate(); err != nil {
		return RotationRecord{}, fmt.Errorf("record %q: %w", s, err)
	}
	return r, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse float value '%s': %w", s, ErrMalformedHistory)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value '%s': %w", s, ErrMalformedHistory)
	}
	return v, nil
}

// FormatHistory joins records with "~". No records give the empty string.
func FormatHistory(records []RotationRecord) string {
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.String()
	}
	return strings.Join(parts, recordSeparator)
}

// ParseHistory reads a FormatHistory string. A single bad record fails the whole string.
func ParseHistory(s string) ([]RotationRecord, error) {
	if s == "" {
		return []RotationRecord{}, nil
	}
	parts := strings.Split(s, recordSeparator)
	records := make([]RotationRecord, 0, len(parts))
	for i, p := range parts {
		r, err := ParseRecord(p)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// History keeps the applied turns for persistence and their inverses for undo.
type History struct {
	mux     sync.Mutex
	records []RotationRecord
	undo    []RotationRecord
}

func NewHistory() *History {
	return &History{}
}

// Push records r as applied and stacks its inverse for later reversal.
func (h *History) Push(r RotationRecord) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.records = append(h.records, r)
	h.undo = append(h.undo, r.Inverse())
}

// PopUndo removes the most recent inverse. It also reports how many remain.
func (h *History) PopUndo() (RotationRecord, int, bool) {
	h.mux.Lock()
	defer h.mux.Unlock()
	n := len(h.undo)
	if n == 0 {
		return RotationRecord{}, 0, false
	}
	r := h.undo[n-1]
	h.undo = h.undo[:n-1]
	return r, n - 1, true
}

func (h *History) UndoLen() int {
	h.mux.Lock()
	defer h.mux.Unlock()
	return len(h.undo)
}

func (h *History) Len() int {
	h.mux.Lock()
	defer h.mux.Unlock()
	return len(h.records)
}

func (h *History) Records() []RotationRecord {
	h.mux.Lock()
	defer h.mux.Unlock()
	out := make([]RotationRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Clear() {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.records = nil
	h.undo = nil
}

func (h *History) String() string {
	return FormatHistory(h.Records())
}
