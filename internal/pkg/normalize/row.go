package normalize

import (
	"strings"
	"sync"
)

// Header indexes the column names of one CSV file. Lookups are exact first, then
// case and accent insensitive; resolved aliases are cached.
type Header struct {
	exact  map[string]int
	folded map[string]int

	mu       sync.Mutex
	resolved map[string]int
}

func NewHeader(columns []string) *Header {
	h := &Header{
		exact:    make(map[string]int, len(columns)),
		folded:   make(map[string]int, len(columns)),
		resolved: make(map[string]int),
	}
	for i, c := range columns {
		name := strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if _, ok := h.exact[name]; !ok {
			h.exact[name] = i
		}
		key := fold(name)
		if _, ok := h.folded[key]; !ok {
			h.folded[key] = i
		}
	}
	return h
}

func (h *Header) index(alias string) int {
	if i, ok := h.exact[alias]; ok {
		return i
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if i, ok := h.resolved[alias]; ok {
		return i
	}
	i, ok := h.folded[fold(alias)]
	if !ok {
		i = -1
	}
	h.resolved[alias] = i
	return i
}

// Has reports whether any of the aliases names a column.
func (h *Header) Has(aliases ...string) bool {
	for _, a := range aliases {
		if h.index(a) >= 0 {
			return true
		}
	}
	return false
}

func (h *Header) Row(values []string) Row {
	return Row{header: h, values: values}
}

// Row is one raw CSV record bound to its file header.
type Row struct {
	header *Header
	values []string
}

// RowFromMap builds a Row from column/value pairs.
func RowFromMap(m map[string]string) Row {
	columns := make([]string, 0, len(m))
	values := make([]string, 0, len(m))
	for k, v := range m {
		columns = append(columns, k)
		values = append(values, v)
	}
	return NewHeader(columns).Row(values)
}

// Get returns the value of the first alias whose column exists and is non-empty.
func (r Row) Get(aliases ...string) string {
	if r.header == nil {
		return ""
	}
	for _, a := range aliases {
		i := r.header.index(a)
		if i < 0 || i >= len(r.values) {
			continue
		}
		if v := strings.TrimSpace(r.values[i]); v != "" {
			return r.values[i]
		}
	}
	return ""
}
