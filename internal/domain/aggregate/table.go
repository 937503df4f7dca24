package aggregate

import (
	"sort"

	"github.com/okian/courtside/internal/domain/model"
)

// keyFunc extracts the aggregation key of an event; "" skips the event.
type keyFunc func(model.Event) string

func teamKey(e model.Event) string   { return e.TeamTricode }
func playerKey(e model.Event) string { return e.PlayerName }

// table keeps one Line per key in first-appearance order.
type table struct {
	order []string
	lines map[string]Line
}

func newTable() *table {
	return &table{lines: make(map[string]Line)}
}

func (t *table) add(key string, e model.Event) {
	l, ok := t.lines[key]
	if !ok {
		t.order = append(t.order, key)
	}
	t.lines[key] = Apply(l, e)
}

// merge folds o into t. Keys new to t are appended in o's order, so merging
// contiguous partitions left to right preserves global first appearance.
func (t *table) merge(o *table) {
	for _, key := range o.order {
		l, ok := t.lines[key]
		if !ok {
			t.order = append(t.order, key)
		}
		t.lines[key] = Merge(l, o.lines[key])
	}
}

func (t *table) sortedKeys() []string {
	keys := append([]string(nil), t.order...)
	sort.Strings(keys)
	return keys
}

func fold(events []model.Event, key keyFunc) *table {
	t := newTable()
	for _, e := range events {
		if k := key(e); k != "" {
			t.add(k, e)
		}
	}
	return t
}
