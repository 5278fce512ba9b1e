package machina

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Compare orders two values of an ordered type. It is the comparator used by
// New and NewMoore. A floating-point NaN sorts before every other value and
// compares equal to any other NaN.
func Compare[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// isNaN reports whether x is a NaN.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// table is an ordered map keyed by identifier. Keys act as stable handles:
// nothing outside the table keeps a pointer to a stored value.
type table[K comparable, V any] struct {
	tree *treemap.Map
}

func newTable[K comparable, V any](compare func(a, b K) int) *table[K, V] {
	var comparator utils.Comparator = func(a, b interface{}) int {
		ka, _ := a.(K)
		kb, _ := b.(K)
		return compare(ka, kb)
	}
	return &table[K, V]{tree: treemap.NewWith(comparator)}
}

func (t *table[K, V]) get(key K) (V, bool) {
	value, found := t.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	// Comma-ok keeps nil interface values of V from panicking.
	v, _ := value.(V)
	return v, true
}

func (t *table[K, V]) has(key K) bool {
	_, found := t.tree.Get(key)
	return found
}

func (t *table[K, V]) put(key K, value V) {
	t.tree.Put(key, value)
}

func (t *table[K, V]) remove(key K) {
	t.tree.Remove(key)
}

func (t *table[K, V]) len() int {
	return t.tree.Size()
}

// each visits the entries in ascending key order.
func (t *table[K, V]) each(fn func(key K, value V)) {
	it := t.tree.Iterator()
	for it.Next() {
		key, _ := it.Key().(K)
		value, _ := it.Value().(V)
		fn(key, value)
	}
}

func (t *table[K, V]) keys() []K {
	keys := make([]K, 0, t.len())
	t.each(func(key K, _ V) {
		keys = append(keys, key)
	})
	return keys
}
