package transform

import (
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/go-tabula/tabula"
)

// keyIndex buckets GroupKeys by xxhash of their canonical byte encoding.
// Bucket membership is verified by element-wise key equality, so hash
// collisions never merge distinct keys.
type keyIndex struct {
	buckets map[uint64][]int
	keys    []tabula.GroupKey
	buf     []byte
}

func createKeyIndex() *keyIndex {
	return &keyIndex{buckets: make(map[uint64][]int)}
}

func (x *keyIndex) hash(key tabula.GroupKey) uint64 {
	x.buf = key.AppendKey(x.buf[:0])
	return xxhash.Sum64(x.buf)
}

// find returns the slot of key, or -1 if it has not been added
func (x *keyIndex) find(key tabula.GroupKey) int {
	for _, slot := range x.buckets[x.hash(key)] {
		if x.keys[slot].Equals(key) {
			return slot
		}
	}
	return -1
}

// add inserts key and returns its new slot
func (x *keyIndex) add(key tabula.GroupKey) int {
	slot := len(x.keys)
	h := x.hash(key)
	x.buckets[h] = append(x.buckets[h], slot)
	x.keys = append(x.keys, key)
	return slot
}

// size returns the number of distinct keys added
func (x *keyIndex) size() int {
	return len(x.keys)
}

// keyColumns fetches the cells of the given columns, failing on the first
// column absent from the Table
func keyColumns(t tabula.Table, cols []string) ([][]tabula.Value, error) {
	cells := make([][]tabula.Value, len(cols))
	for i, c := range cols {
		colCells, err := t.ColumnValues(c)
		if err != nil {
			return nil, err
		}
		cells[i] = colCells
	}
	return cells, nil
}

// keyAt assembles the GroupKey of one row from pre-fetched key columns
func keyAt(cells [][]tabula.Value, row int) tabula.GroupKey {
	key := make(tabula.GroupKey, len(cells))
	for i := range cells {
		key[i] = cells[i][row]
	}
	return key
}
