// Package index provides an in-memory B-tree mapping integer keys to
// row positions. It is a standalone optimization layer: the executor
// does not consult it, and a host that maintains one must keep it
// consistent with table mutations itself.
package index

import (
	"fmt"
	"strings"
)

// Key is the indexed value. Only integer columns can be indexed.
type Key = int64

type entry struct {
	key Key
	row int
}

type node struct {
	entries  []entry
	children []*node // empty for leaves
}

func (n *node) leaf() bool { return len(n.children) == 0 }

// BTree is a B-tree index over one column. Duplicate keys are allowed;
// Search returns the first match in key order.
type BTree struct {
	column string
	degree int // minimum degree t: nodes hold t-1..2t-1 entries
	root   *node
	size   int
}

// New creates an index for the named column with minimum degree 2.
func New(column string) *BTree {
	return NewWithDegree(column, 2)
}

// NewWithDegree creates an index with the given minimum degree (>= 2).
func NewWithDegree(column string, degree int) *BTree {
	if degree < 2 {
		panic(fmt.Sprintf("btree: minimum degree must be at least 2, got %d", degree))
	}
	return &BTree{
		column: strings.ToLower(column),
		degree: degree,
		root:   &node{},
	}
}

func (t *BTree) Column() string { return t.column }

func (t *BTree) Len() int { return t.size }

// Height returns the number of levels below the root.
func (t *BTree) Height() int {
	h := 0
	for n := t.root; !n.leaf(); n = n.children[0] {
		h++
	}
	return h
}

// Insert adds a key -> row position mapping.
func (t *BTree) Insert(key Key, row int) {
	if len(t.root.entries) == 2*t.degree-1 {
		old := t.root
		t.root = &node{children: []*node{old}}
		t.splitChild(t.root, 0)
	}
	t.insertNonFull(t.root, key, row)
	t.size++
}

// Search returns the row position of the first entry with the given
// key, or false if absent.
func (t *BTree) Search(key Key) (int, bool) {
	n := t.root
	for {
		i := 0
		for i < len(n.entries) && n.entries[i].key < key {
			i++
		}
		if i < len(n.entries) && n.entries[i].key == key {
			return n.entries[i].row, true
		}
		if n.leaf() {
			return 0, false
		}
		n = n.children[i]
	}
}

// Contains reports whether the key is present.
func (t *BTree) Contains(key Key) bool {
	_, ok := t.Search(key)
	return ok
}

// SearchRange returns the row positions of every entry with
// lo <= key <= hi, in key order.
func (t *BTree) SearchRange(lo, hi Key) []int {
	var rows []int
	t.walkRange(t.root, lo, hi, &rows)
	return rows
}

// Keys returns every key in sorted order, duplicates included.
func (t *BTree) Keys() []Key {
	var keys []Key
	t.walk(t.root, func(e entry) {
		keys = append(keys, e.key)
	})
	return keys
}

func (t *BTree) String() string {
	return fmt.Sprintf("BTree{column=%q, degree=%d, size=%d, height=%d}",
		t.column, t.degree, t.size, t.Height())
}

func (t *BTree) insertNonFull(n *node, key Key, row int) {
	i := len(n.entries) - 1
	if n.leaf() {
		n.entries = append(n.entries, entry{})
		for i >= 0 && key < n.entries[i].key {
			n.entries[i+1] = n.entries[i]
			i--
		}
		n.entries[i+1] = entry{key: key, row: row}
		return
	}

	for i >= 0 && key < n.entries[i].key {
		i--
	}
	i++
	if len(n.children[i].entries) == 2*t.degree-1 {
		t.splitChild(n, i)
		if key > n.entries[i].key {
			i++
		}
	}
	t.insertNonFull(n.children[i], key, row)
}

// splitChild splits the full child at position i, moving its middle
// entry up into n.
func (t *BTree) splitChild(n *node, i int) {
	child := n.children[i]
	mid := t.degree - 1

	sibling := &node{
		entries: append([]entry(nil), child.entries[mid+1:]...),
	}
	if !child.leaf() {
		sibling.children = append([]*node(nil), child.children[mid+1:]...)
		child.children = child.children[:mid+1]
	}
	midEntry := child.entries[mid]
	child.entries = child.entries[:mid]

	n.entries = append(n.entries, entry{})
	copy(n.entries[i+1:], n.entries[i:])
	n.entries[i] = midEntry

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = sibling
}

func (t *BTree) walk(n *node, visit func(entry)) {
	for i, e := range n.entries {
		if !n.leaf() {
			t.walk(n.children[i], visit)
		}
		visit(e)
	}
	if !n.leaf() {
		t.walk(n.children[len(n.entries)], visit)
	}
}

func (t *BTree) walkRange(n *node, lo, hi Key, rows *[]int) {
	for i, e := range n.entries {
		if e.key > hi {
			// The subtree left of this entry can still hold in-range keys.
			if !n.leaf() {
				t.walkRange(n.children[i], lo, hi, rows)
			}
			return
		}
		if !n.leaf() && e.key >= lo {
			t.walkRange(n.children[i], lo, hi, rows)
		}
		if e.key >= lo {
			*rows = append(*rows, e.row)
		}
	}
	if !n.leaf() {
		t.walkRange(n.children[len(n.entries)], lo, hi, rows)
	}
}
