/*
Package sparse implements a simple type for sparse integer matrices.
It is used as the dispatch index of FSM state tables: rows are states,
columns are interned dispatch keys, and values are indices into an action
vector.

Entries are stored per row, sorted by column (a list-of-lists encoding).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(-1)          // parameter is M's null-value
//
// Then
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//     M.Row(2, f)                    // calls f(3, 4711)
//
// Dimensions grow as values are set. Values cannot be deleted.
type IntMatrix struct {
	rows    [][]entry // rows[i] is sorted by column
	cols    int
	count   int
	nullval int32
}

type entry struct {
	col   int
	value int32
}

// NewIntMatrix creates a new, empty matrix. The argument is a null-value,
// indicating empty entries.
func NewIntMatrix(nullValue int32) *IntMatrix {
	return &IntMatrix{nullval: nullValue}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count, i.e. the highest row index set plus one.
func (m *IntMatrix) M() int {
	return len(m.rows)
}

// N returns the column count, i.e. the highest column index set plus one.
func (m *IntMatrix) N() int {
	return m.cols
}

// NullValue returns the value of empty entries.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of entries set.
func (m *IntMatrix) ValueCount() int {
	return m.count
}

// Value returns the value at position (i,j), or the null-value.
func (m *IntMatrix) Value(i, j int) int32 {
	if i < 0 || i >= len(m.rows) {
		return m.nullval
	}
	row := m.rows[i]
	if k := find(row, j); k < len(row) && row[k].col == j {
		return row[k].value
	}
	return m.nullval
}

// Set sets the value at position (i,j). Negative indices are a programming
// error.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if i < 0 || j < 0 {
		panic(fmt.Sprintf("sparse.IntMatrix.Set() with index < 0: (%d,%d)", i, j))
	}
	for i >= len(m.rows) {
		m.rows = append(m.rows, nil)
	}
	row := m.rows[i]
	k := find(row, j)
	if k < len(row) && row[k].col == j {
		row[k].value = value
		return m
	}
	row = append(row, entry{})
	copy(row[k+1:], row[k:])
	row[k] = entry{col: j, value: value}
	m.rows[i] = row
	m.count++
	if j >= m.cols {
		m.cols = j + 1
	}
	return m
}

// Row calls f for every non-null entry of row i, in column order.
func (m *IntMatrix) Row(i int, f func(col int, value int32)) {
	if i < 0 || i >= len(m.rows) {
		return
	}
	for _, e := range m.rows[i] {
		if e.value != m.nullval {
			f(e.col, e.value)
		}
	}
}

// find returns the position of the first entry of row with a column >= j.
func find(row []entry, j int) int {
	return sort.Search(len(row), func(k int) bool {
		return row[k].col >= j
	})
}
