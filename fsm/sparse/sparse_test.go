package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	M := NewIntMatrix(-1)
	M.Set(2, 3, 4711)
	M.Set(0, 5, 1)
	M.Set(2, 1, 7)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(10, 10); v != -1 {
		t.Errorf("expected M(10,10) to be null-value, is %d", v)
	}
	M.Set(2, 3, 12)
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	if M.M() != 3 || M.N() != 6 {
		t.Errorf("expected dimension 3x6, is %dx%d", M.M(), M.N())
	}
}

func TestRowIteration(t *testing.T) {
	M := NewIntMatrix(DefaultNullValue)
	M.Set(1, 4, 40).Set(1, 0, 0).Set(0, 9, 9).Set(1, 2, 20).Set(2, 0, 1)
	var cols []int
	M.Row(1, func(col int, v int32) {
		if int32(col*10) != v {
			t.Errorf("unexpected value %d in column %d", v, col)
		}
		cols = append(cols, col)
	})
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 2 || cols[2] != 4 {
		t.Errorf("expected columns [0 2 4], have %v", cols)
	}
}
