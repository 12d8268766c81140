package recvec

import "testing"

func TestNewInitialValue(t *testing.T) {
	rv := New(3, 2, uint32(99))
	if rv.NrRows() != 2 || rv.NrCols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", rv.NrRows(), rv.NrCols())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if rv.Get(r, c) != 99 {
				t.Errorf("Get(%d,%d) = %d, want 99", r, c, rv.Get(r, c))
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	rv := New(4, 3, false)
	rv.Set(2, 3, true)
	if !rv.Get(2, 3) {
		t.Error("Get(2,3) = false after Set")
	}
	if rv.Get(2, 2) || rv.Get(1, 3) {
		t.Error("neighbouring entries changed")
	}
}

func TestAddRows(t *testing.T) {
	rv := New(2, 1, uint32(0))
	rv.Set(0, 1, 7)
	rv.AddRows(2)
	if rv.NrRows() != 3 {
		t.Fatalf("NrRows = %d, want 3", rv.NrRows())
	}
	if rv.Get(0, 1) != 7 {
		t.Error("existing entry lost after AddRows")
	}
	if rv.Get(2, 0) != 0 {
		t.Error("new row not initialised")
	}
}

func TestAddCols(t *testing.T) {
	rv := New(2, 3, uint32(5))
	rv.Set(1, 0, 10)
	rv.Set(2, 1, 11)
	rv.AddCols(2)
	if rv.NrCols() != 4 {
		t.Fatalf("NrCols = %d, want 4", rv.NrCols())
	}
	if rv.Get(1, 0) != 10 || rv.Get(2, 1) != 11 {
		t.Error("existing entries moved by AddCols")
	}
	if rv.Get(0, 2) != 5 || rv.Get(2, 3) != 5 {
		t.Error("new columns not initialised")
	}
}

func TestClone(t *testing.T) {
	rv := New(2, 2, uint32(0))
	rv.Set(1, 1, 42)
	cp := rv.Clone()
	cp.Set(0, 0, 1)
	if rv.Get(0, 0) != 0 {
		t.Error("Clone shares storage with original")
	}
	if cp.Get(1, 1) != 42 {
		t.Error("Clone lost entries")
	}
}
