// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package inclusion

import "testing"

func TestChoiceIterCount(t *testing.T) {
	it := NewChoiceIter(2, 3)
	count := 0
	for it.Next() {
		count++
	}
	if count != 9 {
		t.Fatalf("expected 3^2=9 vectors, got %d", count)
	}
}

func TestChoiceIterEmptyK(t *testing.T) {
	it := NewChoiceIter(0, 5)
	count := 0
	for it.Next() {
		if len(it.Choice()) != 0 {
			t.Fatalf("expected an empty vector")
		}
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one empty vector, got %d", count)
	}
}

func TestChoiceIterZeroBuckets(t *testing.T) {
	it := NewChoiceIter(3, 0)
	if it.Next() {
		t.Fatalf("expected zero vectors when n=0 and k>0")
	}
}
