// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount

import "testing"

func TestAddAmountCarries(t *testing.T) {
	var b Big
	b.Lo = ^uint64(0)
	b.AddAmount(1)
	if b.Lo != 0 || b.Hi != 1 {
		t.Fatalf("want carry into Hi, got Lo=%d Hi=%d", b.Lo, b.Hi)
	}
}

func TestAddAccumulates(t *testing.T) {
	var b Big
	b.Add(Big{Lo: 5, Hi: 0})
	b.Add(Big{Lo: 7, Hi: 2})
	if b.Lo != 12 || b.Hi != 2 {
		t.Fatalf("got Lo=%d Hi=%d, want Lo=12 Hi=2", b.Lo, b.Hi)
	}
}

func TestCmp(t *testing.T) {
	a := Big{Lo: 1, Hi: 0}
	b := Big{Lo: 0, Hi: 1}
	if a.Cmp(b) >= 0 {
		t.Fatalf("expected a < b")
	}
	if b.Cmp(a) <= 0 {
		t.Fatalf("expected b > a")
	}
	if a.Cmp(a) != 0 {
		t.Fatalf("expected a == a")
	}
}

func TestExportLayout(t *testing.T) {
	b := Big{Lo: 1, Hi: 2}
	out := b.Export()
	for i := 0; i < 16; i++ {
		if out[i] != 0 {
			t.Fatalf("expected high padding byte %d to be zero", i)
		}
	}
	if out[31] != 1 {
		t.Fatalf("expected Lo in low byte, got %x", out)
	}
	if out[23] != 2 {
		t.Fatalf("expected Hi right below Lo's word, got %x", out)
	}
}
