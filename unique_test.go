package arc

import (
	stderrors "errors"
	"testing"

	arcerrors "github.com/arqlabs/arc/errors"
)

func TestUnique_Basic(t *testing.T) {
	deleted := 0
	val := "resource"
	u := NewUnique(&val, func(p *string) { deleted++ })

	if !u.Valid() {
		t.Fatal("expected valid handle")
	}

	p, err := u.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if *p != "resource" {
		t.Fatalf("Expected 'resource', got %v", *p)
	}

	u.Drop()
	if deleted != 1 {
		t.Fatalf("Expected 1 deleter call, got %d", deleted)
	}
	if u.Valid() {
		t.Fatal("expected empty handle after Drop")
	}

	// Drop on an empty handle is a no-op.
	u.Drop()
	if deleted != 1 {
		t.Fatalf("Expected deleter to stay at 1, got %d", deleted)
	}
}

func TestUnique_GetEmpty(t *testing.T) {
	var u Unique[int]

	_, err := u.Get()
	if err == nil {
		t.Fatal("expected error on empty dereference")
	}
	if !stderrors.Is(err, &arcerrors.Error{Phase: arcerrors.PhaseDeref, Kind: arcerrors.KindNilPointer}) {
		t.Fatalf("expected nil_pointer error, got %v", err)
	}
}

func TestUnique_Move(t *testing.T) {
	deleted := 0
	val := 7
	u := NewUnique(&val, func(p *int) { deleted++ })

	m := u.Move()

	if u.Valid() {
		t.Fatal("source should be empty after Move")
	}
	if _, err := u.Get(); err == nil {
		t.Fatal("expected dereference error on moved-from handle")
	}

	p, err := m.Get()
	if err != nil {
		t.Fatalf("Get on destination failed: %v", err)
	}
	if *p != 7 {
		t.Fatalf("Expected 7, got %d", *p)
	}

	// Dropping the empty source must not touch the resource.
	u.Drop()
	if deleted != 0 {
		t.Fatal("deleter fired through moved-from handle")
	}

	m.Drop()
	if deleted != 1 {
		t.Fatalf("Expected 1 deleter call, got %d", deleted)
	}
}

func TestUnique_MoveFrom(t *testing.T) {
	deletedA, deletedB := 0, 0
	a, b := "a", "b"
	dst := NewUnique(&a, func(p *string) { deletedA++ })
	src := NewUnique(&b, func(p *string) { deletedB++ })

	dst.MoveFrom(src)

	if deletedA != 1 {
		t.Fatal("move-assignment must destroy the destination's old resource")
	}
	if src.Valid() {
		t.Fatal("source should be empty after MoveFrom")
	}
	p, err := dst.Get()
	if err != nil || *p != "b" {
		t.Fatalf("destination should hold 'b', got %v, %v", p, err)
	}

	// Self move-assignment is a no-op.
	dst.MoveFrom(dst)
	if deletedB != 0 {
		t.Fatal("self MoveFrom destroyed the resource")
	}

	dst.Drop()
	if deletedB != 1 {
		t.Fatalf("Expected 1 deleter call, got %d", deletedB)
	}
}

func TestUnique_Reset(t *testing.T) {
	var order []string
	oldBuf := make([]byte, 10)
	newBuf := make([]byte, 5)

	u := NewUnique(&oldBuf, func(p *[]byte) {
		order = append(order, "deleted-old")
	})

	u.Reset(&newBuf)
	order = append(order, "installed-new")

	if len(order) != 2 || order[0] != "deleted-old" || order[1] != "installed-new" {
		t.Fatalf("old buffer must be destroyed before the new one is installed, got %v", order)
	}

	p, err := u.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(*p) != 5 {
		t.Fatalf("Expected the 5-element buffer, got len %d", len(*p))
	}

	u.Reset(nil)
	if u.Valid() {
		t.Fatal("Reset(nil) should leave the handle empty")
	}
}

func TestUnique_Release(t *testing.T) {
	deleted := 0
	val := 1
	u := NewUnique(&val, func(p *int) { deleted++ })

	p := u.Release()
	if p == nil || *p != 1 {
		t.Fatal("Release should return the held pointer")
	}
	if u.Valid() {
		t.Fatal("handle should be empty after Release")
	}

	u.Drop()
	if deleted != 0 {
		t.Fatal("deleter fired after Release abandoned ownership")
	}
}

func TestUnique_ToShared(t *testing.T) {
	deleted := 0
	val := 3
	u := NewUnique(&val, func(p *int) { deleted++ })

	s := u.ToShared()
	if u.Valid() {
		t.Fatal("Unique should be empty after ToShared")
	}
	if got := s.UseCount(); got != 1 {
		t.Fatalf("Expected strong count 1, got %d", got)
	}

	c := s.Clone()
	s.Drop()
	if deleted != 0 {
		t.Fatal("deleter fired while an owner remains")
	}
	c.Drop()
	if deleted != 1 {
		t.Fatalf("Expected 1 deleter call, got %d", deleted)
	}
}

func TestUnique_ToSharedEmpty(t *testing.T) {
	var u Unique[int]
	s := u.ToShared()
	if s.Valid() {
		t.Fatal("converting an empty Unique should yield an empty Shared")
	}
}
