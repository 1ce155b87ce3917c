package docmap

import (
	"reflect"
	"testing"
)

func TestDocumentOrder(t *testing.T) {
	doc := NewDocument().
		Append("z", 1).
		Append("a", 2).
		Append("m", 3)

	want := []string{"z", "a", "m"}
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	// Overwriting keeps the original position.
	doc.Put("a", 20)
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() after overwrite = %v, want %v", got, want)
	}
	if doc.Get("a") != 20 {
		t.Errorf("Get(a) = %v, want 20", doc.Get("a"))
	}
	if doc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", doc.Len())
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument().Append("present", nil)

	if doc.Get("present") != nil {
		t.Error("Get(present) should be nil")
	}
	if _, ok := doc.Lookup("present"); !ok {
		t.Error("Lookup(present) should report existence of a nil value")
	}
	if _, ok := doc.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report absence")
	}
	if !doc.Has("present") || doc.Has("missing") {
		t.Error("Has() disagrees with Lookup()")
	}
}

func TestDocumentDelete(t *testing.T) {
	doc := NewDocument().Append("a", 1).Append("b", 2).Append("c", 3)

	if !doc.Delete("b") {
		t.Fatal("Delete(b) = false, want true")
	}
	if doc.Delete("b") {
		t.Fatal("second Delete(b) = true, want false")
	}
	want := []string{"a", "c"}
	if got := doc.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() after delete = %v, want %v", got, want)
	}
}

func TestDocumentEqual(t *testing.T) {
	a := NewDocument().
		Append("s", "x").
		Append("list", NewList(1, NewDocument().Append("k", "v"))).
		Append("sub", NewDocument().Append("n", 3))
	b := NewDocument().
		Append("s", "x").
		Append("list", NewList(1, NewDocument().Append("k", "v"))).
		Append("sub", NewDocument().Append("n", 3))

	if !a.Equal(b) {
		t.Fatal("structurally identical documents compare unequal")
	}

	// Same pairs, different order: not equal.
	c := NewDocument().
		Append("list", NewList(1, NewDocument().Append("k", "v"))).
		Append("s", "x").
		Append("sub", NewDocument().Append("n", 3))
	if a.Equal(c) {
		t.Fatal("documents with different key order compare equal")
	}

	b.Put("s", "y")
	if a.Equal(b) {
		t.Fatal("documents with different values compare equal")
	}
}

func TestListOps(t *testing.T) {
	list := NewList("a", "b")
	list.Push("c")

	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}
	if v, ok := list.At(1); !ok || v != "b" {
		t.Errorf("At(1) = %v, %v", v, ok)
	}
	if _, ok := list.At(3); ok {
		t.Error("At(3) should be out of range")
	}
	if _, ok := list.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}

	if !list.Set(0, "z") {
		t.Error("Set(0) failed")
	}
	if list.Set(3, "nope") {
		t.Error("Set(3) should fail, lists never grow through Set")
	}
	if got := list.Values(); !reflect.DeepEqual(got, []any{"z", "b", "c"}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestMarshalPreservesOrder(t *testing.T) {
	doc := NewDocument().
		Append("zeta", 1.0).
		Append("alpha", NewDocument().Append("y", "1").Append("x", "2")).
		Append("list", NewList("a", 2.0, true, nil))

	data, err := ToJSON(doc)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	want := `{"zeta":1,"alpha":{"y":"1","x":"2"},"list":["a",2,true,null]}`
	if string(data) != want {
		t.Errorf("ToJSON = %s, want %s", data, want)
	}
}
