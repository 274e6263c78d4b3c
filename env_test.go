package picol

import "testing"

func TestFrameSetAndGet(t *testing.T) {
	f := newFrame(nil)
	f.set("x", "1")
	v, ok := f.get("x")
	if !ok || v != "1" {
		t.Errorf("expected x=1, got %q ok=%v", v, ok)
	}
}

func TestFrameDoesNotWalkParent(t *testing.T) {
	parent := newFrame(nil)
	parent.set("x", "1")
	child := newFrame(parent)
	if _, ok := child.get("x"); ok {
		t.Error("child frame should not see parent's variables")
	}
}

func TestFrameOverwrite(t *testing.T) {
	f := newFrame(nil)
	f.set("x", "1")
	f.set("x", "2")
	v, _ := f.get("x")
	if v != "2" {
		t.Errorf("expected x=2, got %q", v)
	}
}
