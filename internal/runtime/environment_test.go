package runtime

import "testing"

func TestEnvironmentGetWalksEnclosingChain(t *testing.T) {
	globals := NewEnvironment()
	globals.Define("a", Number(1))
	local := NewEnclosedEnvironment(globals)

	v, err := local.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Number(1) {
		t.Errorf("got %v, want 1", v)
	}
}

func TestEnvironmentGetUndefinedReturnsError(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Get("missing"); err == nil {
		t.Fatalf("expected an error for an undefined name")
	}
}

func TestEnvironmentAssignWritesNearestFrame(t *testing.T) {
	globals := NewEnvironment()
	globals.Define("a", Number(1))
	local := NewEnclosedEnvironment(globals)

	if err := local.Assign("a", Number(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := globals.Get("a")
	if v != Number(2) {
		t.Errorf("assignment should have written through to globals, got %v", v)
	}
}

func TestEnvironmentAssignUndefinedReturnsError(t *testing.T) {
	env := NewEnvironment()
	if err := env.Assign("missing", Number(1)); err == nil {
		t.Fatalf("expected an error assigning an undefined name")
	}
}

func TestEnvironmentGetAtSkipsDirectlyToFrame(t *testing.T) {
	globals := NewEnvironment()
	globals.Define("a", Number(1))
	mid := NewEnclosedEnvironment(globals)
	mid.Define("a", Number(2))
	inner := NewEnclosedEnvironment(mid)

	if v := inner.GetAt(1, "a"); v != Number(2) {
		t.Errorf("got %v, want 2 (mid's binding)", v)
	}
	if v := inner.GetAt(2, "a"); v != Number(1) {
		t.Errorf("got %v, want 1 (global's binding)", v)
	}
}

func TestEnvironmentAssignAtWritesExactFrame(t *testing.T) {
	globals := NewEnvironment()
	globals.Define("a", Number(1))
	inner := NewEnclosedEnvironment(globals)

	inner.AssignAt(1, "a", Number(9))

	v, _ := globals.Get("a")
	if v != Number(9) {
		t.Errorf("got %v, want 9", v)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{NilValue, false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{String(""), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(NilValue, Nil{}) {
		t.Errorf("nil should equal nil")
	}
	if Equal(NilValue, Number(0)) {
		t.Errorf("nil should not equal 0")
	}
	if !Equal(Number(1), Number(1)) {
		t.Errorf("equal numbers should compare equal")
	}
	if Equal(Number(1), String("1")) {
		t.Errorf("values of different types should never be equal")
	}
}

func TestNumberStringification(t *testing.T) {
	cases := []struct {
		n    Number
		want string
	}{
		{Number(3), "3"},
		{Number(-2), "-2"},
		{Number(1.5), "1.5"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.n, got, c.want)
		}
	}
}
