package gamemath

import "testing"

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, -2, 10}

	if got := a.Add(b); got != (Vec3{1.5, 0, 13}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{0.5, 4, -7}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Fatalf("Add then Sub not identity: %+v", got)
	}
}

func TestApplyFriction(t *testing.T) {
	cases := []struct {
		speed, friction, want float64
	}{
		{5, 1, 4},
		{-5, 1, -4},
		{0.3, 0.5, 0},
		{-0.3, 0.5, 0},
	}
	for _, c := range cases {
		if got := ApplyFriction(c.speed, c.friction); got != c.want {
			t.Fatalf("ApplyFriction(%v, %v) = %v, want %v", c.speed, c.friction, got, c.want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(12, 10); got != 10 {
		t.Fatalf("ClampSpeed high = %v", got)
	}
	if got := ClampSpeed(-12, 10); got != -10 {
		t.Fatalf("ClampSpeed low = %v", got)
	}
	if got := ClampSpeed(3, 10); got != 3 {
		t.Fatalf("ClampSpeed mid = %v", got)
	}
}
