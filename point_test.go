package geom

import "testing"

func TestPoint_Creation(t *testing.T) {
	p := Pt(3, 4)
	if p.X != 3 || p.Y != 4 {
		t.Errorf("Pt(3, 4) = %v, want (3, 4)", p)
	}

	var origin Point[float64]
	if origin != Pt(0.0, 0.0) {
		t.Errorf("zero Point = %v, want origin", origin)
	}
}

func TestPoint_Translate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point[int]
		v      Vec[int]
		expect Point[int]
	}{
		{"zero vector", Pt(1, 1), V(0, 0), Pt(1, 1)},
		{"positive", Pt(1, 1), V(2, 3), Pt(3, 4)},
		{"negative", Pt(1, 1), V(-2, -3), Pt(-1, -2)},
		{"from origin", Pt(0, 0), V(5, 7), Pt(5, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.v); got != tt.expect {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.p, tt.v, got, tt.expect)
			}
			// Sub undoes Add.
			if got := tt.expect.Sub(tt.v); got != tt.p {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.expect, tt.v, got, tt.p)
			}
		})
	}
}

func TestPoint_To(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point[int]
		expect Vec[int]
	}{
		{"same point", Pt(2, 2), Pt(2, 2), V(0, 0)},
		{"forward", Pt(1, 1), Pt(3, 4), V(2, 3)},
		{"backward", Pt(3, 4), Pt(1, 1), V(-2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.To(tt.q)
			if got != tt.expect {
				t.Errorf("%v.To(%v) = %v, want %v", tt.p, tt.q, got, tt.expect)
			}
			// The displacement added to p must land on q.
			if back := tt.p.Add(got); back != tt.q {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.p, got, back, tt.q)
			}
		})
	}
}

func TestPoint_At(t *testing.T) {
	p := Pt(3.0, 4.0)
	if got := p.At(0); got != 3.0 {
		t.Errorf("At(0) = %v, want 3", got)
	}
	if got := p.At(1); got != 4.0 {
		t.Errorf("At(1) = %v, want 4", got)
	}
}

func TestPoint_Set(t *testing.T) {
	var p Point[int]
	p.Set(0, 7)
	p.Set(1, 9)
	if p != Pt(7, 9) {
		t.Errorf("after Set = %v, want (7, 9)", p)
	}
}

func TestPoint_IndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At(2) did not panic")
		}
	}()
	Pt(1, 2).At(2)
}

func TestPoint_Equality(t *testing.T) {
	points := []Point[int]{Pt(0, 0), Pt(1, 2), Pt(2, 1), Pt(1, 2)}
	for _, a := range points {
		for _, b := range points {
			eq := a == b
			ne := a != b
			if eq == ne {
				t.Errorf("%v vs %v: == and != are not mutually exclusive", a, b)
			}
			if eq != (a.X == b.X && a.Y == b.Y) {
				t.Errorf("%v == %v is %v, want componentwise equality", a, b, eq)
			}
		}
	}
}

func TestPoint_ProductOrder(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point[int]
		lessEq bool
		less   bool
	}{
		{"equal", Pt(1, 1), Pt(1, 1), true, false},
		{"both smaller", Pt(1, 1), Pt(2, 2), true, true},
		{"incomparable", Pt(1, 5), Pt(5, 1), false, false},
		{"incomparable flipped", Pt(5, 1), Pt(1, 5), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.LessEq(tt.b); got != tt.lessEq {
				t.Errorf("%v.LessEq(%v) = %v, want %v", tt.a, tt.b, got, tt.lessEq)
			}
			if got := tt.a.Less(tt.b); got != tt.less {
				t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.less)
			}
			if got := tt.b.GreaterEq(tt.a); got != tt.lessEq {
				t.Errorf("%v.GreaterEq(%v) = %v, want %v", tt.b, tt.a, got, tt.lessEq)
			}
			if got := tt.b.Greater(tt.a); got != tt.less {
				t.Errorf("%v.Greater(%v) = %v, want %v", tt.b, tt.a, got, tt.less)
			}
		})
	}
}

func TestPoint_String(t *testing.T) {
	if got := Pt(3, 4).String(); got != "3, 4" {
		t.Errorf("Pt(3, 4).String() = %q, want %q", got, "3, 4")
	}
	if got := Pt(-1.5, 0.5).String(); got != "-1.5, 0.5" {
		t.Errorf("Pt(-1.5, 0.5).String() = %q, want %q", got, "-1.5, 0.5")
	}
}
