package raster

import (
	"fmt"
	"image"
	"reflect"
	"testing"
)

func linePoints(x1, y1, x2, y2 int) []image.Point {
	var points []image.Point
	Line(x1, y1, x2, y2, func(x, y int) {
		points = append(points, image.Pt(x, y))
	})
	return points
}

func pointSet(points []image.Point) map[image.Point]int {
	set := make(map[image.Point]int)
	for _, p := range points {
		set[p]++
	}
	return set
}

func TestLine(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 int
		want           []image.Point
	}{
		{0, 0, 0, 0, []image.Point{{0, 0}}},
		{0, 0, 4, 2, []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{4, 2, 0, 0, []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
		{0, 0, 3, 0, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{2, 3, 2, 0, []image.Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{0, 0, 3, 3, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{0, 3, 3, 0, []image.Point{{0, 3}, {1, 2}, {2, 1}, {3, 0}}},
		{0, 0, 2, 4, []image.Point{{0, 0}, {1, 1}, {1, 2}, {2, 3}, {2, 4}}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d,%d-%d,%d", test.x1, test.y1, test.x2, test.y2), func(it *testing.T) {
			if v := linePoints(test.x1, test.y1, test.x2, test.y2); !reflect.DeepEqual(v, test.want) {
				it.Errorf("expected %v, got %v", test.want, v)
			}
		})
	}
}

func TestLineSymmetric(t *testing.T) {
	for x2 := -6; x2 <= 6; x2++ {
		for y2 := -6; y2 <= 6; y2++ {
			var (
				a = pointSet(linePoints(1, 2, x2, y2))
				b = pointSet(linePoints(x2, y2, 1, 2))
			)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("line (1,2)-(%d,%d) differs from its reverse: %v vs %v", x2, y2, a, b)
			}
			for p, n := range a {
				if n != 1 {
					t.Fatalf("line (1,2)-(%d,%d) reports %s %d times", x2, y2, p, n)
				}
			}
		}
	}
}

func TestCircle(t *testing.T) {
	for r := 0; r <= 20; r++ {
		t.Run(fmt.Sprintf("r=%d", r), func(it *testing.T) {
			var points []image.Point
			Circle(r, func(dx, dy int) {
				points = append(points, image.Pt(dx, dy))
			})
			set := pointSet(points)
			for p, n := range set {
				if n != 1 {
					it.Fatalf("point %s reported %d times", p, n)
				}
				for _, q := range []image.Point{{-p.X, p.Y}, {p.X, -p.Y}, {p.Y, p.X}} {
					if set[q] == 0 {
						it.Fatalf("point %s has no reflection %s", p, q)
					}
				}
			}
			// Every row between -r and r is covered.
			for dy := -r; dy <= r; dy++ {
				var found bool
				for p := range set {
					if found = p.Y == dy; found {
						break
					}
				}
				if !found {
					it.Fatalf("row %d has no pixels", dy)
				}
			}
		})
	}

	var n int
	Circle(-1, func(int, int) { n++ })
	if n != 0 {
		t.Errorf("expected no points for a negative radius, got %d", n)
	}
}

func TestCircleRadius3(t *testing.T) {
	var points []image.Point
	Circle(3, func(dx, dy int) {
		points = append(points, image.Pt(dx, dy))
	})
	want := pointSet([]image.Point{
		{0, 3}, {0, -3}, {3, 0}, {-3, 0},
		{1, 3}, {-1, 3}, {1, -3}, {-1, -3}, {3, 1}, {-3, 1}, {3, -1}, {-3, -1},
		{2, 2}, {-2, 2}, {2, -2}, {-2, -2},
	})
	if v := pointSet(points); !reflect.DeepEqual(v, want) {
		t.Errorf("expected %v, got %v", want, v)
	}
}

func TestSpans(t *testing.T) {
	tests := []struct {
		r    int
		want []int
	}{
		{-1, nil},
		{0, []int{0}},
		{1, []int{1, 0}},
		{3, []int{3, 3, 2, 1}},
	}
	for _, test := range tests {
		if v := Spans(test.r); !reflect.DeepEqual(v, test.want) {
			t.Errorf("r=%d: expected %v, got %v", test.r, test.want, v)
		}
	}
}
