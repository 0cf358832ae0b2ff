package intersection

import (
	"testing"
	"time"
)

func TestNewVehicle_RouteDistance(t *testing.T) {
	now := time.Unix(0, 0)
	cases := []struct {
		route Route
		want  int
	}{
		{Right, 650},
		{Straight, 900},
		{Left, 950},
	}
	for _, c := range cases {
		v := NewVehicle("x", North, c.route, now, now)
		if v.RouteDistance != c.want {
			t.Errorf("%v: RouteDistance = %d, want %d", c.route, v.RouteDistance, c.want)
		}
	}
}

func TestAdvance_ScheduledNow_UsesNominalSpeed(t *testing.T) {
	now := time.Unix(0, 0)
	v := NewVehicle("NST-0001", North, Straight, now, now)
	v.Speed = nominalSpeed
	v.Advance(now, 16*time.Millisecond, false)
	if v.Speed != nominalSpeed {
		t.Fatalf("speed = %v, want nominal %v", v.Speed, nominalSpeed)
	}
}

func TestAdvance_AcceleratesTowardTarget_ClampedByMaxAccel(t *testing.T) {
	now := time.Unix(0, 0)
	v := NewVehicle("NST-0001", North, Straight, now, now)
	v.Advance(now, 16*time.Millisecond, false)
	if v.Speed != MaxAccelPxTick {
		t.Fatalf("speed after one tick from rest = %v, want %v (accel-limited)", v.Speed, MaxAccelPxTick)
	}
}

func TestAdvance_Braking_PreservesSpeedAndPosition(t *testing.T) {
	now := time.Unix(0, 0)
	v := NewVehicle("NST-0001", North, Straight, now, now.Add(time.Second))
	v.Speed = 120
	x, y := v.X, v.Y
	v.Advance(now, 16*time.Millisecond, true)
	if v.X != x || v.Y != y {
		t.Fatalf("position moved while braking: (%v,%v) -> (%v,%v)", x, y, v.X, v.Y)
	}
	if v.Speed != 120 {
		t.Fatalf("speed changed while braking: %v", v.Speed)
	}
	if !v.Braking {
		t.Fatal("expected Braking flag set")
	}
}

func TestAdvance_RightTurnNeverYieldsTime(t *testing.T) {
	now := time.Unix(0, 0)
	// A scheduled entry far in the future would normally crawl a
	// straight-route vehicle to a near-zero target speed; right turns
	// must ignore that and always target nominal speed.
	v := NewVehicle("SRT-0001", South, Right, now, now.Add(time.Hour))
	v.Speed = nominalSpeed
	v.Advance(now, 16*time.Millisecond, false)
	if v.Speed != nominalSpeed {
		t.Fatalf("right-turn speed = %v, want nominal %v", v.Speed, nominalSpeed)
	}
}

func TestConsumeBrakeEdge_OnlyFiresOnRisingEdge(t *testing.T) {
	now := time.Unix(0, 0)
	v := NewVehicle("x", North, Straight, now, now)

	v.Advance(now, 16*time.Millisecond, true)
	if !v.ConsumeBrakeEdge() {
		t.Fatal("expected rising edge on first brake tick")
	}
	if v.ConsumeBrakeEdge() {
		t.Fatal("edge should be consumed, not fire twice")
	}

	v.Advance(now, 16*time.Millisecond, true)
	if v.ConsumeBrakeEdge() {
		t.Fatal("continued braking should not re-fire the edge")
	}
}

func TestBoundingBox_RotatesForEastWest(t *testing.T) {
	now := time.Unix(0, 0)
	v := NewVehicle("x", East, Straight, now, now)
	bb := v.BoundingBox()
	if bb.W != CarHeightPx || bb.H != CarWidthPx {
		t.Fatalf("East bounding box = %+v, want swapped dimensions", bb)
	}

	v2 := NewVehicle("y", North, Straight, now, now)
	bb2 := v2.BoundingBox()
	if bb2.W != CarWidthPx || bb2.H != CarHeightPx {
		t.Fatalf("North bounding box = %+v, want unrotated dimensions", bb2)
	}
}

func TestPivot_SetsStickyTurnedFlag(t *testing.T) {
	now := time.Unix(0, 0)
	v := NewVehicle("x", South, Right, now, now)
	v.pivot()
	if !v.Turned {
		t.Fatal("expected Turned to be set")
	}
	if v.Direction != West {
		t.Fatalf("South right turn should face West, got %v", v.Direction)
	}
	// Pivoting again should be idempotent from the caller's perspective:
	// Advance only calls pivot while !Turned.
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	c := Rect{X: 20, Y: 20, W: 10, H: 10}
	if !a.Intersects(b) {
		t.Fatal("expected overlap")
	}
	if a.Intersects(c) {
		t.Fatal("expected no overlap")
	}
}
