package intersection

import (
	"math"
	"time"
)

// Rect is an axis-aligned bounding box in pixel coordinates.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Vehicle is a single car tracked from spawn to exit. Grounded on
// original_source/src/car.rs, translated to the spec's px/s convention.
type Vehicle struct {
	ID        string
	Direction Direction
	Route     Route

	X, Y          float64
	Width, Height int
	Speed         float64 // px/s

	Turned         bool
	Exited         bool
	Collided       bool
	Braking        bool
	wasBraking     bool
	InIntersection bool

	CreatedAt     time.Time
	ScheduledAt   time.Time
	ActualEntryAt time.Time
	hasEntered    bool
	ExitedAt      time.Time
	hasExited     bool

	RouteDistance int
}

// NewVehicle constructs a vehicle at its spawn position with the entry
// time the ledger has already reserved for it.
func NewVehicle(id string, dir Direction, route Route, now, scheduledEntry time.Time) *Vehicle {
	sp := SpawnPosition(dir, route)
	return &Vehicle{
		ID:            id,
		Direction:     dir,
		Route:         route,
		X:             float64(sp.X),
		Y:             float64(sp.Y),
		Width:         CarWidthPx,
		Height:        CarHeightPx,
		CreatedAt:     now,
		ScheduledAt:   scheduledEntry,
		RouteDistance: RouteDistance(route),
	}
}

// BoundingBox returns the vehicle's current axis-aligned bounding box.
// North/South keep the unrotated 33x78 box; East/West swap the axes, per
// spec.md section 3 ("oriented bounding box ... rotated with direction").
func (v *Vehicle) BoundingBox() Rect {
	w, h := v.Width, v.Height
	switch v.Direction {
	case East, West:
		w, h = v.Height, v.Width
	}
	return Rect{X: int(math.Round(v.X)), Y: int(math.Round(v.Y)), W: w, H: h}
}

// distanceToEntry returns the remaining distance (px) to the conflict
// region boundary along the vehicle's heading axis: positive while
// approaching, zero exactly at the boundary defined by
// isPastEntryBoundary.
func (v *Vehicle) distanceToEntry() float64 {
	switch v.Direction {
	case North:
		return v.Y - 550
	case South:
		return 350 - (v.Y + float64(v.Height))
	case East:
		return 350 - (v.X + float64(v.Height))
	case West:
		return v.X - 550
	}
	return 0
}

// isPastEntryBoundary reports whether the vehicle has crossed into the
// conflict region on its heading axis.
func (v *Vehicle) isPastEntryBoundary() bool {
	switch v.Direction {
	case North:
		return v.Y <= 550
	case South:
		return v.Y+float64(v.Height) >= 350
	case East:
		return v.X+float64(v.Height) >= 350
	case West:
		return v.X <= 550
	}
	return false
}

func (v *Vehicle) hasLeftWindow() bool {
	switch v.Direction {
	case North:
		return v.Y+float64(v.Height) <= 0
	case South:
		return v.Y >= SimWindowHeight
	case West:
		return v.X+float64(v.Height) <= 0
	case East:
		return v.X >= SimWindowWidth+float64(v.Height)
	}
	return false
}

func (v *Vehicle) applyMovement(distance float64) {
	switch v.Direction {
	case North:
		v.Y -= distance
	case South:
		v.Y += distance
	case East:
		v.X += distance
	case West:
		v.X -= distance
	}
}

// Advance moves the vehicle forward by one tick of duration dt, applying
// the kinematic law of spec.md section 4.2. If braking is true the
// vehicle's speed is preserved and it does not move this tick.
func (v *Vehicle) Advance(now time.Time, dt time.Duration, braking bool) {
	if v.Exited {
		return
	}

	wasBraking := v.Braking
	v.Braking = braking
	if braking && !wasBraking {
		v.wasBraking = true // sticky marker consumed by World for the near-miss counter
	}
	if braking {
		return
	}

	if !v.Turned {
		switch v.Route {
		case Right:
			if v.distanceToEntry() < RightTurnThresholdPx {
				v.pivot()
			}
		case Left:
			if v.distanceToEntry() < LeftTurnThresholdPx {
				v.pivot()
			}
		}
	}

	dtSeconds := dt.Seconds()
	targetSpeed := v.targetSpeed(now)
	v.Speed = accelerateToward(v.Speed, targetSpeed, MaxAccelPxTick)
	distance := math.Round(v.Speed * dtSeconds)
	v.applyMovement(distance)

	if !v.InIntersection && v.isPastEntryBoundary() {
		v.InIntersection = true
		v.hasEntered = true
		v.ActualEntryAt = now
	}

	if !v.hasExited && v.hasLeftWindow() {
		v.Exited = true
		v.hasExited = true
		v.ExitedAt = now
	}
}

// pivot snaps the vehicle to its post-turn lane and rotates its heading
// 90 degrees. Sticky: only ever fires once per vehicle.
func (v *Vehicle) pivot() {
	coord, next := pivotCoordinate(v.Direction, v.Route)
	switch v.Direction {
	case North, South:
		v.X = float64(coord)
	case East, West:
		v.Y = float64(coord)
	}
	v.Direction = next
	v.Turned = true
}

// targetSpeed implements the straight-segment kinematic law: accelerate or
// decelerate so the vehicle reaches its entry boundary exactly at
// ScheduledAt. Right turns always target nominal speed; they never yield
// time to a reservation.
func (v *Vehicle) targetSpeed(now time.Time) float64 {
	if v.Route == Right {
		return nominalSpeed
	}

	remaining := EntryDistancePx - v.distanceToEntry()
	if remaining < 0 {
		remaining = 0
	}
	timeLeft := v.ScheduledAt.Sub(now).Seconds()
	if timeLeft <= 0 {
		return nominalSpeed
	}
	return remaining / timeLeft
}

// accelerateToward clamps speed's approach to target by maxAccel per tick,
// within [0, nominalSpeed].
func accelerateToward(speed, target, maxAccel float64) float64 {
	if target > nominalSpeed {
		target = nominalSpeed
	}
	if target < 0 {
		target = 0
	}
	if speed < target {
		speed += maxAccel
		if speed > target {
			speed = target
		}
	} else if speed > target {
		speed -= maxAccel
		if speed < target {
			speed = target
		}
	}
	if speed < 0 {
		speed = 0
	}
	if speed > nominalSpeed {
		speed = nominalSpeed
	}
	return speed
}

// ConsumeBrakeEdge reports and clears whether this vehicle just started
// braking this tick (a rising edge), used by World to count near-misses.
func (v *Vehicle) ConsumeBrakeEdge() bool {
	if v.wasBraking {
		v.wasBraking = false
		return true
	}
	return false
}

// TransitDuration returns the exited-created interval, and whether the
// vehicle has a valid (fully completed) interval to report.
func (v *Vehicle) TransitDuration() (time.Duration, bool) {
	if !v.hasExited {
		return 0, false
	}
	return v.ExitedAt.Sub(v.CreatedAt), true
}

// ScheduleDeviation returns the signed delta (actual - scheduled) entry
// time, and whether the vehicle has actually entered the conflict region.
func (v *Vehicle) ScheduleDeviation() (time.Duration, bool) {
	if !v.hasEntered {
		return 0, false
	}
	return v.ActualEntryAt.Sub(v.ScheduledAt), true
}
