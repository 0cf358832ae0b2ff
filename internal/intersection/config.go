package intersection

import "time"

// Simulation window and conflict region (pixels). Bit-exact per the
// external interface contract; do not invent alternate values.
const (
	SimWindowWidth  = 900
	SimWindowHeight = 900

	IntersectionStartX  = 350
	IntersectionStartY  = 350
	IntersectionRectLen = 200

	ZoneLengthPx = 50.0
)

// Vehicle body (unrotated).
const (
	CarWidthPx  = 33
	CarHeightPx = 78
)

// Kinematics.
const (
	MaxSpeedUnits  = 5 // base unit; nominalSpeed = MaxSpeedUnits * 60
	MaxAccelPxTick = 30.0

	EntryDistancePx      = 350
	EntryDistancePxRight = 300
	LeftTurnThresholdPx  = 500
	RightTurnThresholdPx = 350

	BrakeDistancePx = 10
)

// nominalSpeed is the uniform px/s speed the ledger reasons about and the
// controller targets once it no longer needs to stretch to a reservation,
// per spec.md section 4.2 (MAX_SPEED * 60 ≡ 300 px/s).
const nominalSpeed = MaxSpeedUnits * 60.0

// safeDistancePx is half the car's length, per the original's
// SAFE_DISTANCE_PX = CAR_HEIGHT_PX / 2.
const safeDistancePx = CarHeightPx / 2.0

// Tick pacing.
const (
	TargetTickPeriod = 16 * time.Millisecond
	minDeltaFactor   = 0.0625 // clamp dt to >= this fraction of the base period
)

// Lane admission.
const (
	LaneCapacity  = 4
	TailSpacingPx = CarHeightPx
)

// MaxReservationWaitFactor scales one zone's full reserved interval at
// nominal speed (zone traversal + occupy + safe gap) into the starvation
// ceiling a host in test mode enforces (spec.md section 6's "collision or
// timeout" exit contract). A vehicle still waiting this many reserved
// intervals past its own scheduled entry indicates admission control has
// wedged, not that it is merely queued behind ordinary cross traffic.
const MaxReservationWaitFactor = 10
