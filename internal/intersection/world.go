package intersection

import "time"

// World is the fixed-step driver described in spec.md section 4.4: it
// owns the ledger, the lane queues/spawner, the completed-vehicle list
// and the global counters, and exposes the single entry point the host
// calls once per frame, Step.
type World struct {
	ledger     *Ledger
	spawner    *Spawner
	completed  []*Vehicle
	collisions int
	nearMisses int
	lastNow    time.Time
	started    bool
}

// NewWorld builds an empty intersection seeded for reproducible spawner
// randomness.
func NewWorld(seed uint64) *World {
	ledger := NewLedger()
	return &World{
		ledger:  ledger,
		spawner: NewSpawner(ledger, seed),
	}
}

// Spawn requests admission of a new vehicle from the given direction.
func (w *World) Spawn(now time.Time, dir Direction) {
	w.spawner.Spawn(now, dir)
}

// SpawnRandom requests admission of a new vehicle from a random direction.
func (w *World) SpawnRandom(now time.Time) {
	w.spawner.SpawnRandom(now)
}

// Step advances the simulation to now, deriving dt from the previous call.
// The first call establishes the baseline and performs no motion, matching
// a cold-start tick with no prior sample.
func (w *World) Step(now time.Time) {
	if !w.started {
		w.started = true
		w.lastNow = now
		return
	}

	dt := now.Sub(w.lastNow)
	minDt := time.Duration(float64(TargetTickPeriod) * minDeltaFactor)
	if dt < minDt {
		dt = minDt
	}
	w.lastNow = now

	w.detectCollisions()
	w.ledger.Expire(now)
	w.advanceLanes(now, dt)
	w.completed = w.spawner.RemoveExited(w.completed)
}

// detectCollisions runs the two-index walk over every alive vehicle pair,
// per spec.md section 4.4 step 1: pre-tick poses only, sticky flags.
func (w *World) detectCollisions() {
	handles := w.aliveHandles()
	for i := 0; i < len(handles); i++ {
		for j := i + 1; j < len(handles); j++ {
			a, b := handles[i], handles[j]
			if a.Collided || b.Collided {
				continue // sticky: a collided vehicle never re-collides
			}
			if a.BoundingBox().Intersects(b.BoundingBox()) {
				w.collisions++
				a.Collided = true
				b.Collided = true
			}
		}
	}
}

func (w *World) aliveHandles() []*Vehicle {
	var out []*Vehicle
	for _, lane := range w.spawner.lanes {
		out = append(out, lane...)
	}
	return out
}

// advanceLanes walks each lane head to tail, computing braking decisions
// against the pre-tick pose of the predecessor, then advances every
// vehicle by dt in lane-queue order (spec.md section 4.4 step 3).
func (w *World) advanceLanes(now time.Time, dt time.Duration) {
	for _, lane := range w.spawner.lanes {
		poses := make([]Rect, len(lane))
		for i, v := range lane {
			poses[i] = v.BoundingBox()
		}
		for i, v := range lane {
			braking := false
			if i > 0 {
				braking = !v.Collided && isTooClose(poses[i], poses[i-1], v.Direction)
			}
			v.Advance(now, dt, braking)
			if v.ConsumeBrakeEdge() {
				w.nearMisses++
			}
		}
	}
}

// isTooClose checks axis-aligned proximity within BrakeDistancePx along the
// lane axis with lateral overlap, matching spec.md section 4.4's
// is_too_close. Strict inequality: exactly BrakeDistancePx away does not
// brake.
func isTooClose(self, other Rect, dir Direction) bool {
	switch dir {
	case North:
		gap := self.Y - (other.Y + other.H)
		return gap < BrakeDistancePx && lateralOverlap(self.X, self.X+self.W, other.X, other.X+other.W)
	case South:
		gap := other.Y - (self.Y + self.H)
		return gap < BrakeDistancePx && lateralOverlap(self.X, self.X+self.W, other.X, other.X+other.W)
	case East:
		gap := other.X - (self.X + self.W)
		return gap < BrakeDistancePx && lateralOverlap(self.Y, self.Y+self.H, other.Y, other.Y+other.H)
	case West:
		gap := self.X - (other.X + other.W)
		return gap < BrakeDistancePx && lateralOverlap(self.Y, self.Y+self.H, other.Y, other.Y+other.H)
	}
	return false
}

func lateralOverlap(aMin, aMax, bMin, bMax int) bool {
	return aMin < bMax && aMax > bMin
}

// VehicleSnapshot is a read-only pose used by rendering/statistics.
type VehicleSnapshot struct {
	ID             string
	Direction      Direction
	Route          Route
	Box            Rect
	Speed          float64
	Braking        bool
	Collided       bool
	InIntersection bool
}

// Snapshot is the read-only view of world state exposed to the host.
type Snapshot struct {
	Now        time.Time
	Vehicles   []VehicleSnapshot
	Zones      map[ZoneIndex]ZoneStatus
	Collisions int
	NearMisses int
	Completed  int
}

// Snapshot returns a read-only view for rendering and statistics. Calling
// it does not mutate world state.
func (w *World) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Now:        now,
		Zones:      w.ledger.Snapshot(now),
		Collisions: w.collisions,
		NearMisses: w.nearMisses,
		Completed:  len(w.completed),
	}
	for _, lane := range w.spawner.lanes {
		for _, v := range lane {
			snap.Vehicles = append(snap.Vehicles, VehicleSnapshot{
				ID:             v.ID,
				Direction:      v.Direction,
				Route:          v.Route,
				Box:            v.BoundingBox(),
				Speed:          v.Speed,
				Braking:        v.Braking,
				Collided:       v.Collided,
				InIntersection: v.InIntersection,
			})
		}
	}
	return snap
}

// MaxWait returns the largest amount by which any vehicle still waiting to
// enter the conflict region is overdue against its own scheduled entry
// time. Zero means every waiting vehicle is still on or ahead of
// schedule. Used by hosts running in test mode to detect a wedged
// admission controller (spec.md section 6's wait-time ceiling).
func (w *World) MaxWait(now time.Time) time.Duration {
	var max time.Duration
	for _, lane := range w.spawner.lanes {
		for _, v := range lane {
			if v.InIntersection || v.Exited {
				continue
			}
			if wait := now.Sub(v.ScheduledAt); wait > max {
				max = wait
			}
		}
	}
	return max
}

// Completed returns the immutable list of vehicles that have exited, for
// statistics aggregation.
func (w *World) Completed() []*Vehicle {
	return w.completed
}

// CollisionCount and NearMissCount expose the global sticky counters.
func (w *World) CollisionCount() int { return w.collisions }
func (w *World) NearMissCount() int  { return w.nearMisses }

// Statistics aggregates the completed-vehicle list and counters.
func (w *World) Statistics() Statistics {
	return ComputeStatistics(w.completed, w.collisions, w.nearMisses)
}
