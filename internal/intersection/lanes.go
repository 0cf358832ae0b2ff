package intersection

import (
	"fmt"
	"time"
)

// laneKey addresses a FIFO lane by (direction, route).
type laneKey struct {
	dir   Direction
	route Route
}

// Spawner owns the per-(direction,route) FIFO lane queues, the
// identifier mint, and the ledger, and is the sole path through which
// vehicles are admitted into the simulation. Grounded on
// original_source/src/intersection.rs's add_car_in/add_car_in_rnd.
type Spawner struct {
	lanes  map[laneKey][]*Vehicle
	ids    *IDGenerator
	ledger *Ledger
	rng    *Rand
}

// NewSpawner wires a fresh spawner around the given ledger and RNG seed.
func NewSpawner(ledger *Ledger, seed uint64) *Spawner {
	lanes := make(map[laneKey][]*Vehicle, 12)
	for _, dir := range []Direction{North, South, East, West} {
		for _, route := range []Route{Left, Straight, Right} {
			lanes[laneKey{dir, route}] = nil
		}
	}
	return &Spawner{
		lanes:  lanes,
		ids:    NewIDGenerator(),
		ledger: ledger,
		rng:    NewRand(seed),
	}
}

// Spawn attempts to admit one new vehicle heading in the given direction.
// It shuffles the three routes, accepts the first whose lane has room and
// sufficient tail spacing, and drops the request if none qualify. Reports
// the spawned vehicle, or nil if the request was refused.
func (s *Spawner) Spawn(now time.Time, dir Direction) *Vehicle {
	for _, route := range s.rng.ShuffleRoutes() {
		key := laneKey{dir, route}
		lane := s.lanes[key]

		if len(lane) >= LaneCapacity {
			continue
		}
		if !s.tailClear(lane, dir) {
			continue
		}

		distanceToEntry := float64(EntryDistancePx)
		if route == Right {
			distanceToEntry = float64(EntryDistancePxRight)
		}

		id := s.ids.Next(dir, route)
		scheduledEntry := s.ledger.Reserve(now, id, dir, route, distanceToEntry)
		v := NewVehicle(id, dir, route, now, scheduledEntry)

		s.lanes[key] = append(s.lanes[key], v)
		fmt.Printf("spawned %s heading %s going %s | entry time: %s\n",
			id, dir, route, scheduledEntry.Format("15:04:05.000"))
		return v
	}

	fmt.Printf("spawn refused: no route available heading %s\n", dir)
	return nil
}

// SpawnRandom spawns a vehicle from a uniformly random direction.
func (s *Spawner) SpawnRandom(now time.Time) *Vehicle {
	return s.Spawn(now, s.rng.Direction())
}

// tailClear reports whether the tail of lane is at least TailSpacingPx away
// from the spawn point along the lane's axis, or the lane is empty.
func (s *Spawner) tailClear(lane []*Vehicle, dir Direction) bool {
	if len(lane) == 0 {
		return true
	}
	last := lane[len(lane)-1]
	sp := SpawnPosition(dir, last.Route)

	switch dir {
	case South:
		return last.Y-float64(sp.Y) >= TailSpacingPx
	case North:
		return float64(sp.Y)-last.Y >= TailSpacingPx
	case East:
		return last.X-float64(sp.X) >= TailSpacingPx
	case West:
		return float64(sp.X)-last.X >= TailSpacingPx
	}
	return true
}

// Lanes returns the live lane map for the world tick driver to walk.
func (s *Spawner) Lanes() map[laneKey][]*Vehicle {
	return s.lanes
}

// RemoveExited pops exited vehicles from the head of each lane (the only
// point removal is allowed per the FIFO invariant) and appends them to out.
func (s *Spawner) RemoveExited(out []*Vehicle) []*Vehicle {
	for key, lane := range s.lanes {
		for len(lane) > 0 && lane[0].Exited {
			out = append(out, lane[0])
			lane = lane[1:]
		}
		s.lanes[key] = lane
	}
	return out
}
