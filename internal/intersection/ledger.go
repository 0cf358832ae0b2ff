package intersection

import (
	"sort"
	"time"
)

// Reservation is exclusive ownership of a zone over the half-open
// interval [TimeIn, TimeOut).
type Reservation struct {
	VehicleID string
	TimeIn    time.Time
	TimeOut   time.Time
}

// ZoneStatus classifies a zone's reservation state at a point in time.
type ZoneStatus int

const (
	ZoneFree ZoneStatus = iota
	ZoneReservedNotActive
	ZoneActive
)

// Ledger is the per-zone append-only reservation timeline, the
// time-space admission controller described in spec.md section 4.1.
// Grounded on original_source/src/crossing_manager.rs's CrossingManager.
type Ledger struct {
	grid map[ZoneIndex][]Reservation
}

// NewLedger builds an empty 4x4 ledger.
func NewLedger() *Ledger {
	l := &Ledger{grid: make(map[ZoneIndex][]Reservation, 16)}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			l.grid[ZoneIndex{row, col}] = nil
		}
	}
	return l
}

func secondsToDuration(px float64) time.Duration {
	return time.Duration(px / nominalSpeed * float64(time.Second))
}

// zoneTime is the time for a vehicle at nominal speed to traverse one zone.
func zoneTime() time.Duration { return secondsToDuration(ZoneLengthPx) }

// occupyTime is the additional time for the vehicle body to clear a zone
// after its head leaves.
func occupyTime() time.Duration { return secondsToDuration(CarHeightPx) }

// safeGap is the uniform safety margin appended to every zone release.
func safeGap() time.Duration { return secondsToDuration(safeDistancePx) }

// travelTime is the time from now until a vehicle reaches the first zone.
func travelTime(distanceToEntry float64) time.Duration {
	return secondsToDuration(distanceToEntry)
}

// EarliestEntry returns the earliest clock time at which a vehicle
// arriving from dir on route, currently distanceToEntry pixels from the
// conflict region, can begin its path through its zone sequence without
// colliding with any existing reservation. Right-turn routes bypass the
// ledger entirely and return now + travelTime.
func (l *Ledger) EarliestEntry(now time.Time, dir Direction, route Route, distanceToEntry float64) time.Time {
	travel := travelTime(distanceToEntry)
	if route == Right {
		return now.Add(travel)
	}

	path := RouteToZonePath(dir, route)
	zt := zoneTime()
	ot := occupyTime()
	sg := safeGap()

	base := now.Add(travel)

	for {
		conflict := false
		for i, zone := range path {
			entryOffset := time.Duration(i) * zt
			zoneEntryTime := base.Add(entryOffset)
			zoneExitTime := zoneEntryTime.Add(zt + ot + sg)

			for _, res := range l.grid[zone] {
				overlaps := res.TimeIn.Before(zoneExitTime) && res.TimeOut.After(zoneEntryTime)
				if overlaps {
					candidate := res.TimeOut.Add(-entryOffset)
					if candidate.After(base) {
						base = candidate
					}
					conflict = true
					break
				}
			}
			if conflict {
				break
			}
		}
		if !conflict {
			return base
		}
	}
}

// Reserve computes the earliest admissible entry time and installs one
// reservation per zone of the path, starting at that time. Returns the
// scheduled entry time. Right-turn routes install no reservations.
func (l *Ledger) Reserve(now time.Time, vehicleID string, dir Direction, route Route, distanceToEntry float64) time.Time {
	entryTime := l.EarliestEntry(now, dir, route, distanceToEntry)
	if route == Right {
		return entryTime
	}

	path := RouteToZonePath(dir, route)
	zt := zoneTime()
	ot := occupyTime()
	sg := safeGap()

	for i, zone := range path {
		timeIn := entryTime.Add(time.Duration(i) * zt)
		timeOut := timeIn.Add(zt + ot + sg)
		res := Reservation{VehicleID: vehicleID, TimeIn: timeIn, TimeOut: timeOut}
		list := l.grid[zone]
		idx := sort.Search(len(list), func(i int) bool { return !list[i].TimeIn.Before(timeIn) })
		list = append(list, Reservation{})
		copy(list[idx+1:], list[idx:])
		list[idx] = res
		l.grid[zone] = list
	}

	return entryTime
}

// Expire drops every reservation whose TimeOut has passed.
func (l *Ledger) Expire(now time.Time) {
	for zone, list := range l.grid {
		kept := list[:0]
		for _, res := range list {
			if res.TimeOut.After(now) {
				kept = append(kept, res)
			}
		}
		l.grid[zone] = kept
	}
}

// WaitCeiling is the starvation threshold a host running in test mode
// compares against World.MaxWait: the longest a vehicle should ever sit
// past its own scheduled entry time before the admission controller is
// considered wedged rather than merely busy. Expressed as a multiple of
// the time to clear one zone's full reserved interval (zone traversal +
// occupy + safe gap), since that is the unit the ledger itself reasons in.
func WaitCeiling() time.Duration {
	return MaxReservationWaitFactor * (zoneTime() + occupyTime() + safeGap())
}

// Snapshot returns, for each zone, its classification at now.
func (l *Ledger) Snapshot(now time.Time) map[ZoneIndex]ZoneStatus {
	out := make(map[ZoneIndex]ZoneStatus, len(l.grid))
	for zone, list := range l.grid {
		status := ZoneFree
		for _, res := range list {
			if !res.TimeIn.After(now) && res.TimeOut.After(now) {
				status = ZoneActive
				break
			}
			status = ZoneReservedNotActive
		}
		out[zone] = status
	}
	return out
}

// Reservations returns a copy of the reservation list for a zone, ordered
// by TimeIn, for tests and introspection.
func (l *Ledger) Reservations(zone ZoneIndex) []Reservation {
	list := l.grid[zone]
	out := make([]Reservation, len(list))
	copy(out, list)
	return out
}
