package intersection

import (
	"fmt"
	"math"
	"time"
)

// Statistics aggregates the completed-vehicle list into the summary
// described in spec.md section 4.5, grounded on
// original_source/src/intersection.rs::get_statistics and
// utils.rs::calculate_speed_statistics / calculate_duration_statistics.
type Statistics struct {
	VehiclesCrossed int
	Collisions      int
	NearMisses      int

	MinSpeed, MaxSpeed, AvgSpeed          float64 // px/s, over vehicles with a valid transit interval
	MinDuration, MaxDuration, AvgDuration time.Duration

	// MeanAbsScheduleDeviation is the average |actual_entry - scheduled_entry|
	// across vehicles that reached the conflict region. A supplemented
	// statistic: see SPEC_FULL.md's note on calculate_time_difference.
	MeanAbsScheduleDeviation time.Duration
}

// ComputeStatistics aggregates over the completed list plus the running
// collision/near-miss counters.
func ComputeStatistics(completed []*Vehicle, collisions, nearMisses int) Statistics {
	stats := Statistics{
		VehiclesCrossed: len(completed),
		Collisions:      collisions,
		NearMisses:      nearMisses,
	}
	if len(completed) == 0 {
		return stats
	}

	minSpeed, maxSpeed := math.MaxFloat64, -math.MaxFloat64
	var totalSpeed float64
	minDur, maxDur := time.Duration(math.MaxInt64), time.Duration(0)
	var totalDur time.Duration
	var validCars int

	var totalDeviation time.Duration
	var deviationSamples int

	for _, v := range completed {
		if dur, ok := v.TransitDuration(); ok && dur > 0 {
			speed := float64(v.RouteDistance) / dur.Seconds()
			minSpeed = math.Min(minSpeed, speed)
			maxSpeed = math.Max(maxSpeed, speed)
			totalSpeed += speed

			if dur < minDur {
				minDur = dur
			}
			if dur > maxDur {
				maxDur = dur
			}
			totalDur += dur
			validCars++
		}
		if dev, ok := v.ScheduleDeviation(); ok {
			if dev < 0 {
				dev = -dev
			}
			totalDeviation += dev
			deviationSamples++
		}
	}

	if validCars > 0 {
		stats.MinSpeed = roundTwo(minSpeed)
		stats.MaxSpeed = roundTwo(maxSpeed)
		stats.AvgSpeed = roundTwo(totalSpeed / float64(validCars))
		stats.MinDuration = minDur
		stats.MaxDuration = maxDur
		stats.AvgDuration = totalDur / time.Duration(validCars)
	}
	if deviationSamples > 0 {
		stats.MeanAbsScheduleDeviation = totalDeviation / time.Duration(deviationSamples)
	}

	return stats
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}

// Report renders the human-readable summary described in spec.md
// section 6. The full form mirrors the original's intersection
// statistics screen; the reduced (isTest) form is a terse line a
// regression harness can assert against, since spec.md leaves the
// reduced text undefined.
func (s Statistics) Report(isTest bool) string {
	if isTest {
		return fmt.Sprintf("vehicles=%d collisions=%d near_misses=%d", s.VehiclesCrossed, s.Collisions, s.NearMisses)
	}

	if s.VehiclesCrossed == 0 {
		return "No vehicles have crossed the intersection yet."
	}

	return fmt.Sprintf(
		"Intersection Statistics\n"+
			"-----------------------------\n"+
			"Vehicles Crossed: %d\n"+
			"Collisions: %d\n"+
			"Near Misses: %d\n"+
			"Max Speed: %.2f px/s\n"+
			"Min Speed: %.2f px/s\n"+
			"Avg Speed: %.2f px/s\n"+
			"Max Time in Intersection: %.2f s\n"+
			"Min Time in Intersection: %.2f s\n"+
			"Avg Time in Intersection: %.2f s\n"+
			"Mean Schedule Deviation: %.3f s",
		s.VehiclesCrossed, s.Collisions, s.NearMisses,
		s.MaxSpeed, s.MinSpeed, s.AvgSpeed,
		s.MaxDuration.Seconds(), s.MinDuration.Seconds(), s.AvgDuration.Seconds(),
		s.MeanAbsScheduleDeviation.Seconds(),
	)
}
