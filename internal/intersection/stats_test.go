package intersection

import (
	"testing"
	"time"
)

func completedVehicle(t *testing.T, created, scheduled, actualEntry, exited time.Time) *Vehicle {
	t.Helper()
	v := NewVehicle("x", North, Straight, created, scheduled)
	v.hasEntered = true
	v.ActualEntryAt = actualEntry
	v.hasExited = true
	v.ExitedAt = exited
	return v
}

func TestComputeStatistics_EmptyCompletedList(t *testing.T) {
	stats := ComputeStatistics(nil, 0, 0)
	if stats.VehiclesCrossed != 0 {
		t.Fatalf("VehiclesCrossed = %d, want 0", stats.VehiclesCrossed)
	}
	if stats.AvgSpeed != 0 || stats.AvgDuration != 0 {
		t.Fatal("expected zero-value averages for an empty completed list")
	}
}

func TestComputeStatistics_SingleVehicle(t *testing.T) {
	created := time.Unix(0, 0)
	scheduled := created.Add(3 * time.Second)
	actual := created.Add(3100 * time.Millisecond)
	exited := created.Add(5 * time.Second)

	v := completedVehicle(t, created, scheduled, actual, exited)
	stats := ComputeStatistics([]*Vehicle{v}, 1, 2)

	if stats.VehiclesCrossed != 1 {
		t.Fatalf("VehiclesCrossed = %d, want 1", stats.VehiclesCrossed)
	}
	if stats.Collisions != 1 || stats.NearMisses != 2 {
		t.Fatalf("counters not passed through: %+v", stats)
	}
	wantDur := exited.Sub(created)
	if stats.AvgDuration != wantDur {
		t.Fatalf("AvgDuration = %v, want %v", stats.AvgDuration, wantDur)
	}
	wantSpeed := roundTwo(float64(v.RouteDistance) / wantDur.Seconds())
	if stats.AvgSpeed != wantSpeed {
		t.Fatalf("AvgSpeed = %v, want %v", stats.AvgSpeed, wantSpeed)
	}
	wantDeviation := actual.Sub(scheduled)
	if stats.MeanAbsScheduleDeviation != wantDeviation {
		t.Fatalf("MeanAbsScheduleDeviation = %v, want %v", stats.MeanAbsScheduleDeviation, wantDeviation)
	}
}

func TestComputeStatistics_MinMaxAcrossMultipleVehicles(t *testing.T) {
	created := time.Unix(0, 0)
	fast := completedVehicle(t, created, created, created, created.Add(1*time.Second))
	slow := completedVehicle(t, created, created, created, created.Add(4*time.Second))

	stats := ComputeStatistics([]*Vehicle{fast, slow}, 0, 0)

	if stats.MinDuration != 1*time.Second {
		t.Fatalf("MinDuration = %v, want 1s", stats.MinDuration)
	}
	if stats.MaxDuration != 4*time.Second {
		t.Fatalf("MaxDuration = %v, want 4s", stats.MaxDuration)
	}
	if stats.MaxSpeed <= stats.MinSpeed {
		t.Fatalf("expected MaxSpeed > MinSpeed, got max=%v min=%v", stats.MaxSpeed, stats.MinSpeed)
	}
}

func TestReport_TestModeIsTerseAndStable(t *testing.T) {
	stats := Statistics{VehiclesCrossed: 3, Collisions: 1, NearMisses: 2}
	got := stats.Report(true)
	want := "vehicles=3 collisions=1 near_misses=2"
	if got != want {
		t.Fatalf("Report(true) = %q, want %q", got, want)
	}
}

func TestReport_EmptyStatsMessage(t *testing.T) {
	stats := Statistics{}
	got := stats.Report(false)
	if got != "No vehicles have crossed the intersection yet." {
		t.Fatalf("unexpected empty report: %q", got)
	}
}
