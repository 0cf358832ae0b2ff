// Command smartroad drives the unsignalized intersection simulator,
// either as an interactive glfw/gl window or as a headless regression soak
// (-test) on a simulated clock, mirroring the teacher's RunDesktop entry
// point in internal/game/main.go. The soak is reproducible when
// SMARTROAD_SEED is set; otherwise the seed comes from the wall clock.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"smartroad/internal/intersection"
	"smartroad/internal/render"
)

func main() {
	testMode := flag.Bool("test", false, "run a headless deterministic soak and exit")
	duration := flag.Duration("duration", 10*time.Second, "soak duration in -test mode")
	spawnEvery := flag.Duration("spawn-every", 200*time.Millisecond, "interval between random spawns in -test mode")
	flag.Parse()

	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SMARTROAD_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	if *testMode {
		os.Exit(runHeadlessSoak(seed, *duration, *spawnEvery))
	}
	runInteractive(seed)
}

// runHeadlessSoak drives the world at a fixed tick rate without a window,
// spawning vehicles at a steady cadence, per spec.md section 8's scenario 6
// (random traffic, zero collisions). Exits 0 on a clean run, 1 on any
// collision or on a vehicle waiting past intersection.WaitCeiling() for its
// reserved entry, per spec.md section 6's "collision or timeout" contract.
func runHeadlessSoak(seed uint64, duration, spawnEvery time.Duration) int {
	w := intersection.NewWorld(seed)
	now := time.Unix(0, 0)
	w.Step(now)

	ceiling := intersection.WaitCeiling()
	timedOut := false

	end := now.Add(duration)
	lastSpawn := now
	for t := now; t.Before(end); t = t.Add(intersection.TargetTickPeriod) {
		if t.Sub(lastSpawn) >= spawnEvery {
			w.SpawnRandom(t)
			lastSpawn = t
		}
		w.Step(t)
		if w.MaxWait(t) > ceiling {
			timedOut = true
			break
		}
	}

	stats := w.Statistics()
	fmt.Println(stats.Report(true))
	if stats.Collisions > 0 || timedOut {
		return 1
	}
	return 0
}

// runInteractive opens a window and drives the simulation in real time,
// spawning vehicles on WASD/arrow presses and R for a random spawn.
func runInteractive(seed uint64) {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	rend, err := render.NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	w := intersection.NewWorld(seed)
	input := NewInput()

	simStart := time.Now()
	w.Step(simStart)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		now := time.Now()

		for key, dir := range spawnKeys {
			if input.JustPressed(window, key) {
				w.Spawn(now, dir)
			}
		}
		if input.JustPressed(window, glfw.KeyR) {
			w.SpawnRandom(now)
		}

		w.Step(now)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.BeginFrame(fbW, fbH)
		snap := w.Snapshot(now)
		rend.DrawZones(snap.Zones)
		rend.DrawVehicles(snap)
		rend.EndFrame()

		window.SwapBuffers()
	}

	fmt.Println(w.Statistics().Report(false))
}
