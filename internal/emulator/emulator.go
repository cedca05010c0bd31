// Package emulator runs the master clock that drives the CPU (and, through
// it, the bus and PPU) at the NES's native frame rate.
package emulator

import (
	"sync/atomic"
	"time"

	"gones-core/internal/cpu"
)

const targetFrameTime = time.Second / 60

// CPU is the subset of *cpu.CPU the master loop drives. Declared as an
// interface so tests can substitute a fake without pulling in a real bus.
type CPU interface {
	Reset()
	Step() bool
	RunFrame()
	FrameCount() uint64
}

var _ CPU = (*cpu.CPU)(nil)

// Emulator owns the CPU and paces it at 60 frames per second on a
// dedicated goroutine. It holds nothing else in the ownership tree — the
// CPU owns the bus, the bus owns the PPU and cartridge.
//
// Reset and Step are direct passthroughs to the owned CPU, and Run drives
// its RunFrame, matching the host interface: reset, then step one
// instruction at a time for a debugger or test harness, or hand the whole
// thread to Run. Start/Stop wrap Run on a
// background goroutine for a host (such as cmd/gones's GUI path) that
// can't block its calling goroutine on the emulator.
type Emulator struct {
	cpu CPU

	running atomic.Bool
	stopped chan struct{}
	onFrame func(frameCount uint64)
}

// New creates an Emulator driving c. onFrame, if non-nil, is invoked once
// per completed frame from Run's loop — a caller wires a video.FrameBuffer
// copy or a frame-pacing counter here.
func New(c CPU, onFrame func(frameCount uint64)) *Emulator {
	return &Emulator{cpu: c, onFrame: onFrame}
}

// Reset reinitializes the owned CPU to its power-on state.
func (e *Emulator) Reset() {
	e.cpu.Reset()
}

// Step executes a single CPU instruction, amortizing its remaining cycles
// across however many more Step calls it takes to pay them off. Returns
// true when this call actually decoded and executed an instruction.
func (e *Emulator) Step() bool {
	return e.cpu.Step()
}

// Run drives frames at 60Hz on the calling goroutine until Stop is called
// from another goroutine. It blocks for as long as the emulator runs.
func (e *Emulator) Run() {
	e.running.Store(true)
	e.stopped = make(chan struct{})
	e.loop()
}

// Start resets the CPU and begins running frames on a new goroutine. It
// returns immediately; call Stop to request shutdown. Unlike a direct Run
// call, the running/stopped state is set up synchronously here so a Stop
// immediately following Start is never missed by a goroutine that hasn't
// scheduled yet.
func (e *Emulator) Start() {
	e.cpu.Reset()
	e.running.Store(true)
	e.stopped = make(chan struct{})
	go e.loop()
}

// Stop requests the run loop exit and blocks until it has.
func (e *Emulator) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	<-e.stopped
}

func (e *Emulator) loop() {
	defer close(e.stopped)

	for e.running.Load() {
		frameStart := time.Now()

		e.cpu.RunFrame()
		if e.onFrame != nil {
			e.onFrame(e.cpu.FrameCount())
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
}
