// Package session assembles one drive instance — CPU, two VIAs, bus
// arbiter, flux decoder, mechanism and IEC line state — into the
// single-threaded cooperative core spec.md §5 describes, and optionally
// runs it free-running in its own goroutine for hosts that don't want
// to single-step.
//
// Grounded on emu/core/core.go's goroutine + sync.WaitGroup + slog
// run loop and emu/event/event.go's cooperative cycle accounting,
// adapted from a package-global event list into fields of Session per
// spec.md §9's singleton guidance.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go6502/drivecore/emu/bus"
	"github.com/go6502/drivecore/emu/cpu6502"
	"github.com/go6502/drivecore/emu/diskimage"
	"github.com/go6502/drivecore/emu/flux"
	"github.com/go6502/drivecore/emu/iec"
	"github.com/go6502/drivecore/emu/mechanism"
	"github.com/go6502/drivecore/emu/via6522"
	"github.com/go6502/drivecore/util/trace"
)

// VIA-A port B bit assignments for the serial-bus pins, per the 1541's
// published schematic: PB0/PB2 are the DATA/CLOCK inputs (after the
// board's inverting receivers, so a set bit here means the line is
// asserted/low), PB7 is the ATN input, and PB1/PB3/PB4 are the
// DATA-out/CLOCK-out/ATN-ack outputs spec.md §4.5 names directly.
const (
	pbaDataIn  = 1 << 0
	pbaDataOut = 1 << 1
	pbaClkIn   = 1 << 2
	pbaClkOut  = 1 << 3
	pbaAtnAck  = 1 << 4
	pbaAtnIn   = 1 << 7
)

// VIA-B port B bit assignments for the mechanism/head-electronics
// side: stepper phase, motor, LED, write-protect sense and density
// select, plus PB7 for the decoder's SYNC signal.
const (
	pbbStepMask    = 0x03
	pbbMotor       = 1 << 2
	pbbLED         = 1 << 3
	pbbWriteProt   = 1 << 4
	pbbDensityMask = 0x60
	pbbDensityShift = 5
	pbbSync        = 1 << 7
)

// Config selects the session's optional hardware variants.
type Config struct {
	RAMExpansion bool
	DeviceNumber byte
	RNGSeed      uint32
}

// Snapshot is a read-only copy of the core's observable state, for a
// host-side monitor/UI to poll without touching live emulator state.
type Snapshot struct {
	Cycle        uint64
	PC           uint16
	A, X, Y, SP  byte
	P            byte
	HalfTrack    int
	Angle        int
	MotorOn      bool
	LEDOn        bool
	WriteProtect bool
	Density      int
}

// Session owns one complete drive instance.
type Session struct {
	mu sync.Mutex

	cpu  *cpu6502.CPU
	viaA *via6522.VIA
	viaB *via6522.VIA
	bus  *bus.Bus
	mech *mechanism.Mechanism
	flux *flux.Decoder
	iec  *iec.IecBus
	img  *diskimage.Image

	cycle uint64

	wg      sync.WaitGroup
	done    chan struct{}
	running bool
}

// NewSession builds a session around rom, with no disk mounted (an
// all-ones not-mounted track per spec.md §4.3's failure model).
func NewSession(rom []byte, cfg Config) (*Session, error) {
	if len(rom) == 0 {
		return nil, fmt.Errorf("session: rom image is empty")
	}

	s := &Session{
		viaA: via6522.New(),
		viaB: via6522.New(),
		mech: mechanism.New(),
		iec:  iec.New(),
		img:  diskimage.New(),
		done: make(chan struct{}),
	}
	s.flux = flux.NewDecoder(flux.NewXorshift32(cfg.RNGSeed))
	s.bus = bus.New(rom, s.viaA, s.viaB)
	s.bus.SetRAMExpansion(cfg.RAMExpansion)
	s.cpu = cpu6502.NewCPU(s.bus)

	s.viaA.IRQ = func(bool) { s.updateCPUIRQ() }
	s.viaB.IRQ = func(bool) { s.updateCPUIRQ() }

	s.cpu.Reset()
	s.mech.SetTrackLength(s.img.HalfTrackLength(s.mech.HalfTrack()))
	s.iec.SetTrace(trace.Enabled("IEC", trace.Detail))
	return s, nil
}

func (s *Session) updateCPUIRQ() {
	s.cpu.AssertIRQ(s.viaA.IRQAsserted() || s.viaB.IRQAsserted())
}

// MountImage loads path and parks the head at its current half-track's
// length, replacing any previously mounted image.
func (s *Session) MountImage(path string) error {
	img, err := diskimage.Load(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = img
	s.mech.SetTrackLength(s.img.HalfTrackLength(s.mech.HalfTrack()))
	s.mech.BeginMediaChange()
	slog.Info("drivecore: mounted image", "path", path)
	return nil
}

// UnmountImage saves a dirty image and replaces it with the
// not-mounted all-ones placeholder. It must only be called between
// StepCycle calls, once the mechanism's media-change sequence (if any)
// has finished, per spec.md §5's host-boundary rule.
func (s *Session) UnmountImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mech.MediaChangeInProgress() {
		return fmt.Errorf("session: cannot unmount while media-change sequence is in progress")
	}
	if s.img.Dirty() {
		if err := s.img.Save(); err != nil {
			return err
		}
	}
	s.img = diskimage.New()
	s.mech.SetTrackLength(s.img.HalfTrackLength(s.mech.HalfTrack()))
	s.mech.BeginMediaChange()
	return nil
}

// AssertReset drives the IEC RESET line; level true resets both VIAs,
// the flux decoder and the CPU, per spec.md §4.6.
func (s *Session) AssertReset(level bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iec.SetHostLevel(iec.LineRESET, level)
	if level {
		s.viaA.Reset()
		s.viaB.Reset()
		s.flux.Reset()
		s.cpu.Reset()
	}
}

// SetHostLine drives one of the five IEC lines from the host side,
// e.g. ATN or the host's CLOCK/DATA assertion.
func (s *Session) SetHostLine(line iec.Line, level bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.iec.SetHostLevel(line, level)
}

// Line returns the combined wired-OR level most recently published for
// line.
func (s *Session) Line(line iec.Line) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.iec.Effective(line)
}

// StepCycle advances the whole core by exactly one CPU cycle, in the
// fixed order spec.md §5 requires: sample host serial lines into
// VIA-A, run one CPU cycle, tick both VIAs, run 16 flux sub-ticks,
// then publish the drive's new serial-line outputs.
func (s *Session) StepCycle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	atnIn := s.iec.Effective(iec.LineATN)
	clockIn := s.iec.HostAssertedOnly(iec.LineCLOCK)
	dataIn := s.iec.HostAssertedOnly(iec.LineDATA)

	pba := byte(0)
	if dataIn {
		pba |= pbaDataIn
	}
	if clockIn {
		pba |= pbaClkIn
	}
	if atnIn {
		pba |= pbaAtnIn
	}
	s.viaA.SetPBInput(pba)
	s.viaA.SetCA1(atnIn)

	s.cpu.Step()

	s.viaA.Tick()
	s.viaB.Tick()

	s.mech.SetMotor(s.viaB.PB()&pbbMotor != 0)
	s.mech.SetLED(s.viaB.PB()&pbbLED != 0)
	s.mech.SetDensity(int(s.viaB.PB()&pbbDensityMask) >> pbbDensityShift)

	wp := byte(0)
	if s.mech.WriteProtect() {
		wp = pbbWriteProt
	}
	s.viaB.SetPBInput(wp)
	s.mech.Tick()

	writeMode := s.viaB.CB2OutputMode()
	if writeMode {
		s.flux.SetWriteByte(s.viaB.PA())
	}
	for i := 0; i < 16; i++ {
		ready, sync := s.flux.SubTick(s.mech, s.img, writeMode)
		if sync {
			s.viaB.SetPBInput(wp | pbbSync)
		}
		if ready {
			s.viaB.SetPAInput(s.flux.ByteRegister())
			s.viaB.SetCA1(true)
			s.viaB.SetCA1(false)
		}
	}

	pb3 := s.viaA.PB()&pbaClkOut != 0
	pb1 := s.viaA.PB()&pbaDataOut != 0
	pb4 := s.viaA.PB()&pbaAtnAck != 0
	s.iec.Publish(!pb3, !pb1, atnIn != pb4)

	s.cycle++
}

// Snapshot returns a read-only copy of the core's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Cycle:        s.cycle,
		HalfTrack:    s.mech.HalfTrack(),
		Angle:        s.mech.Angle(),
		MotorOn:      s.mech.MotorOn(),
		LEDOn:        s.mech.LED(),
		WriteProtect: s.mech.WriteProtect(),
		Density:      s.mech.Density(),
	}
}

// Start runs StepCycle in its own goroutine until Stop is called, for
// hosts that want a free-running drive rather than single-stepping
// (the teacher's core.Start() pattern).
func (s *Session) Start() {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.done:
				slog.Info("drivecore: session stopped")
				return
			default:
				s.mu.Lock()
				run := s.running
				s.mu.Unlock()
				if run {
					s.StepCycle()
				} else {
					time.Sleep(time.Millisecond)
				}
			}
		}
	}()
}

// Stop halts a Start-ed session's goroutine and waits (bounded) for it
// to exit.
func (s *Session) Stop() {
	close(s.done)
	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		slog.Warn("drivecore: timed out waiting for session to stop")
	}
}
