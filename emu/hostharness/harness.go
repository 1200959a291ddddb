// Package hostharness is a TCP test-fixture transport for the drive
// core: each accepted connection is one external test driver that can
// set/read IEC line levels and single-step the session, letting the
// end-to-end scenarios of spec.md §8 be driven by an out-of-process
// conformance suite instead of only in-process Go tests.
//
// This is ambient test tooling, not part of the emulated hardware: it
// runs in its own goroutine and only calls into the session between
// StepCycle calls, per spec.md §5's host-boundary rule. Grounded on
// telnet/listener.go's net.Listener + sync.WaitGroup + shutdown-channel
// structure, generalized from a 3270/tty session to a line-level
// protocol fixture.
package hostharness

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go6502/drivecore/emu/iec"
	"github.com/go6502/drivecore/emu/session"
)

var lineNames = map[string]iec.Line{
	"ATN":   iec.LineATN,
	"CLOCK": iec.LineCLOCK,
	"DATA":  iec.LineDATA,
	"SRQ":   iec.LineSRQ,
	"RESET": iec.LineRESET,
}

// Server accepts test-driver connections against one session.
type Server struct {
	wg       sync.WaitGroup
	listener net.Listener
	shutdown chan struct{}
	sess     *session.Session
}

// Listen starts a Server bound to addr (e.g. ":6400") driving sess.
func Listen(addr string, sess *session.Session) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("hostharness: listen %s: %w", addr, err)
	}
	s := &Server{listener: l, shutdown: make(chan struct{}), sess: sess}
	s.wg.Add(1)
	go s.acceptLoop()
	slog.Info("hostharness: listening", "addr", addr)
	return s, nil
}

// Stop closes the listener and waits (bounded) for connections to
// drain.
func (s *Server) Stop() {
	close(s.shutdown)
	s.listener.Close()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("hostharness: timed out waiting for connections to close")
	}
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return
			default:
				slog.Error("hostharness: accept failed", "err", err)
				return
			}
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// handleConn implements a line-oriented text protocol:
//
//	STEP [n]                 advance the core n cycles (default 1)
//	SETLINE <name> <0|1>      drive an IEC line from the host side
//	GETLINE <name>            report the combined wired-OR level
//	RESET <0|1>               assert/release the IEC RESET line
//	MOUNT <path>              mount a disk image
//	UNMOUNT                   unmount and save if dirty
//	SNAPSHOT                  report a compact state dump
//	QUIT                      close the connection
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		reply := s.dispatch(fields)
		fmt.Fprintln(conn, reply)
		if fields[0] == "QUIT" {
			return
		}
	}
}

func (s *Server) dispatch(fields []string) string {
	switch fields[0] {
	case "STEP":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			s.sess.StepCycle()
		}
		return "OK"

	case "SETLINE":
		if len(fields) != 3 {
			return "ERR usage: SETLINE <name> <0|1>"
		}
		line, ok := lineNames[fields[1]]
		if !ok {
			return "ERR unknown line " + fields[1]
		}
		s.sess.SetHostLine(line, fields[2] == "1")
		return "OK"

	case "GETLINE":
		if len(fields) != 2 {
			return "ERR usage: GETLINE <name>"
		}
		line, ok := lineNames[fields[1]]
		if !ok {
			return "ERR unknown line " + fields[1]
		}
		if s.sess.Line(line) {
			return "1"
		}
		return "0"

	case "RESET":
		if len(fields) != 2 {
			return "ERR usage: RESET <0|1>"
		}
		s.sess.AssertReset(fields[1] == "1")
		return "OK"

	case "MOUNT":
		if len(fields) != 2 {
			return "ERR usage: MOUNT <path>"
		}
		if err := s.sess.MountImage(fields[1]); err != nil {
			return "ERR " + err.Error()
		}
		return "OK"

	case "UNMOUNT":
		if err := s.sess.UnmountImage(); err != nil {
			return "ERR " + err.Error()
		}
		return "OK"

	case "SNAPSHOT":
		snap := s.sess.Snapshot()
		return fmt.Sprintf("cycle=%d halftrack=%d angle=%d motor=%t led=%t wp=%t density=%d",
			snap.Cycle, snap.HalfTrack, snap.Angle, snap.MotorOn, snap.LEDOn, snap.WriteProtect, snap.Density)

	case "QUIT":
		return "BYE"

	default:
		return "ERR unknown command " + fields[0]
	}
}
