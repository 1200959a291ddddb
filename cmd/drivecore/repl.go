package main

import (
	"fmt"
	"strings"

	"github.com/go6502/drivecore/cmd/drivecore/monitor"
	"github.com/go6502/drivecore/emu/session"
)

// dispatchREPL runs one console command against sess and reports
// whether the REPL should exit.
func dispatchREPL(sess *session.Session, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true

	case "mount":
		if len(fields) != 2 {
			fmt.Println("usage: mount <path>")
			return false
		}
		if err := sess.MountImage(fields[1]); err != nil {
			fmt.Println("error:", err)
		}

	case "unmount":
		if err := sess.UnmountImage(); err != nil {
			fmt.Println("error:", err)
		}

	case "reset":
		sess.AssertReset(true)
		sess.AssertReset(false)

	case "status":
		snap := sess.Snapshot()
		fmt.Printf("cycle=%d halftrack=%d angle=%d motor=%t led=%t wp=%t density=%d\n",
			snap.Cycle, snap.HalfTrack, snap.Angle, snap.MotorOn, snap.LEDOn, snap.WriteProtect, snap.Density)

	case "monitor":
		monitor.Run(sess)

	case "help", "?":
		fmt.Println("commands: mount <path>, unmount, reset, status, monitor, quit")

	default:
		fmt.Println("unknown command:", fields[0], "(try 'help')")
	}
	return false
}
