// Package hostcmd names the channel-15 command-and-control protocol a
// real 1541 exposes to its host over the IEC bus (NEW, RENAME, SCRATCH,
// COPY, CD, MKDIR, RMDIR, the U0/UI drive-control commands, and the
// M-R/M-W memory-peek/poke pair), without implementing any of it.
//
// spec.md §1 scopes the filesystem-aware command simulator used when no
// image is mounted as an external collaborator, not part of this
// emulator core — the same boundary the teacher draws around guest-OS
// filesystem semantics in command/command: that package lets a caller
// attach/set/show its own devices but never reaches into a mounted
// guest image's directory structure either. A host wanting channel-15
// behavior implements Dispatcher and wires it to the session's
// command-channel I/O itself.
package hostcmd

// Channel15Command identifies one of the command strings a 1541 accepts
// on its command channel (secondary address 15).
type Channel15Command int

const (
	CmdNew Channel15Command = iota
	CmdRename
	CmdScratch
	CmdCopy
	CmdChangeDir
	CmdMakeDir
	CmdRemoveDir
	CmdInitialize // U0: soft-reset / re-read BAM
	CmdUserI      // UI: vary IEC bus timing
	CmdMemoryRead // M-R: peek controller RAM
	CmdMemoryWrite
)

// Dispatcher executes a parsed channel-15 command against whatever
// backing store a host chooses to expose, and reports the error-channel
// status text (code, message, track, sector) a real drive would push
// back on read.
type Dispatcher interface {
	// Dispatch runs cmd with the given raw argument bytes (the command
	// string's tail, e.g. "0:NEWNAME,ID" for CmdNew) and returns the
	// error-channel text a DOS read of channel 15 would yield.
	Dispatch(cmd Channel15Command, args []byte) (status string, err error)
}
