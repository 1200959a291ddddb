package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	config "github.com/go6502/drivecore/config/configparser"
	_ "github.com/go6502/drivecore/config/debugconfig"
	"github.com/go6502/drivecore/config/driveconfig"
	"github.com/go6502/drivecore/emu/hostharness"
	"github.com/go6502/drivecore/emu/session"
	"github.com/go6502/drivecore/util/logger"
)

// runCommand wraps the session boot sequence as a cobra subcommand that
// hands its own argument parsing to getopt, since the cycle-accurate
// core's flag surface follows the teacher's flat-getopt style rather
// than cobra/pflag's.
func runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run",
		Short:              "Boot one drive session",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain()
		},
	}
	return cmd
}

func runMain() error {
	// Parses os.Args directly (the teacher's own getopt.Parse() call
	// signature): DisableFlagParsing on this subcommand leaves os.Args
	// untouched by cobra, so getopt sees exactly what the user typed,
	// with "run" itself collected as a harmless leftover operand.
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optROM := getopt.StringLong("rom", 'r', "", "Controller ROM image (overrides ROM directive)")
	optDisk := getopt.StringLong("disk", 'd', "", "Disk image to mount at startup")
	optHarness := getopt.StringLong("harness", 'H', "", "Listen address for the test-fixture harness, e.g. :6400")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return nil
	}

	var file *os.File
	if *optLogFile != "" {
		var err error
		file, err = os.Create(*optLogFile)
		if err != nil {
			return err
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	log := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}))
	slog.SetDefault(log)

	if *optConfig != "" {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	romPath := driveconfig.Loaded.ROMPath
	if *optROM != "" {
		romPath = *optROM
	}
	if romPath == "" {
		return fmt.Errorf("no ROM image given (use -rom or a ROM directive)")
	}
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	sess, err := session.NewSession(rom, session.Config{DeviceNumber: driveconfig.Loaded.DeviceNumber})
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	diskPath := driveconfig.Loaded.DiskPath
	if *optDisk != "" {
		diskPath = *optDisk
	}
	if diskPath != "" {
		if err := sess.MountImage(diskPath); err != nil {
			return fmt.Errorf("mounting disk: %w", err)
		}
	}

	var harness *hostharness.Server
	if *optHarness != "" {
		harness, err = hostharness.Listen(*optHarness, sess)
		if err != nil {
			return fmt.Errorf("starting harness: %w", err)
		}
	}

	sess.Start()
	defer sess.Stop()
	if harness != nil {
		defer harness.Stop()
	}

	return runHostGoroutines(sess, log)
}

// runHostGoroutines coordinates the host-side goroutines (REPL and
// signal wait) with an errgroup, the one
// legitimate concurrency seam spec.md §5 allows outside the
// single-threaded core itself.
func runHostGoroutines(sess *session.Session, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigChan:
			log.Info("drivecore: got quit signal")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		runREPL(sess, ctx)
		cancel()
		return nil
	})

	<-ctx.Done()
	log.Info("drivecore: shutting down")
	return g.Wait()
}

// runREPL is the interactive console, grounded on command/reader's
// liner.NewLiner loop: mount/unmount/reset/status/quit, plus "monitor"
// to pop the bubbletea status view.
func runREPL(sess *session.Session, ctx context.Context) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		cmd, err := line.Prompt("drivecore> ")
		if err != nil {
			return
		}
		line.AppendHistory(cmd)
		if dispatchREPL(sess, cmd) {
			return
		}
	}
}
