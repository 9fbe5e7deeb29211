package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"chromamem/internal/config"
	"chromamem/internal/session"
	"chromamem/internal/trace"
	"chromamem/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

var version = "dev"

type options struct {
	Config  string `short:"c" long:"config" description:"config file (.toml, .yaml or .json)"`
	LogFile string `long:"log-file" description:"append log output to this file"`
	Verbose bool   `short:"v" long:"verbose" description:"log every change to the sequence"`
	NoMouse bool   `long:"no-mouse" description:"disable pointer input"`
	Keys    string `long:"keys" description:"replay space-separated keys without the TUI and print the result"`
	JSON    bool   `long:"json" description:"print the --keys result as JSON"`
	Version bool   `long:"version" description:"print the version and exit"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		fmt.Fprintf(os.Stderr, "chromamem: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (*options, error) {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Usage = "[options]"
	rest, err := p.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return &opts, nil
}

// loadConfig reads the config file and lets flags override it.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.Config != "" {
		cfg, err = config.Load(opts.Config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.Verbose {
		cfg.Log.Verbose = true
	}
	if opts.NoMouse {
		cfg.UI.Mouse = false
	}
	return cfg, nil
}

// setupLogging points the standard logger at path. The TUI owns the terminal,
// so without a file log output is discarded.
func setupLogging(path string) (closeFn func(), err error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

// startTracing subscribes an OTLP tracer when one is configured in the
// environment. Setup failures disable tracing instead of aborting.
func startTracing(ctx context.Context, sess *session.Session) (shutdown func()) {
	tracer, err := trace.NewFromEnv(ctx)
	if err != nil {
		log.Printf("trace: disabled: %v", err)
		return func() {}
	}
	if tracer == nil {
		return func() {}
	}
	unsubscribe := sess.Subscribe(tracer.Observe)
	return func() {
		unsubscribe()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(ctx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}
}

func logChange(ch session.Change) {
	switch ch.Op {
	case session.OpClear:
		log.Printf("session: clear removed=%d", ch.Removed)
	default:
		log.Printf("session: %s %s #%d len=%d", ch.Op, ch.Entry.Color, ch.Entry.Index+1, ch.Len)
	}
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.Version {
		fmt.Fprintf(stdout, "chromamem %s\n", version)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	km, err := cfg.Keymap()
	if err != nil {
		return err
	}

	sess := session.New()
	stopTracing := startTracing(context.Background(), sess)
	defer stopTracing()
	if cfg.Log.Verbose {
		defer sess.Subscribe(logChange)()
	}

	if opts.Keys != "" {
		defer sess.Close()
		return runHeadless(sess, km, strings.Fields(opts.Keys), opts.JSON, stdout)
	}

	app := ui.NewAppModel(sess, km, ui.Options{ConfirmReset: cfg.UI.ConfirmReset})
	defer app.Close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	log.Printf("starting tui (mouse=%v confirm_reset=%v)", cfg.UI.Mouse, cfg.UI.ConfirmReset)
	if _, err := tea.NewProgram(app.AsTeaModel(), progOpts...).Run(); err != nil {
		return errors.Wrap(err, "run tui")
	}
	return nil
}
