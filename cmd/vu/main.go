package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vulearn/internal/apiclient"
	"vulearn/internal/config"
	"vulearn/internal/logger"
	"vulearn/internal/service"
	"vulearn/internal/session"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the services shared by every subcommand. It is built once the
// flags are parsed.
type app struct {
	cfg         *config.Config
	log         zerolog.Logger
	sess        *session.Manager
	auth        service.AuthService
	courses     service.CourseService
	enrollments service.EnrollmentService

	verbose bool
	asJSON  bool
	timeout time.Duration

	closeStore func() error
	stopWatch  func()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vu",
		Short: "Command line client for the VU Learn course marketplace",
		Long: `vu talks to the VU Learn backend on your behalf.

The session is kept in SESSION_FILE so that later commands reuse the
tokens obtained by 'vu login'. Tokens are refreshed automatically.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(); err != nil {
				return err
			}
			a.watch(cmd.Context())
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print results as JSON")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", time.Minute, "Overall command timeout")

	root.AddCommand(a.loginCmd(), a.logoutCmd(), a.whoamiCmd())
	root.AddCommand(a.coursesCmd(), a.enrollCmd(), a.enrollmentsCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	a.log = logger.New(cfg.Environment, level)

	store, closeStore, err := session.Open(context.Background(), cfg.SessionDBDriver, cfg.SessionDBDSN, cfg.SessionFile)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	a.closeStore = closeStore
	a.sess = session.NewManager(store, a.log)

	client := apiclient.New(apiclient.SettingsFromConfig(cfg), a.sess, a.log)
	a.auth = service.NewAuthService(client, a.log)
	a.courses = service.NewCourseService(client, a.log)
	a.enrollments = service.NewEnrollmentService(client, a.courses, a.log)
	return nil
}

// watch keeps the session in step with other vu processes sharing the
// session file for as long as the command runs.
func (a *app) watch(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.sess.Watch(ctx); err != nil {
			a.log.Warn().Err(err).Msg("Session watcher stopped")
		}
	}()
	a.stopWatch = func() {
		cancel()
		<-done
	}
}

// close stops the watcher and releases the session store.
func (a *app) close() {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	if a.closeStore != nil {
		if err := a.closeStore(); err != nil {
			a.log.Warn().Err(err).Msg("Failed to close session store")
		}
	}
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

// print writes v as indented JSON when --json is set, otherwise it calls text.
func (a *app) print(w io.Writer, v any, text func(io.Writer)) error {
	if !a.asJSON {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// run executes one vu invocation and releases everything it opened.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
