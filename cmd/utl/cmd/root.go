// Package cmd implements the utl command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kbukum/utl/config"
	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/internal/linepipe"
	"github.com/kbukum/utl/logger"
	"github.com/kbukum/utl/observability"
	"github.com/kbukum/utl/strbuf"
	"github.com/kbukum/utl/validation"
	"github.com/kbukum/utl/version"
)

const componentCLI = "cli"

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	output  string
	text    string
	file    string

	skipBlank bool

	cfg       *config.Config
	log       *logger.Logger
	runID     string
	metrics   *observability.Metrics
	providers *observability.Providers
}

// Execute runs the utl command with os.Args and returns the exit code.
func Execute() int {
	a := &app{}
	return execute(context.Background(), a, newRootCmd(a))
}

// execute runs root and tears a down afterwards, also when the command
// failed, so telemetry recorded for a failing run is still exported.
func execute(ctx context.Context, a *app, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	a.teardown(ctx)
	if err == nil {
		return errors.ExitOK
	}

	fmt.Fprintf(root.ErrOrStderr(), "utl: %s\n", errorMessage(err))
	if !errors.IsAppError(err) {
		// cobra argument and flag parsing errors
		return errors.ExitUsage
	}
	return errors.ExitCode(err)
}

func errorMessage(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		if appErr.Cause != nil {
			return strings.TrimSuffix(appErr.Message, ".") + ": " + appErr.Cause.Error()
		}
		return appErr.Message
	}
	return err.Error()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "utl",
		Short: "Byte string toolkit",
		Long: `utl applies byte string operations to text, line by line.

Input is read from stdin unless --text or --file is given. Compressed
input (gzip, zstd, bzip2, xz) is decoded on the fly. Results go to stdout as
plain text, JSON or YAML; logs go to stderr.

Examples:
  echo "xyzHelloxyz" | utl trim --match xyz
  utl split --text "a,b,,c" --match ,
  utl replace --pattern foo --with bar < notes.txt
  utl case upper --output json --text hello`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./utl.yml, then the user config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml (default from config)")
	root.PersistentFlags().StringVar(&a.text, "text", "", "process this text instead of stdin")
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "read input from a file, optionally gzip, zstd, bzip2 or xz compressed")
	root.MarkFlagsMutuallyExclusive("text", "file")
	root.PersistentFlags().BoolVar(&a.skipBlank, "skip-blank", false, "ignore empty input lines")

	root.AddCommand(
		newTrimCmd(a),
		newGroupCmd(a),
		newSplitCmd(a),
		newFindCmd(a),
		newRemoveCmd(a),
		newReplaceCmd(a),
		newCaseCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration and wires logging and telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.cfgFile != "" {
		opts = append(opts, config.WithConfigFile(a.cfgFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	if a.output != "" {
		if appErr := validation.New().
			OneOf("output", a.output, []string{"text", "json", "yaml"}).
			Validate(); appErr != nil {
			return appErr
		}
		cfg.Strings.Output = a.output
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg

	a.log = logger.NewWithWriter(&cfg.Logging, cfg.Base.Name, cmd.ErrOrStderr())
	logger.SetGlobalLogger(a.log)
	logger.RegisterComponents(a.log, componentCLI)
	if a.verbose {
		strbuf.SetLogger(a.log)
	}

	a.runID = uuid.NewString()
	ctx := logger.ContextWithRunID(cmd.Context(), a.runID)
	cmd.SetContext(ctx)

	svc := observability.Service{
		Name:        cfg.Base.Name,
		Version:     version.Get().Short(),
		Environment: cfg.Base.Environment,
	}
	providers, err := observability.Setup(ctx, svc, cfg.Telemetry)
	if err != nil {
		return errors.Internal(err)
	}
	a.providers = providers
	if providers.Meter != nil {
		if err := strbuf.SetMeterProvider(providers.Meter); err != nil {
			return errors.Internal(err)
		}
	}

	a.metrics, err = observability.NewMetrics(observability.Meter(cfg.Base.Name))
	if err != nil {
		return errors.Internal(err)
	}

	a.log.WithContext(ctx).Debug("run started", logger.Fields(
		logger.FieldOperation, cmd.Name(),
		"config", a.cfgFile,
		"output", cfg.Strings.Output,
	))
	return nil
}

// teardown releases what setup installed. It tolerates a setup that failed
// part way.
func (a *app) teardown(ctx context.Context) {
	strbuf.SetLogger(nil)
	logger.Unregister(componentCLI)
	ctx = logger.ContextWithRunID(ctx, a.runID)
	if a.providers != nil {
		if err := a.providers.Shutdown(ctx); err != nil && a.log != nil {
			a.log.WithContext(ctx).Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}
	if a.log != nil {
		a.log.WithContext(ctx).Debug("run finished")
	}
}

// openInput returns the stream lines are taken from: --text, --file or
// stdin. Files and stdin are decompressed when they carry a known magic
// number.
func (a *app) openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if cmd.Flags().Changed("text") {
		return io.NopCloser(strings.NewReader(a.text)), nil
	}

	var src io.Reader = cmd.InOrStdin()
	var file *os.File
	if a.file != "" {
		f, err := os.Open(a.file)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFound("input file", a.file)
			}
			return nil, errors.IO("open input", err).WithDetail("file", a.file)
		}
		src, file = f, f
	} else if src == os.Stdin {
		if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			a.log.Warn("reading from terminal, end input with Ctrl-D")
		}
	}

	rc, kind, err := linepipe.Decompress(src)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, err
	}
	if kind != linepipe.CompressionNone {
		a.log.WithContext(cmd.Context()).Debug("input is compressed", logger.Fields("compression", string(kind), "file", a.file))
	}
	if file == nil {
		return rc, nil
	}
	return &fileReader{ReadCloser: rc, file: file}, nil
}

// fileReader closes the decoder and then the file under it.
type fileReader struct {
	io.ReadCloser
	file *os.File
}

func (r *fileReader) Close() error {
	err := r.ReadCloser.Close()
	if ferr := r.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// matchFlag resolves --match, falling back to the configured default.
func (a *app) matchFlag(match string) string {
	if match == "" {
		return a.cfg.Strings.DefaultMatch
	}
	return match
}
