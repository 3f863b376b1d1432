package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"cyborgarena/internal/adapter/console"
	metricsinmem "cyborgarena/internal/adapter/metrics/inmemory"
	"cyborgarena/internal/adapter/random"
	"cyborgarena/internal/adapter/repo/memory"
	"cyborgarena/internal/app/game"
	"cyborgarena/internal/app/ports"
	"cyborgarena/internal/app/replay"
	"cyborgarena/internal/app/status"
	"cyborgarena/internal/config"

	"github.com/akamensky/argparse"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/leonelquinteros/gotext"
)

// unset marks a numeric flag the user did not pass.
const unset = -1

type options struct {
	configPath  string
	rows        int
	cols        int
	cyborgs     int
	channels    int
	health      int
	wallDensity float64
	seed        int
	verbose     bool
	replay      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	// After the first interrupt a second one kills the process as usual.
	go func() {
		<-ctx.Done()
		stop()
	}()
	code := run(ctx, os.Args, os.Getenv, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	hlog.SetOutput(stderr)
	hlog.SetLevel(hlog.LevelWarn)
	if opts.verbose {
		hlog.SetLevel(hlog.LevelDebug)
	}

	cfg, err := loadConfig(opts, getenv)
	if err != nil {
		hlog.Errorf("config: %v", err)
		return 1
	}
	if cfg.LocaleDir != "" {
		gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
	}

	journal := memory.NewJournalRepo(memory.NewStore())
	recorder := metricsinmem.NewRecorder()
	session, err := game.NewSession(ctx, cfg, game.Deps{
		Random:  random.NewSource(cfg.Seed),
		Journal: journal,
		Metrics: recorder,
	})
	if err != nil {
		hlog.Errorf("new session: %v", err)
		return 1
	}

	in := console.NewSource(stdin, stdout, cfg.Channels)
	out := console.NewRenderer(stdout, getenv("TERM"))
	if _, err := session.Play(ctx, in, out); err != nil {
		if !errors.Is(err, ports.ErrInputClosed) && !errors.Is(err, context.Canceled) {
			hlog.Errorf("play: %v", err)
			return 1
		}
		hlog.Warnf("session stopped early: %v", err)
	}

	summary, err := status.UseCase{Session: session, Metrics: recorder}.Execute(ctx)
	if err != nil {
		hlog.Errorf("status: %v", err)
		return 1
	}
	fmt.Fprintln(stdout, summary.Summary())

	if opts.replay {
		if err := printReplay(context.Background(), stdout, journal); err != nil {
			hlog.Errorf("replay: %v", err)
			return 1
		}
	}
	return 0
}

func parseOptions(args []string) (options, error) {
	parser := argparse.NewParser("cyborgs", "Survive the cyborg arena by broadcasting orders")

	configPath := parser.String("f", "config", &argparse.Options{Help: "YAML config file"})
	rows := parser.Int("r", "rows", &argparse.Options{Default: unset, Help: "arena rows"})
	cols := parser.Int("c", "cols", &argparse.Options{Default: unset, Help: "arena columns"})
	cyborgs := parser.Int("n", "cyborgs", &argparse.Options{Default: unset, Help: "initial cyborgs"})
	channels := parser.Int("k", "channels", &argparse.Options{Default: unset, Help: "broadcast channels"})
	health := parser.Int("H", "health", &argparse.Options{Default: unset, Help: "initial cyborg health"})
	wallDensity := parser.Float("d", "wall-density", &argparse.Options{Default: float64(unset), Help: "share of free cells turned into walls"})
	seed := parser.Int("s", "seed", &argparse.Options{Default: unset, Help: "random seed, 0 picks one"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "debug logging on stderr"})
	showReplay := parser.Flag("p", "replay", &argparse.Options{Help: "print the turn journal after the game"})

	if err := parser.Parse(args); err != nil {
		return options{}, errors.New(parser.Usage(err))
	}
	return options{
		configPath:  *configPath,
		rows:        *rows,
		cols:        *cols,
		cyborgs:     *cyborgs,
		channels:    *channels,
		health:      *health,
		wallDensity: *wallDensity,
		seed:        *seed,
		verbose:     *verbose,
		replay:      *showReplay,
	}, nil
}

// loadConfig layers defaults, the YAML file, the environment and then flags.
func loadConfig(opts options, getenv func(string) string) (config.Config, error) {
	path := strings.TrimSpace(opts.configPath)
	if path == "" {
		path = strings.TrimSpace(getenv(config.EnvConfigPath))
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(getenv)
	applyFlags(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.rows != unset {
		cfg.Rows = opts.rows
	}
	if opts.cols != unset {
		cfg.Cols = opts.cols
	}
	if opts.cyborgs != unset {
		cfg.Cyborgs = opts.cyborgs
	}
	if opts.channels != unset {
		cfg.Channels = opts.channels
	}
	if opts.health != unset {
		cfg.Health = opts.health
	}
	if opts.wallDensity != unset {
		cfg.WallDensity = opts.wallDensity
	}
	if opts.seed != unset {
		cfg.Seed = int64(opts.seed)
	}
}

func printReplay(ctx context.Context, w io.Writer, journal ports.TurnJournal) error {
	resp, err := replay.UseCase{Journal: journal}.Execute(ctx, replay.Request{})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "--- replay ---")
	for _, rec := range resp.Records {
		label := fmt.Sprintf("round %d %s", rec.Round, rec.Phase)
		if rec.Command != "" {
			label += ": " + rec.Command
		}
		fmt.Fprintln(w, label)
		fmt.Fprint(w, rec.Frame.String())
	}
	fmt.Fprintf(w, "final: round=%d remaining=%d player=%s\n", resp.Latest.Round, resp.Latest.Remaining, resp.Latest.Player)
	return nil
}
