package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elsa-voss/hirezclient/internal/hirez/batch"
	"github.com/elsa-voss/hirezclient/internal/hirez/client"
	"github.com/elsa-voss/hirezclient/internal/hirez/config"
	"github.com/elsa-voss/hirezclient/internal/hirez/constants"
	"github.com/elsa-voss/hirezclient/internal/hirez/driver"
	"github.com/elsa-voss/hirezclient/internal/hirez/progressui"
	"github.com/elsa-voss/hirezclient/internal/hirez/session"
	"github.com/elsa-voss/hirezclient/internal/hirez/signer"
	"github.com/elsa-voss/hirezclient/internal/hirez/transport"
)

const version = "0.1.0"

var (
	credsPath  = flag.String("creds", "credentials.txt", "Path to the two-line dev_id/dev_key file")
	poolPath   = flag.String("pool-config", "", "Path to an optional pool tuning file (JSON or YAML)")
	op         = flag.String("op", "ping", "Operation: ping, gods, items, match-ids, match-details")
	queueID    = flag.Int("queue", 0, "Queue id (match-ids)")
	date       = flag.String("date", "", "Date as YYYYMMDD (match-ids)")
	hour       = flag.String("hour", "-1", "Hour, -1 for all day (match-ids)")
	minute     = flag.String("minute", "", "Minute, one of 00/10/20/30/40/50, empty for all day (match-ids)")
	matchIDs   = flag.String("match-ids", "", "Comma-separated match ids (match-details)")
	showProgress = flag.Bool("progress", false, "Show a live wave-progress bar while requests are in flight")
	debug      = flag.Bool("debug", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("hirezcli version %s\n", version)
		os.Exit(0)
	}

	setupLogging(*debug)

	creds, err := config.LoadCredentials(*credsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credentials: %v\n", err)
		os.Exit(1)
	}

	poolCfg, err := config.LoadPoolConfig(*poolPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load pool config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	sgn := signer.New(creds.DevID, creds.DevKey, poolCfg.BaseURL, constants.FormatJSON)
	fetcher := transport.New()
	fetcher.HTTPClient.Timeout = time.Duration(poolCfg.RequestTimeout)

	pool := session.New(sgn, fetcher)
	if err := pool.Load(poolCfg.PersistPath); err != nil {
		log.Warn().Err(err).Msg("failed to load persisted sessions")
	}
	defer func() {
		if err := pool.Store(poolCfg.PersistPath); err != nil {
			log.Warn().Err(err).Msg("failed to persist sessions")
		}
	}()

	metrics := driver.NewMetrics()
	drv := &driver.Driver{
		Pool:     pool,
		Signer:   sgn,
		Fetcher:  fetcher,
		WaveSize: poolCfg.WaveSize,
		Metrics:  metrics,
	}

	c := &client.Client{
		Driver:        drv,
		Signer:        sgn,
		Fetcher:       fetcher,
		DebugDumpPath: poolCfg.DebugDumpPath,
	}

	if err := run(ctx, c, metrics); err != nil {
		log.Error().Err(err).Msg("operation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, metrics *driver.Metrics) error {
	switch *op {
	case "ping":
		body, err := c.Ping(ctx)
		if err != nil {
			return err
		}
		fmt.Println(body)
		return nil

	case "gods":
		return withProgress(metrics, 1, "gods", func() error {
			gods, err := c.Gods(ctx)
			if err != nil {
				return err
			}
			return printJSON(gods)
		})

	case "items":
		return withProgress(metrics, 1, "items", func() error {
			items, err := c.Items(ctx)
			if err != nil {
				return err
			}
			return printJSON(items)
		})

	case "match-ids":
		return withProgress(metrics, 1, "match-ids", func() error {
			ids, err := c.MatchIDsByQueue(ctx, []client.MatchIDsByQueueRequest{
				{QueueID: *queueID, Date: *date, Hour: *hour, Minute: *minute},
			})
			if err != nil {
				return err
			}
			return printJSON(ids)
		})

	case "match-details":
		ids := splitCommaList(*matchIDs)
		chunks := batch.MatchIDChunks(ids, constants.MatchDetailsBatch)
		return withProgress(metrics, len(chunks), "match-details", func() error {
			results := c.MatchDetails(ctx, ids)
			return printJSON(results)
		})

	default:
		return fmt.Errorf("unknown -op %q", *op)
	}
}

// withProgress optionally drives a bubbletea progress bar alongside fn,
// which runs the actual network operation in a goroutine.
func withProgress(metrics *driver.Metrics, total int, label string, fn func() error) error {
	if !*showProgress {
		return fn()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- fn() }()

	m := progressui.New(label, total, metrics)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Warn().Err(err).Msg("progress display failed")
	}

	return <-errCh
}

func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
