// Command geomigrate validates migration paths against a spatial adjacency
// matrix. It runs one-shot (load, validate, print report), converts
// observation CSVs to the flat JSON shape, or serves the HTTP API.
//
// Exit codes in one-shot mode: 0 all paths valid, 1 violations found,
// 2 operational failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/geomigrate/adjacency"
	"github.com/katalvlaran/geomigrate/config"
	"github.com/katalvlaran/geomigrate/ingest"
	"github.com/katalvlaran/geomigrate/logger"
	"github.com/katalvlaran/geomigrate/migration"
	"github.com/katalvlaran/geomigrate/server"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file (optional)")
	matrixPath := flag.String("matrix", "", "Path to the adjacency-matrix CSV")
	obsPath := flag.String("observations", "", "Path to the observations JSON")
	format := flag.String("format", "", "Observations shape: flat or nested")
	parallelism := flag.Int("parallelism", 0, "Validator worker count (0 = from config)")
	serve := flag.Bool("serve", false, "Serve the HTTP API instead of validating once")
	httpAddr := flag.String("http-addr", "", "Listen address for -serve (e.g. :8080)")
	convert := flag.String("convert", "", "Convert an observation CSV to flat JSON and exit")
	out := flag.String("out", "", "Output path for -convert (default: stdout)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}
	// Flags override file values.
	if *matrixPath != "" {
		cfg.MatrixPath = *matrixPath
	}
	if *obsPath != "" {
		cfg.ObservationsPath = *obsPath
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *parallelism > 0 {
		cfg.Parallelism = *parallelism
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	logger.Initialize(cfg.LogLevel, logger.LogFormat(cfg.LogFormat))
	defer func() { _ = logger.Sync() }()
	log := logger.For("geomigrate")

	if *convert != "" {
		if err := runConvert(*convert, *out); err != nil {
			log.Errorw("conversion failed", "err", err)
			os.Exit(2)
		}

		return
	}

	if cfg.MatrixPath == "" {
		fmt.Fprintln(os.Stderr, "geomigrate: -matrix (or matrix_path in config) is required")
		os.Exit(2)
	}
	idx, err := loadIndex(cfg.MatrixPath)
	if err != nil {
		log.Errorw("loading adjacency matrix failed", "path", cfg.MatrixPath, "err", err)
		os.Exit(2)
	}
	log.Infow("adjacency index built", "states", idx.States(), "pairs", idx.PairCount())

	var paths migration.PathSet
	if cfg.ObservationsPath != "" {
		if paths, err = loadObservations(cfg.ObservationsPath, cfg.Format); err != nil {
			log.Errorw("loading observations failed", "path", cfg.ObservationsPath, "err", err)
			os.Exit(2)
		}
		log.Infow("observations loaded", "entities", len(paths))
	}

	if *serve {
		runServe(cfg.HTTPAddr, idx, paths, cfg.Parallelism)

		return
	}

	if paths == nil {
		fmt.Fprintln(os.Stderr, "geomigrate: -observations (or observations_path in config) is required")
		os.Exit(2)
	}

	start := time.Now()
	report, err := migration.Validate(paths, idx, migration.WithParallelism(cfg.Parallelism))
	if err != nil {
		log.Errorw("validation failed", "err", err)
		os.Exit(2)
	}
	log.Infow("validation completed", "duration", time.Since(start), "invalid_entities", len(report))

	if err = report.Format(os.Stdout); err != nil {
		log.Errorw("writing report failed", "err", err)
		os.Exit(2)
	}
	if !report.Valid() {
		os.Exit(1)
	}
}

// loadIndex builds the adjacency index from a matrix CSV file.
func loadIndex(path string) (*adjacency.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dense, err := ingest.LoadAdjacencyCSV(f)
	if err != nil {
		return nil, err
	}

	return adjacency.FromDense(dense)
}

// loadObservations decodes the observations file in the configured shape.
func loadObservations(path, format string) (migration.PathSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == config.FormatNested {
		return ingest.DecodeNested(f)
	}

	return ingest.DecodeFlat(f)
}

// runConvert translates an observation CSV into the flat JSON shape.
func runConvert(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	dst := os.Stdout
	if out != "" {
		if dst, err = os.Create(out); err != nil {
			return err
		}
		defer dst.Close()
	}

	return ingest.ConvertCSV(src, dst)
}

// runServe blocks serving HTTP until SIGINT/SIGTERM.
func runServe(addr string, idx *adjacency.Index, paths migration.PathSet, parallelism int) {
	log := logger.For("geomigrate")

	srv, err := server.New(addr, idx, paths, parallelism)
	if err != nil {
		log.Errorw("server setup failed", "err", err)
		os.Exit(2)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if runErr := srv.Run(); runErr != nil {
			log.Errorw("server failed", "err", runErr)
			os.Exit(2)
		}
	}()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown failed", "err", err)
	}
}
