// Command uabench drives a built Parser with concurrent synthetic traffic
// and reports throughput and cache hit rate. It exists purely as an
// external smoke/benchmark harness (§1): nothing under internal/ or the
// root package imports it.
//
// Shape (flag parsing, signal-driven shutdown, startup logger bootstrap)
// is grounded on the teacher's cmd/edge-gateway/main.go and
// tests/loadtest/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edgecomet/uaparser"
	"github.com/edgecomet/uaparser/internal/cache"
	"github.com/edgecomet/uaparser/internal/obs"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	rulesPath := flag.String("rules", "", "Path to a uap-core-style rule YAML file (required)")
	resolverStr := flag.String("resolver", "regexset", `Base resolver: "basic" or "regexset"`)
	cacheStr := flag.String("cache", "lru", `Cache policy: "none", "lru", "sieve", or "s3fifo"`)
	capacity := flag.Int("capacity", 10000, "Per-shard cache capacity (ignored when -cache=none)")
	shards := flag.Int("shards", 0, "Cache shard count (0 defaults to GOMAXPROCS)")
	workers := flag.Int("workers", 8, "Number of concurrent parsing workers")
	duration := flag.Duration("duration", 5*time.Second, "How long to run the benchmark")
	logLevel := flag.String("log-level", "info", `Log level: "debug", "info", "warn", "error"`)
	logFile := flag.String("log-file", "", "If set, also write rotated JSON logs to this file")
	corpusPath := flag.String("corpus", "", `Newline-delimited User-Agent corpus file, or "-" for stdin; defaults to a small bundled corpus`)

	flag.Parse()

	cfg, err := validateConfig(*rulesPath, *resolverStr, *cacheStr, *capacity, *shards, *workers, *duration, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	corpus, err := loadCorpus(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	log, err := obs.New(obs.Config{Level: cfg.LogLevel, FilePath: *logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	runID := uuid.New().String()
	log = log.With(zap.String("run_id", runID))

	var metrics *cache.Metrics
	if cfg.Cache != uaparser.CacheNone {
		metrics = cache.NewMetricsWithRegistry("uabench", prometheus.NewRegistry())
	}

	parser, err := uaparser.New(uaparser.Config{
		RulesPath:     cfg.RulesPath,
		Resolver:      cfg.Resolver,
		Cache:         cfg.Cache,
		CacheCapacity: cfg.CacheCapacity,
		CacheShards:   cfg.CacheShards,
		Logger:        log,
		Metrics:       metrics,
	})
	if err != nil {
		log.Error("failed to build parser", zap.Error(err))
		os.Exit(1)
	}

	log.Info("starting benchmark",
		zap.Int("workers", cfg.Workers),
		zap.Duration("duration", cfg.Duration),
		zap.String("resolver", *resolverStr),
		zap.String("cache", *cacheStr),
		zap.Int("corpus_size", len(corpus)))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	var parses uint64
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				ua := corpus[rng.Intn(len(corpus))]
				parser.Parse(ua)
				atomic.AddUint64(&parses, 1)
			}
		}(time.Now().UnixNano() + int64(i))
	}

	wg.Wait()
	elapsed := time.Since(start)

	stats := parser.Stats()
	report := Report{
		RunID:           runID,
		Elapsed:         elapsed,
		Parses:          atomic.LoadUint64(&parses),
		ResolverKind:    *resolverStr,
		CacheKind:       *cacheStr,
		UARuleCount:     stats.UA,
		OSRuleCount:     stats.OS,
		DeviceRuleCount: stats.Device,
	}
	if metrics != nil {
		total, hits, ratio := metrics.Snapshot()
		report.CacheLookups = total
		report.CacheHits = hits
		report.CacheHitRatio = ratio
	}

	fmt.Print(report)
}
