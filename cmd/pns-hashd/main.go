package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	"github.com/hzy1919/pns-sdk/namehash"
	"github.com/hzy1919/pns-sdk/rpc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code so deferred cleanup always runs before
// main exits.
func run(args []string, errOut io.Writer) int {
	fs := flag.NewFlagSet("pns-hashd", flag.ContinueOnError)
	fs.SetOutput(errOut)
	listen := fs.String("listen", "127.0.0.1:7787", "listen address")
	cacheSize := fs.Int("cache-size", namehash.DefaultCacheSize, "namehash LRU entries")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	cache, err := namehash.NewCache(namehash.Engine{}, *cacheSize)
	if err != nil {
		log.Error("namehash cache", zap.Error(err))
		return 2
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Error("listen", zap.String("addr", *listen), zap.Error(err))
		return 1
	}
	defer lis.Close()

	s := grpc.NewServer(grpc.UnaryInterceptor(rpc.LoggingInterceptor(log)))
	rpc.RegisterNameHashServer(s, &rpc.Server{Cache: cache, Logger: log})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		got := <-sig
		log.Info("shutting down", zap.Stringer("signal", got))
		s.GracefulStop()
	}()

	log.Info("pns-hashd listening", zap.String("addr", lis.Addr().String()), zap.Int("cache_size", *cacheSize))
	if err := s.Serve(lis); err != nil {
		log.Error("serve", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
