// farescan runs one flight search from the command line and prints the
// result envelope as JSON on stdout. Logs go to stderr so the output stays
// machine-readable.
//
// Two input forms:
//
//	farescan <origin> <destination> [departure] [return|null] [passengers]
//	echo '{"origin":"London","destination":"Dubai"}' | farescan
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/use-agent/farescan/config"
	"github.com/use-agent/farescan/models"
	"github.com/use-agent/farescan/scraper"
	"github.com/use-agent/farescan/search"
)

func main() {
	cfg := config.Load()
	initLogger(cfg.Log)

	params, err := readParams(os.Args[1:], os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: farescan <origin> <destination> [departure] [return|null] [passengers]")
		fmt.Fprintln(os.Stderr, "   or: echo '{\"origin\":...,\"destination\":...}' | farescan")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	svc := search.NewService(scraper.NewFetcher(cfg.Fetch), cfg)
	result := svc.Search(context.Background(), params)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("encode result failed", "error", err)
		os.Exit(1)
	}
}

// readParams resolves the search parameters from argv when present,
// otherwise from a JSON request piped on stdin, otherwise from defaults.
func readParams(args []string, stdin io.Reader) (models.SearchParams, error) {
	if len(args) >= 2 {
		return argvParams(args)
	}
	if len(args) == 1 {
		return models.SearchParams{}, fmt.Errorf("need both origin and destination")
	}

	if piped(stdin) {
		return stdinParams(stdin)
	}

	// No input at all: a demo search.
	return models.SearchParams{
		Origin:        "London",
		Destination:   "Dubai",
		DepartureDate: "2025-09-24",
		Passengers:    2,
	}, nil
}

func argvParams(args []string) (models.SearchParams, error) {
	params := models.SearchParams{
		Origin:      args[0],
		Destination: args[1],
		Passengers:  1,
	}
	if len(args) > 2 {
		params.DepartureDate = args[2]
	}
	if len(args) > 3 && args[3] != "null" {
		params.ReturnDate = args[3]
	}
	if len(args) > 4 {
		n, err := strconv.Atoi(args[4])
		if err != nil || n < 1 || n > 9 {
			return params, fmt.Errorf("passengers must be 1-9, got %q", args[4])
		}
		params.Passengers = n
	}
	return params, nil
}

func stdinParams(stdin io.Reader) (models.SearchParams, error) {
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return models.SearchParams{}, fmt.Errorf("read stdin: %w", err)
	}

	var req models.SearchRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return models.SearchParams{}, fmt.Errorf("parse request JSON: %w", err)
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return models.SearchParams{}, fmt.Errorf("origin and destination are required")
	}
	req.Defaults()
	return req.Params(), nil
}

// piped reports whether stdin carries piped data rather than a terminal.
func piped(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return true
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
