package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mitbapl/soa-analyzer/internal/analyzer"
	"github.com/mitbapl/soa-analyzer/internal/api"
	"github.com/mitbapl/soa-analyzer/internal/extractor"
	"github.com/mitbapl/soa-analyzer/internal/logger"
	"github.com/mitbapl/soa-analyzer/internal/parser"
	"github.com/mitbapl/soa-analyzer/internal/writer"
)

func main() {
	bankFlag := flag.String("bank", "", "Bank name override (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output CSV path (defaults to input filename with .csv extension)")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	addrFlag := flag.String("addr", "", "Listen address for -serve (default :8080, or SOA_ADDR)")
	extractorFlag := flag.String("extractor", "", "Base URL of the remote text-extraction service (or SOA_EXTRACTOR_URL)")
	flag.Usage = usage
	flag.Parse()

	// .env is optional; env vars win over flags' defaults, flags win over env.
	_ = godotenv.Load()

	log := logger.New()

	extractorURL := *extractorFlag
	if extractorURL == "" {
		extractorURL = os.Getenv("SOA_EXTRACTOR_URL")
	}
	var remote *extractor.Client
	if extractorURL != "" {
		remote = extractor.NewClient(extractorURL)
	}

	if *serveFlag {
		addr := *addrFlag
		if addr == "" {
			addr = os.Getenv("SOA_ADDR")
		}
		if addr == "" {
			addr = ":8080"
		}
		srv := &api.Server{Log: log, Remote: remote}
		log.Info().Str("addr", addr).Bool("remote_extractor", remote != nil).Msg("starting API")
		if err := srv.App().Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(log, remote, inputPath, *bankFlag, *outputFlag); err != nil {
			log.Fatal().Err(err).Str("file", inputPath).Msg("processing failed")
		}
	}
}

func processFile(log zerolog.Logger, remote *extractor.Client, inputPath, bank, outputPath string) error {
	text, err := loadText(remote, inputPath)
	if err != nil {
		return err
	}

	res := analyzer.Analyze(text, bank)
	log.Info().
		Str("file", inputPath).
		Str("bank", res.Bank).
		Int("transactions", len(res.Transactions)).
		Msg("statement analyzed")

	if res.Empty() {
		fmt.Println(res.Diagnostic)
		return nil
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", outPath, err)
	}
	defer f.Close()
	if err := writer.WriteCSV(f, res.Transactions); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}

	log.Info().Str("output", outPath).Msg("CSV written")
	fmt.Println(res.Summary)
	return nil
}

// loadText reads a .txt file directly, or extracts text from a .pdf via the
// remote service when configured and the local library otherwise.
func loadText(remote *extractor.Client, inputPath string) (string, error) {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".txt":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	case ".pdf":
		if remote != nil {
			pdfBytes, err := os.ReadFile(inputPath)
			if err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return remote.ExtractText(context.Background(), filepath.Base(inputPath), pdfBytes)
		}
		return extractor.LocalText(inputPath)
	default:
		return "", fmt.Errorf("expected a .pdf or .txt file, got %q", inputPath)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `SOA Analyzer

Converts bank statement-of-account text into a structured transaction
ledger: CSV, fiscal-year totals, and recurring-payment detection.

Usage:
  soa-analyzer [flags] <statement.pdf|statement.txt> [more files ...]
  soa-analyzer -serve [-addr :8080]

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Supported banks (auto-detected): %s
Unrecognised statements fall back to a generic date+amount rule.
`, strings.Join(parser.Default().Names(), ", "))
}
