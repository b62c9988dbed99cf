// Package main provides the one-shot news headlines scraper.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Samriddhi244/Web-Scraper-Script/internal/config"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/logger"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/models"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/normalizer"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/reporter"
	"github.com/Samriddhi244/Web-Scraper-Script/internal/scraper"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	output := flag.String("output", "", "Report file path (overrides config)")
	topN := flag.Int("top", 0, "Number of headlines to preview (overrides config)")
	timeoutSec := flag.Int("timeout", 0, "Per-fetch timeout in seconds (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	// .env is optional; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := loadConfiguration(*configFile)
	cfg.ApplyEnvOverrides()

	if *output != "" {
		cfg.Scraper.Output.Path = *output
	}

	if *topN > 0 {
		cfg.Scraper.Output.TopN = *topN
	}

	if *timeoutSec > 0 {
		cfg.Scraper.Fetch.TimeoutSec = *timeoutSec
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	lg := logger.NewLogger(cfg.Scraper.Logging.Level)

	fmt.Println("🔍 News Headlines Scraper")
	fmt.Printf("Primary: %s (%s)\n", cfg.Scraper.Primary.Name, cfg.Scraper.Primary.URL)
	fmt.Printf("Fallback: %s (%s)\n", cfg.Scraper.Secondary.Name, cfg.Scraper.Secondary.URL)
	fmt.Printf("Output: %s (top %d preview)\n", cfg.Scraper.Output.Path, cfg.Scraper.Output.TopN)
	fmt.Println()

	fetcher := scraper.NewFetcher(cfg.Scraper.Fetch.GetTimeout(), cfg.Scraper.Fetch.UserAgent, cfg.Scraper.Fetch.BufferSizeKb)
	extractor := scraper.NewExtractor()
	norm := normalizer.NewNormalizer(cfg.Scraper.Normalize.MinLength)
	selector := scraper.NewSourceSelector(fetcher, extractor, norm, lg, cfg.Scraper.Primary, cfg.Scraper.Secondary)

	fmt.Printf("⏳ Fetching headlines from %s...\n", cfg.Scraper.Primary.Name)

	outcome := selector.Run()

	switch outcome.Source {
	case models.SourcePrimary:
		fmt.Printf("✅ Collected %d headlines from %s\n", len(outcome.Headlines), cfg.Scraper.Primary.Name)
	case models.SourceSecondary:
		fmt.Printf("✅ Collected %d headlines from fallback %s\n", len(outcome.Headlines), cfg.Scraper.Secondary.Name)
	default:
		fmt.Println("⚠️  No headlines found from any source")
	}

	rep := reporter.NewReporter(cfg.Scraper.Output.TopN)
	report := models.Report{
		Headlines:   outcome.Headlines,
		GeneratedAt: time.Now(),
	}

	fmt.Println()
	fmt.Print(rep.FormatConsole(outcome.Headlines))
	fmt.Println()

	// An empty run still writes a valid report; only a write failure
	// is fatal.
	if err := rep.WriteReport(cfg.Scraper.Output.Path, report); err != nil {
		log.Fatalf("❌ Failed to save report: %v\n", err)
	}

	fmt.Printf("📁 Report saved to: %s\n", cfg.Scraper.Output.Path)
	fmt.Printf("Total headlines: %d\n", len(report.Headlines))
	fmt.Println("\n✨ Scraping complete!")
}

// loadConfiguration resolves the config in order: explicit -config
// path, configs/scraper.yaml in the working directory, built-in
// defaults.
func loadConfiguration(path string) *config.Config {
	if path != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", path)

		cfg, err := config.LoadConfig(path)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		return cfg
	}

	defaultConfig := "configs/scraper.yaml"
	if _, err := os.Stat(defaultConfig); err == nil {
		fmt.Printf("⚙️  Loading default configuration: %s\n", defaultConfig)

		cfg, err := config.LoadConfig(defaultConfig)
		if err != nil {
			log.Fatalf("❌ Failed to load default config: %v\n", err)
		}

		return cfg
	}

	fmt.Println("⚙️  Using built-in defaults")

	return config.Default()
}

func printUsage() {
	fmt.Println("Usage: ./bin/scraper [OPTIONS]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  1. Zero-config:   ./bin/scraper (BBC primary, Reuters fallback)")
	fmt.Println("  2. Config-based:  ./bin/scraper -config configs/scraper.yaml")
	fmt.Println("  3. CLI overrides: ./bin/scraper -output headlines.txt -top 10 -timeout 5")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment overrides (after .env loading):")
	fmt.Println("  NEWS_OUTPUT_PATH, NEWS_USER_AGENT, NEWS_TIMEOUT_SEC, NEWS_TOP_N")
}
