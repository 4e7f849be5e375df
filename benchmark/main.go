// Package main provides a performance benchmarking tool for the Autoscope CLI.
// It measures execution times across a set of technology records and command
// types, running each test multiple times, treating the first successful run
// as cold and averaging the rest as warm, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - autoscope binary installed and available in PATH
// - Technology record JSON files in the specified base directory
//
// Usage: go run benchmark/main.go [record-base-dir]
//
//	record-base-dir: Directory containing technology record files (*.json)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Record      string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RecordBase  string
	Timeout     time.Duration
	Industry    string
	NoCacheRuns int
	CacheRuns   int
	Records     []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [record-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	recordBase := os.Args[1]

	config := BenchmarkConfig{
		RecordBase:  recordBase,
		Timeout:     time.Minute,
		Industry:    "Healthcare",
		NoCacheRuns: 3,
		CacheRuns:   4,
	}

	records, err := listRecords(recordBase)
	if err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}
	config.Records = records

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using autoscope cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("autoscope", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// listRecords finds all technology record files in the base directory.
func listRecords(base string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(base, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no technology record files found in %s", base)
	}
	var names []string
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	return names, nil
}

// checkPrerequisites verifies that the autoscope binary and record files exist.
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if autoscope is available
	if _, err := exec.LookPath("autoscope"); err != nil {
		return fmt.Errorf("autoscope binary not found in PATH")
	}

	// Check if record files exist
	for _, record := range config.Records {
		recordPath := filepath.Join(config.RecordBase, record)
		if _, err := os.Stat(recordPath); os.IsNotExist(err) {
			return fmt.Errorf("record %s not found at %s", record, recordPath)
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured records.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d records, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Records), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, record := range config.Records {
		fmt.Printf("Benchmarking %s\n", record)

		recordPath := filepath.Join(config.RecordBase, record)

		// Full analysis benefits most from caching
		result := runBenchmarkSuite(config, record, recordPath, "analyze", "impact analysis")
		results = append(results, result)

		// Projection is computed fresh on every run
		result = runBenchmarkSuite(config, record, recordPath, "project", "projection")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, record, recordPath, command, description string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, record)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, recordPath, command, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Record:      record,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes an autoscope command multiple times with the
// specified cache backend and returns the cold time and warm times.
func runBenchmark(config BenchmarkConfig, recordPath, command, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, recordPath, "--cache-backend", cacheBackend, "--industry", config.Industry}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("autoscope", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	if command == "project" {
		completionPhrase = "Projected"
	} else {
		completionPhrase = "Analysis completed in"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/autoscope_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"record", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Record, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "analyze", "Impact Analysis:")
	printCommandSummary(results, "project", "Projection:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-24s: No-cache: %s, Cold: %s, Warm: %s\n", result.Record, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
