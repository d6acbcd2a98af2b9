package chainmap_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Operations int                `json:"operations"`
	Metrics    map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// saveBenchmarkResult appends a benchmark result to the benchmark_history
// directory at the repository root.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// The repository root is one level up from bench.
	benchmarkDir := filepath.Join(filepath.Dir(currentDir), "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	// Merge with existing results if available
	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existingSummary BenchmarkSummary
		if err := json.Unmarshal(existingData, &existingSummary); err == nil {
			summary.Results = append(existingSummary.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.WriteFile(latestFile, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	return nil
}
