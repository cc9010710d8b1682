// Package batch implements the batch planner (spec §4.5, component C5):
// splitting an unbounded list of request arguments into per-HTTP-call
// batches and per-wave concurrency groups.
package batch

import "strings"

// MatchIDChunks partitions match IDs into comma-joined suffixes of at most
// chunkSize IDs each, every suffix prefixed with "/". The final chunk may
// be smaller than chunkSize. Pass constants.MatchDetailsBatch as chunkSize.
func MatchIDChunks(ids []string, chunkSize int) []string {
	if chunkSize <= 0 {
		chunkSize = len(ids)
	}

	var suffixes []string
	for start := 0; start < len(ids); start += chunkSize {
		end := start + chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		suffixes = append(suffixes, "/"+strings.Join(ids[start:end], ","))
	}
	return suffixes
}

// Waves partitions items into consecutive groups of at most waveSize
// elements, for the Concurrent Request Driver's per-wave fan-out.
func Waves[T any](items []T, waveSize int) [][]T {
	if waveSize <= 0 {
		waveSize = len(items)
	}

	var waves [][]T
	for start := 0; start < len(items); start += waveSize {
		end := start + waveSize
		if end > len(items) {
			end = len(items)
		}
		waves = append(waves, items[start:end])
	}
	return waves
}
