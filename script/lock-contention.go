package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

type lockEntry struct {
	DocumentID   string `json:"documentId"`
	DocumentType string `json:"documentType"`
}

type acquireRequest struct {
	Holder  string      `json:"holder"`
	Reason  string      `json:"reason"`
	Entries []lockEntry `json:"entries"`
}

type lockResponse struct {
	ID string `json:"id"`
}

// outcome of one acquire/release round
type outcome struct {
	status  int
	elapsed time.Duration
	err     error
}

type stats struct {
	mu        sync.Mutex
	acquired  int
	conflicts int
	failures  int
	released  int
	latencies []time.Duration
	errors    map[string]int
}

func (s *stats) record(o outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latencies = append(s.latencies, o.elapsed)
	switch {
	case o.err != nil:
		s.failures++
		s.errors[o.err.Error()]++
	case o.status == http.StatusCreated:
		s.acquired++
	case o.status == http.StatusConflict:
		s.conflicts++
	default:
		s.failures++
		s.errors[fmt.Sprintf("HTTP status code %d", o.status)]++
	}
}

func main() {
	concurrency := flag.Int("c", 8, "Number of concurrent editors")
	totalRequests := flag.Int("n", 200, "Total number of acquire attempts")
	documents := flag.Int("d", 10, "Size of the document pool editors compete for")
	entriesPerLock := flag.Int("e", 2, "Entries requested per lock")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	holdMs := flag.Int("hold", 50, "Time an acquired lock is held before release, in milliseconds")
	flag.Parse()

	if *entriesPerLock > *documents {
		fmt.Fprintln(os.Stderr, "entries per lock cannot exceed the document pool")
		os.Exit(2)
	}

	fmt.Printf("Contending for %d documents with %d editors\n", *documents, *concurrency)
	fmt.Printf("Total acquire attempts: %s, %d entries each, held %d ms\n",
		humanize.Comma(int64(*totalRequests)), *entriesPerLock, *holdMs)

	st := &stats{errors: make(map[string]int)}
	client := &http.Client{Timeout: 10 * time.Second}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < *concurrency; w++ {
		holder := fmt.Sprintf("editor-%d", w)
		g.Go(func() error {
			for range jobs {
				entries := pickEntries(*documents, *entriesPerLock)
				o, lockID := acquire(ctx, client, *baseURL, holder, entries)
				st.record(o)
				if lockID == "" {
					continue
				}
				time.Sleep(time.Duration(*holdMs) * time.Millisecond)
				if release(ctx, client, *baseURL, lockID) {
					st.mu.Lock()
					st.released++
					st.mu.Unlock()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	printResults(st, *totalRequests, time.Since(start))
}

func pickEntries(pool, n int) []lockEntry {
	entries := make([]lockEntry, 0, n)
	for _, i := range rand.Perm(pool)[:n] {
		entries = append(entries, lockEntry{
			DocumentID:   fmt.Sprintf("OBJ-%04d", i),
			DocumentType: "cultural_object",
		})
	}
	return entries
}

func acquire(ctx context.Context, client *http.Client, baseURL, holder string, entries []lockEntry) (outcome, string) {
	body, err := json.Marshal(acquireRequest{Holder: holder, Reason: "load test", Entries: entries})
	if err != nil {
		return outcome{err: err}, ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/locks", bytes.NewReader(body))
	if err != nil {
		return outcome{err: err}, ""
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(started)
	if err != nil {
		return outcome{elapsed: elapsed, err: err}, ""
	}
	defer resp.Body.Close()

	o := outcome{status: resp.StatusCode, elapsed: elapsed}
	if resp.StatusCode != http.StatusCreated {
		return o, ""
	}

	var lock lockResponse
	if err := json.NewDecoder(resp.Body).Decode(&lock); err != nil {
		return outcome{elapsed: elapsed, err: fmt.Errorf("decode lock: %w", err)}, ""
	}
	return o, lock.ID
}

func release(ctx context.Context, client *http.Client, baseURL, lockID string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, baseURL+"/locks/"+lockID, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	var body struct {
		Released bool `json:"released"`
	}
	return json.NewDecoder(resp.Body).Decode(&body) == nil && body.Released
}

func printResults(st *stats, total int, elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()

	slices.Sort(st.latencies)
	percentile := func(p int) time.Duration {
		if len(st.latencies) == 0 {
			return 0
		}
		return st.latencies[len(st.latencies)*p/100]
	}
	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Acquire Attempts:    %s\n", humanize.Comma(int64(total)))
	fmt.Printf("Acquired:            %d (%.1f%%)\n", st.acquired, pct(st.acquired))
	fmt.Printf("Conflicted:          %d (%.1f%%)\n", st.conflicts, pct(st.conflicts))
	fmt.Printf("Failed:              %d (%.1f%%)\n", st.failures, pct(st.failures))
	fmt.Printf("Released:            %d\n", st.released)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Attempts/second:     %.2f\n", float64(total)/elapsed.Seconds())

	fmt.Println("\n----------------- ACQUIRE LATENCY -----------------")
	fmt.Printf("P50: %v  P90: %v  P99: %v\n", percentile(50), percentile(90), percentile(99))

	if st.released != st.acquired {
		fmt.Printf("\nWARNING: %d acquired locks were not released\n", st.acquired-st.released)
	}

	if st.failures > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range st.errors {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
	fmt.Println("================================================")
}
