// benchmark.go
// Resource report for any Love Fold tool invoked with --benchmark.
// Measures execution time and memory usage between Start and Stop.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Session holds the snapshot taken at Start.
type Session struct {
	w               io.Writer
	label           string
	start           time.Time
	memStart        runtime.MemStats
	startGoroutines int
	stopped         bool
}

// Start prints environment info and snapshots memory and goroutines.
func Start(w io.Writer, label string) *Session {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	s := &Session{w: w, label: label}
	runtime.GC()
	runtime.ReadMemStats(&s.memStart)
	s.startGoroutines = runtime.NumGoroutine()
	s.start = time.Now()
	return s
}

// Stop prints the resource report. Calling it twice prints once.
func (s *Session) Stop() {
	if s == nil || s.stopped {
		return
	}
	s.stopped = true

	elapsed := time.Since(s.start)
	var memEnd runtime.MemStats
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	w := s.w
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", mb(int64(memEnd.Alloc)-int64(s.memStart.Alloc)))
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", mb(int64(memEnd.TotalAlloc-s.memStart.TotalAlloc)))
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", mb(int64(memEnd.HeapAlloc)))
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", memEnd.NumGC-s.memStart.NumGC)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", s.startGoroutines, endGoroutines)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run wraps f in a session and returns its error.
func Run(w io.Writer, label string, f func() error) error {
	s := Start(w, label)
	defer s.Stop()
	return f()
}

// Alloc can shrink after GC, so the difference is signed.
func mb(bytes int64) float64 {
	return float64(bytes) / 1024.0 / 1024.0
}
