package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dartsight/dart-scene-gen/internal/preview"
	"github.com/dartsight/dart-scene-gen/internal/randomizer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("dart-scene-gen %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("dart-scene-gen - randomized dart scene sampler")
			fmt.Println()
			fmt.Println("Usage: dart-scene-gen [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -seed N          Global random seed (0 seeds from the clock)")
			fmt.Println("  -frames N        Number of frames to sample (default 10)")
			fmt.Println("  -darts N         Darts per frame (default 3)")
			fmt.Println("  -workers N       Parallel sampling workers (default 4)")
			fmt.Println("  -preview-dir D   Write per-frame preview PNGs into D")
			fmt.Println("  -json F          Write all frame samples as JSON to F (\"-\" for stdout)")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DART_SCENE_LOG_LEVEL=debug    Enable per-frame logging")
			fmt.Println()
			fmt.Println("The same seed reproduces the same frames regardless of the")
			fmt.Println("worker count.")
			return
		}
	}

	seed := flag.Int64("seed", 0, "global random seed (0 seeds from the clock)")
	frames := flag.Int("frames", 10, "number of frames to sample")
	darts := flag.Int("darts", 3, "darts per frame")
	workers := flag.Int("workers", 4, "parallel sampling workers")
	previewDir := flag.String("preview-dir", "", "write per-frame preview PNGs into this directory")
	jsonPath := flag.String("json", "", "write all frame samples as JSON to this file (\"-\" for stdout)")
	flag.Parse()

	// Logging goes to stderr; stdout is reserved for -json output.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := run(*seed, *frames, *darts, *workers, *previewDir, *jsonPath); err != nil {
		log.Fatalf("[Run] %v", err)
	}
}

func run(seed int64, frames, darts, workers int, previewDir, jsonPath string) error {
	if frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", frames)
	}
	if darts < 0 {
		return fmt.Errorf("dart count must not be negative, got %d", darts)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > frames {
		workers = frames
	}

	cfg := randomizer.DefaultManagerConfig()
	cfg.Throw.NumDarts = darts

	debug := os.Getenv("DART_SCENE_LOG_LEVEL") == "debug"
	log.Printf("[Run] seed %d, %d frames, %d darts, %d workers", seed, frames, darts, workers)

	// All frames are queued up front so a failing worker never leaves
	// the producer blocked.
	jobs := make(chan int, frames)
	for frame := 0; frame < frames; frame++ {
		jobs <- frame
	}
	close(jobs)

	samples := make([]*randomizer.FrameSample, frames)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// One manager per worker; frame sub-seeding keeps the
			// output independent of which worker samples which frame.
			m := randomizer.NewManager(seed, cfg)
			for frame := range jobs {
				sample, err := m.Randomize(frame)
				if err != nil {
					errs <- err
					return
				}
				if previewDir != "" {
					if err := writePreview(m, sample, previewDir, frame); err != nil {
						errs <- err
						return
					}
				}
				samples[frame] = sample
			}
		}()
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return err
	}

	elapsed := time.Since(start)
	for _, s := range samples {
		if debug {
			log.Printf("[Frame %04d] %d darts, visible score %d",
				s.Frame, len(s.Darts), s.VisibleScore())
		}
	}
	log.Printf("[Run] sampled %d frames in %s (%.1f frames/sec)",
		frames, elapsed.Round(time.Millisecond), float64(frames)/elapsed.Seconds())

	if jsonPath != "" {
		if err := writeJSON(samples, jsonPath); err != nil {
			return err
		}
	}
	return nil
}

func writePreview(m *randomizer.Manager, sample *randomizer.FrameSample, dir string, frame int) error {
	img, err := preview.Render(m.Layout, sample, preview.DefaultOptions())
	if err != nil {
		return fmt.Errorf("preview for frame %d: %w", frame, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame))
	if err := preview.Save(img, path); err != nil {
		return fmt.Errorf("preview for frame %d: %w", frame, err)
	}
	return nil
}

func writeJSON(samples []*randomizer.FrameSample, path string) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(samples); err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	return nil
}
