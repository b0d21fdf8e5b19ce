package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler records the profiles enabled in its [Config] around a run.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	config  Config
}

// Start enables sampling for the configured block and mutex profiles and
// starts CPU profiling. Call [Profiler.Stop] once the run is complete.
func (p *Profiler) Start() error {
	if p.config.Block != "" {
		runtime.SetBlockProfileRate(1)
	}

	if p.config.Mutex != "" {
		runtime.SetMutexProfileFraction(1)
	}

	if p.config.CPU == "" {
		return nil
	}

	f, err := os.Create(p.config.CPU) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("start cpu profile: %w", err), f.Close())
	}

	p.cpuFile = f

	return nil
}

// Stop stops CPU profiling and writes the enabled snapshot profiles. It
// attempts every profile and reports all failures.
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile: %w", err))
		}

		p.cpuFile = nil
	}

	snapshots := map[string]string{
		"heap":  p.config.Heap,
		"block": p.config.Block,
		"mutex": p.config.Mutex,
	}

	for name, path := range snapshots {
		if path == "" {
			continue
		}

		err := writeProfile(name, path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("write %s profile: %w", name, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close %s profile: %w", name, err)
	}

	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
