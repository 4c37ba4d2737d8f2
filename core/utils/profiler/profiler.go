/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package profiler

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	GFMLogger "github.com/slicingmelon/gofmhurl/core/utils/logger"
)

const defaultBaseDir = "_pprof"

// Profiler captures a CPU profile for the lifetime of a run, then heap, allocs and
// goroutine snapshots when it stops.
type Profiler struct {
	timestamp   string
	profileDir  string
	cpuFile     *os.File
	memRateSave int
}

// NewProfiler writes into baseDir/profile_<timestamp>, baseDir defaults to _pprof.
func NewProfiler(baseDir string) *Profiler {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	timestamp := time.Now().Format("20060102-150405")
	return &Profiler{
		timestamp:  timestamp,
		profileDir: filepath.Join(baseDir, fmt.Sprintf("profile_%s", timestamp)),
	}
}

func (p *Profiler) Dir() string {
	return p.profileDir
}

func (p *Profiler) Start() error {
	if err := os.MkdirAll(p.profileDir, 0755); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	cpuFile, err := os.Create(p.path("cpu"))
	if err != nil {
		return fmt.Errorf("create CPU profile: %w", err)
	}

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return fmt.Errorf("start CPU profile: %w", err)
	}
	p.cpuFile = cpuFile

	p.memRateSave = runtime.MemProfileRate
	runtime.MemProfileRate = 1
	runtime.GC()
	return nil
}

// Stop ends the CPU profile and writes the snapshot profiles. Failures are logged, not returned.
func (p *Profiler) Stop() {
	runtime.GC()
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}

	cpuPath := p.path("cpu")
	if fi, err := os.Stat(cpuPath); err == nil && fi.Size() == 0 {
		GFMLogger.Warning().Msgf("CPU profile is empty, the run was too short to sample")
		os.Remove(cpuPath)
	}

	for _, profType := range []string{"heap", "allocs", "goroutine"} {
		if err := p.WriteProfile(profType); err != nil {
			GFMLogger.Error().Msgf("Failed to write %s profile: %v", profType, err)
		}
	}

	if p.memRateSave != 0 {
		runtime.MemProfileRate = p.memRateSave
	}

	GFMLogger.Info().Msgf("Profile data written to: %s", p.profileDir)
}

func (p *Profiler) WriteProfile(profType string) error {
	prof := pprof.Lookup(profType)
	if prof == nil {
		return fmt.Errorf("no %s profile found", profType)
	}

	f, err := os.Create(p.path(profType))
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	defer f.Close()

	return prof.WriteTo(f, 0)
}

func (p *Profiler) path(profType string) string {
	return filepath.Join(p.profileDir, fmt.Sprintf("%s-%s.prof", profType, p.timestamp))
}
