package preflight

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"video2gif/internal/config"
	"video2gif/internal/deps"
	"video2gif/internal/fileutil"
	"video2gif/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// Requirements lists the executables for cfg. gifsicle is optional unless
// needOptimizer is set.
func Requirements(cfg *config.Config, needOptimizer bool) []deps.Requirement {
	return []deps.Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.Tools.FFmpeg,
			Description: "Required for palette generation and GIF encoding",
		},
		{
			Name:        "Gifsicle",
			Command:     cfg.Tools.Gifsicle,
			Description: "Required for --gifsicle optimization",
			Optional:    !needOptimizer,
		},
	}
}

// CheckSystemDeps evaluates the executables for cfg.
func CheckSystemDeps(cfg *config.Config, needOptimizer bool) []deps.Status {
	return deps.CheckBinaries(Requirements(cfg, needOptimizer))
}

// CheckDirectoryAccess verifies that the directory exists and is writable.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if err := fileutil.WritableDir(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// RunAll executes every preflight check for cfg.
func RunAll(cfg *config.Config, needOptimizer bool) []Result {
	if cfg == nil {
		return nil
	}
	statuses := CheckSystemDeps(cfg, needOptimizer)
	results := make([]Result, 0, len(statuses)+1)
	for _, status := range statuses {
		detail := status.Path
		if !status.Available {
			detail = status.Detail
		}
		results = append(results, Result{
			Name:     status.Name,
			Passed:   status.Available,
			Optional: status.Optional,
			Detail:   detail,
		})
	}
	results = append(results, CheckDirectoryAccess("Work directory", cfg.Paths.WorkDir))
	return results
}

// Verify runs RunAll and converts the first required failure into an error.
// Missing executables are tagged services.ErrDependency; an unusable work
// directory is tagged services.ErrFilesystem.
func Verify(cfg *config.Config, needOptimizer bool) error {
	if cfg == nil {
		return services.Wrap(services.ErrConfiguration, "preflight", "verify", "configuration not loaded", nil)
	}
	if missing := deps.Missing(CheckSystemDeps(cfg, needOptimizer)); len(missing) > 0 {
		status := missing[0]
		return services.Wrap(services.ErrDependency, "preflight", "lookup "+status.Name, status.Detail, nil)
	}
	if result := CheckDirectoryAccess("Work directory", cfg.Paths.WorkDir); !result.Passed {
		return services.Wrap(services.ErrFilesystem, "preflight", "work directory", result.Detail, nil)
	}
	return nil
}
