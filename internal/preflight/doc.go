// Package preflight provides readiness checks for the executables and
// directories a conversion depends on.
//
// These checks run in two contexts:
//   - The convert command calls Verify before starting any child process so
//     a missing ffmpeg fails fast instead of halfway through a run.
//   - The `video2gif check` command calls RunAll to display every result.
//
// The optimizer is only required when the run asks for optimization.
package preflight
