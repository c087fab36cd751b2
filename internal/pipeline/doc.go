// Package pipeline drives one conversion through its external steps.
//
// The Orchestrator validates the request, names the run's temporary
// artifacts, locks the destination, then walks a small state machine:
// subtitle extraction, palette generation, GIF creation, subtitle cleanup
// and optimization, skipping the states the request does not need. Each
// step is rendered by the command package and executed through a Runner.
// Intermediate files are removed as soon as the next step no longer needs
// them; on any failure everything the run created is swept.
package pipeline
