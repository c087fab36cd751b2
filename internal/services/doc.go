// Package services defines shared helpers consumed by the conversion pipeline
// and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs and step names for logging.
//   - Structured error markers plus the Wrap helper so every failure reads
//     "<marker>: <stage>: <operation>: <message>: <cause>" and can be
//     classified with errors.Is.
package services
