// Package main hosts the video2gif CLI entrypoint and command graph.
//
// The root command converts SOURCE into the GIF at DESTINATION; `check`
// reports whether ffmpeg, gifsicle and the work directory are usable, and
// `config` scaffolds and validates the TOML configuration. Flag values are
// parsed by the params package as they are read, so malformed input fails
// before any configuration or child process is touched.
//
// Keep this package lean: conversion behaviour lives in internal/pipeline and
// its collaborators; commands here only translate flags and configuration
// into a conversion.Request.
package main
