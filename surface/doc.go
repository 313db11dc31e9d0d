// Package surface provides composer.Surface implementations.
//
// Recorder keeps artifacts in memory for headless callers and tests.
// Terminal turns them into ANSI text. Image rasterizes them with the Go
// fonts. None of them lays text out beyond honoring explicit newlines.
package surface
