// Package logger provides leveled, colorized console output for the
// installer. Informational messages go to stdout; warnings and errors go
// to stderr so scripted callers can separate progress from problems.
package logger

import (
	"github.com/fatih/color"
)

// Info prints informational messages in green on stdout.
var Info = color.New(color.FgGreen).PrintfFunc()

// Debug prints debug messages in cyan on stdout once Init(true) has run.
// It defaults to a no-op so packages can log unconditionally.
var Debug = func(format string, a ...any) {}

// warnf and errorf are Fprintf-style so they can target the stderr stream.
var (
	warnf  = color.New(color.FgHiMagenta).FprintfFunc()
	errorf = color.New(color.FgRed).FprintfFunc()
)

// Warn prints warning messages in bright magenta on stderr.
func Warn(format string, a ...any) {
	warnf(color.Error, format, a...)
}

// Error prints error messages in red on stderr.
func Error(format string, a ...any) {
	errorf(color.Error, format, a...)
}

// Init enables or disables debug output. With enableDebug false, Debug
// stays a no-op that silently drops its input.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
