package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
)

// Output is where the Print helpers write. Tests may redirect it.
var Output io.Writer = color.Output

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	successColor.Fprintln(Output, "✓ "+fmt.Sprintf(msg, args...))
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	errorColor.Fprintln(Output, "✗ "+fmt.Sprintf(msg, args...))
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	infoColor.Fprintln(Output, "ℹ "+fmt.Sprintf(msg, args...))
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	warningColor.Fprintln(Output, "⚠ "+fmt.Sprintf(msg, args...))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// DirExists checks if a directory exists
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
