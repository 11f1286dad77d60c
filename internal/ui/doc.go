// Package ui provides terminal output formatting for flagdemo.
//
// This package handles all user-facing output with consistent styling:
//   - Colored status messages (info, success, failure, warning)
//   - Headers and footers with box-drawing characters
//   - Rendering of parse results and flag usage
//   - A line prompt for interactive mode
//
// Status output goes to ui.Out (defaults to os.Stderr) and parse results
// go to ui.Result (defaults to os.Stdout), so both can be redirected in
// tests.
//
// Example usage:
//
//	ui.Header()
//	ui.PrintResult(res)
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle (stray tokens, demo input)
package ui
