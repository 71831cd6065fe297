// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Night markers, qibla compass, JSON export, shafaq selection
// 0.2.0 - Moonsighting seasonal safeguards, high-latitude rules, TUI date navigation
// 0.1.0 - Initial release: solar solver, method presets, summary mode
