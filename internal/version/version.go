// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Interactive converter TUI, sexagesimal notation, batch mode
// 0.2.0 - Obliquity of date with nutation, equatorial → ecliptical inversion
// 0.1.0 - Initial release: bounded coordinates, ecliptical → equatorial at J2000/B1950
