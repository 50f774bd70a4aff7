// Package component draws decoded dashboard sections to a terminal.
//
// Each section kind has a renderer that gathers its data (by running an
// external command, reading the mount table, or reading the clock) and
// writes a few lines of text. Renderers reach the outside world only
// through an [Env], so tests substitute a fake [Commander], clock and mount
// source.
//
// [Runner] renders a whole dashboard in author order. A section that fails
// is logged and counted in the [Report]; the remaining sections still run.
package component
