// Package fileutil provides bounded reads and atomic writes for the small
// configuration files motd consumes and generates.
package fileutil
