// Package config holds the HexLife configuration record.
//
// A [Config] is a plain value with one named field per tunable. [Default]
// returns the built-in values; [Load] overlays a TOML or YAML file on top of
// them so a file only needs to name what it changes:
//
//	[grid]
//	width = 8
//	hex_size = 24
//
//	[colors]
//	grid_lines = "#7fdbff"
//
// Colors are written as "#rrggbb". [Config.Validate] rejects values no
// component can work with, and the conversion methods build each
// component's own configuration.
package config
