// Package config loads the optional TOML configuration file of plantinfo.
//
// Every field has a default, so a file only needs the keys it changes:
//
//	[resolver]
//	max_include_depth = 16
//
//	[resolver.paths]
//	model = ["./models", "/usr/share/robots"]
//
//	[logging]
//	level  = "debug"
//	format = "json"
//
// Command-line flags take precedence over the file.
package config
