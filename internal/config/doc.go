// Package config provides configuration management for coursectl.
//
// Configuration is loaded from several layers and merged in order, with
// later layers overriding earlier ones:
//
//  1. Default configuration (built into the binary)
//  2. User configuration (~/.config/coursectl/config.yaml)
//  3. Project configuration (./.coursectl/config.yaml)
//  4. Environment (COURSECTL_API_BASE), after an optional .env file has
//     been loaded into the process environment
//
// A configuration file looks like:
//
//	apiBase: "http://localhost:5000"
//	ui:
//	  defaultTab: "participants"
//	  debug: false
//
// The command line flag --api-base overrides every layer; that override is
// applied by the caller through WithAPIBase.
package config
