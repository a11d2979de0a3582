// Package config loads display configurations from YAML files.
//
// A configuration file describes the managed displays: each display's
// supported mode table and designated default mode. It stands in for the
// mode-discovery collaborator in tools and simulations; production
// integrations construct display.Catalog values directly from their
// discovery source.
package config
