// Package config loads the component configuration from the data
// directory.
//
// Sources are layered with koanf, later ones winning:
//
//  1. the configuration file (config.json, config.yaml/.yml or config.toml)
//  2. environment variables prefixed KBCOMPONENT_, where a double underscore
//     separates nesting levels (KBCOMPONENT_PARAMETERS__CONNECTION=fail)
//  3. explicit overrides, such as command-line flags
//
// Only the action field drives dispatch; parameters are read by handlers.
package config
