// Package config handles configuration loading, parsing, and validation
// from the process environment and an optional dotenv file. It provides
// read-only access to the settings other components need while keeping
// configuration details separate from business logic.
//
// Settings are constructed once at startup with Load and passed explicitly
// to whatever consumes them. Nothing in this package holds global state.
package config
