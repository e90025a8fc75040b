// Package config provides the settings shared by the covreport commands.
// It defines the fixed report location, the defaults used by the summary
// command, and validation of flag-provided values. covreport reads no
// configuration file or environment variables.
package config
