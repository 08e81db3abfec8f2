// Package flags provides flag handling utilities for CLI commands.
//
// This package contains the shared flag names and helpers for reading the
// persistent flags, including timing detection and conditional timer usage.
package flags
