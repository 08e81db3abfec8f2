// Package errorhandler runs Cobra commands and normalizes the errors they return.
package errorhandler
