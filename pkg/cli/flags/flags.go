package flags

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/uelms/dbsetup/pkg/utils/timer"
)

// Flag names shared by the commands.
const (
	TimingFlagName         = "timing"
	VerboseFlagName        = "verbose"
	ConnectTimeoutFlagName = "connect-timeout"
	NoPauseFlagName        = "no-pause"
	ConfigFlagName         = "config"
	OutputFlagName         = "output"
	ForceFlagName          = "force"
)

var (
	// ErrNilCommand is returned when a helper receives a nil command.
	ErrNilCommand = errors.New("command is nil")
	// ErrFlagNotFound is returned when neither the command nor its parents define the flag.
	ErrFlagNotFound = errors.New("flag not found")
)

// IsTimingEnabled reports whether --timing is set on cmd or inherited from a parent.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	return boolFlag(cmd, TimingFlagName)
}

// MaybeTimer returns tmr when --timing is enabled and nil otherwise.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if cmd == nil || tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}

// IsVerbose reports whether debug logging was requested. A missing flag reads as false.
func IsVerbose(cmd *cobra.Command) bool {
	verbose, err := boolFlag(cmd, VerboseFlagName)

	return err == nil && verbose
}

// IsNoPause reports whether the final acknowledgement prompt should be skipped.
func IsNoPause(cmd *cobra.Command) bool {
	noPause, err := boolFlag(cmd, NoPauseFlagName)

	return err == nil && noPause
}

// ConnectTimeout returns the --connect-timeout value. A missing flag reads as zero.
func ConnectTimeout(cmd *cobra.Command) time.Duration {
	flag, err := lookup(cmd, ConnectTimeoutFlagName)
	if err != nil {
		return 0
	}

	timeout, err := time.ParseDuration(flag.Value.String())
	if err != nil {
		return 0
	}

	return timeout
}

func boolFlag(cmd *cobra.Command, name string) (bool, error) {
	flag, err := lookup(cmd, name)
	if err != nil {
		return false, err
	}

	value, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		return false, fmt.Errorf("parse %s flag: %w", name, err)
	}

	return value, nil
}

// lookup finds name among the local, persistent and inherited flags of cmd.
func lookup(cmd *cobra.Command, name string) (*pflag.Flag, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	for _, set := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		flag := set.Lookup(name)
		if flag != nil {
			return flag, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrFlagNotFound, name)
}
