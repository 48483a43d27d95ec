package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aegistudio/go-timebridge"
)

// timestampFlag parses a nanoseconds since epoch flag, where
// an empty value means the flag is absent.
func timestampFlag(name string) (*timebridge.Timestamp, error) {
	value := viper.GetString(name)
	if value == "" {
		return nil, nil
	}
	native, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse --%s", name)
	}
	ts := timebridge.FromNative(native)
	return &ts, nil
}

var setCmd = &cobra.Command{
	Use:   "set PATH",
	Short: "Set the access and/or modification time of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		atime, err := timestampFlag(atimeFlag)
		if err != nil {
			return err
		}
		mtime, err := timestampFlag(mtimeFlag)
		if err != nil {
			return err
		}
		var fst timebridge.Fstflags
		var a, m timebridge.Timestamp
		switch {
		case atime != nil:
			fst |= timebridge.FstATIM
			a = *atime
		case viper.GetBool(nowFlag):
			fst |= timebridge.FstATIMNow
		}
		switch {
		case mtime != nil:
			fst |= timebridge.FstMTIM
			m = *mtime
		case viper.GetBool(nowFlag):
			fst |= timebridge.FstMTIMNow
		}
		if fst == 0 {
			return errors.Errorf("one of --%s, --%s or --%s is required",
				atimeFlag, mtimeFlag, nowFlag)
		}

		bridge, err := openBridge()
		if err != nil {
			return err
		}
		defer bridge.Close()

		return bridge.SetPathTimes(args[0], a, m, lookupFlags(), fst)
	},
}

func init() {
	setCmd.PersistentFlags().String(atimeFlag, "", "Access time in nanoseconds since epoch")
	setCmd.PersistentFlags().String(mtimeFlag, "", "Modification time in nanoseconds since epoch")
	setCmd.PersistentFlags().Bool(nowFlag, false, "Set the times not given explicitly to the current time")
	setCmd.PersistentFlags().Bool(noFollowFlag, false, "Update the symbolic link itself")

	viper.AutomaticEnv()

	rootCmd.AddCommand(setCmd)
}
