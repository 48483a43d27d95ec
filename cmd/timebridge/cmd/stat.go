package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aegistudio/go-timebridge"
)

func formatTimestamp(ts *timebridge.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return fmt.Sprintf("%d.%09d", ts.Seconds, ts.Nanos)
}

var statCmd = &cobra.Command{
	Use:   "stat PATH",
	Short: "Print the access, modification and creation times",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		bridge, err := openBridge()
		if err != nil {
			return err
		}
		defer bridge.Close()

		meta, err := bridge.Stat(args[0], lookupFlags())
		if err != nil {
			return err
		}
		atime, err := timebridge.AccessTime(meta)
		if err != nil {
			return err
		}
		mtime, err := timebridge.ModificationTime(meta)
		if err != nil {
			return err
		}
		btime, err := timebridge.CreationTime(meta)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "atime", formatTimestamp(&atime))
		fmt.Fprintln(cmd.OutOrStdout(), "mtime", formatTimestamp(&mtime))
		fmt.Fprintln(cmd.OutOrStdout(), "btime", formatTimestamp(btime))

		return nil
	},
}

func init() {
	statCmd.PersistentFlags().Bool(noFollowFlag, false, "Query the symbolic link itself")

	viper.AutomaticEnv()

	rootCmd.AddCommand(statCmd)
}
