package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aegistudio/go-timebridge"
	"github.com/aegistudio/go-timebridge/internal/logging"
)

var setFdCmd = &cobra.Command{
	Use:   "set-fd PATH",
	Short: "Open a file and set its times through the open handle",
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

		path := args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(viper.GetString(dirFlag), path)
		}
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open file")
		}
		defer f.Close()

		bridge := timebridge.New(nil,
			timebridge.Logger(logging.NewLogger(viper.GetBool(verboseFlag))))

		return bridge.SetFileHandleTimes(f, atime, mtime)
	},
}

func init() {
	setFdCmd.PersistentFlags().String(atimeFlag, "", "Access time in nanoseconds since epoch")
	setFdCmd.PersistentFlags().String(mtimeFlag, "", "Modification time in nanoseconds since epoch")

	viper.AutomaticEnv()

	rootCmd.AddCommand(setFdCmd)
}
