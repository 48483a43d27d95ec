package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aegistudio/go-timebridge"
	"github.com/aegistudio/go-timebridge/internal/logging"
)

const (
	dirFlag      = "dir"
	verboseFlag  = "verbose"
	noFollowFlag = "no-follow"
	atimeFlag    = "atime-ns"
	mtimeFlag    = "mtime-ns"
	nowFlag      = "now"
)

var rootCmd = &cobra.Command{
	Use:   "timebridge",
	Short: "Read and write file timestamps",
	Long: `timebridge reads and writes the access, modification and creation
times of files, relative to a base directory.

Timestamps are exchanged as nanoseconds since the unix epoch.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.SetEnvPrefix("timebridge")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	},
}

// openBridge opens the configured base directory.
func openBridge() (*timebridge.Bridge, error) {
	return timebridge.Open(
		viper.GetString(dirFlag),
		timebridge.Logger(logging.NewLogger(viper.GetBool(verboseFlag))),
	)
}

func lookupFlags() timebridge.Lookupflags {
	if viper.GetBool(noFollowFlag) {
		return 0
	}
	return timebridge.LookupSymlinkFollow
}

func init() {
	rootCmd.PersistentFlags().StringP(dirFlag, "d", ".", "Base directory paths are resolved against")
	rootCmd.PersistentFlags().BoolP(verboseFlag, "v", false, "Log every host call")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
