package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:          "examgrade",
	Short:        "Exam scoring engine",
	Long:         "Examgrade turns a learner's raw answer submissions into a graded, multi-dimensional performance report.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
