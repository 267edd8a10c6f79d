package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rabbitlint/rabbitlint/pkg/configuration"
	"github.com/rabbitlint/rabbitlint/pkg/constants"
)

var (
	forceWrite bool
)

func init() {
	generatecmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "Force creation when file exists")
}

func GenerateConfig() *cobra.Command {
	generatecmd.RunE = func(cmd *cobra.Command, args []string) error {
		return configuration.GenerateConfig(forceWrite)
	}

	return generatecmd
}

var generatecmd = &cobra.Command{
	Use:   "generate-config",
	Short: fmt.Sprintf("Generate a default %s file", constants.DefaultConfigFilename),
	Long: fmt.Sprintf("Generate a %s config file in the current directory "+
		"with a default reviews section.", constants.DefaultConfigFilename),
	Args: cobra.NoArgs,
}
