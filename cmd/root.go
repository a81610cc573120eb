// Package cmd implements the command-line interface for vkgrab.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vkgrab-cli/vkgrab/auth"
	"github.com/vkgrab-cli/vkgrab/color"
	"github.com/vkgrab-cli/vkgrab/constant"
	"github.com/vkgrab-cli/vkgrab/icon"
	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/log"
	"github.com/vkgrab-cli/vkgrab/style"
	"github.com/vkgrab-cli/vkgrab/tui"
	"github.com/vkgrab-cli/vkgrab/util"
	"github.com/vkgrab-cli/vkgrab/version"
	"github.com/vkgrab-cli/vkgrab/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("cookies", "c", "", "Raw cookie header to authenticate the session with")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Cleanup of stale temporary files on startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the vkgrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Vkgrab,
	Short: "A command-line interface for grabbing direct links to VK videos",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A command-line interface for grabbing direct links to VK videos"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Credentials: credentialsFlag(cmd),
		}

		if len(args) == 1 {
			options.URL = args[0]
		}

		handleErr(tui.Run(&options))
	},
}

// credentialsFlag parses the --cookies flag into session credentials.
func credentialsFlag(cmd *cobra.Command) auth.Credentials {
	raw, _ := cmd.Flags().GetString("cookies")
	if raw == "" {
		return nil
	}

	return auth.ParseCookies(raw)
}

// Execute initializes child command routing and processes the CLI entry
// point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
