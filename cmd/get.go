package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vkgrab-cli/vkgrab/filesystem"
	"github.com/vkgrab-cli/vkgrab/inline"
	"github.com/vkgrab-cli/vkgrab/vk"
)

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	getCmd.Flags().StringP("quality", "q", "", "Select a single variant by its quality label (e.g. mp4_720)")
	getCmd.Flags().StringP("output", "o", "", "Download the selected variant to the given file or directory")
	getCmd.Flags().StringP("write-to", "w", "", "Write the printed output to a file instead of stdout")
}

// getCmd resolves a video url in non-interactive, scriptable mode.
var getCmd = &cobra.Command{
	Use:   "get [url]",
	Short: "Resolve a video url and print its direct download links",
	Long: `Resolve a video url in non-interactive mode.

Prints every discovered variant with its probed size, or a single one
when --quality is given. With --output the variant is downloaded
instead; when several qualities exist and --quality is not set, an
interactive picker is shown.`,
	Example: "vkgrab get https://vk.com/video-1_2 --json",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err    error
			writer io.Writer = os.Stdout
		)

		if writeTo := lo.Must(cmd.Flags().GetString("write-to")); writeTo != "" {
			writer, err = filesystem.API().Create(writeTo)
			handleErr(err)
		}

		options := &inline.Options{
			URL:     args[0],
			Client:  vk.New(credentialsFlag(cmd)),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Quality: lo.Must(cmd.Flags().GetString("quality")),
			Output:  lo.Must(cmd.Flags().GetString("output")),
			Out:     writer,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	getCmd.AddCommand(getSchemaCmd)
}

// getSchemaCmd generates the JSON schema for the structured get output.
var getSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured output of get",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "variant", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
