package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/inline"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("topic", "t", "", "Only list topics fuzzy matching this title")
	listCmd.Flags().StringP("series", "s", "", "Only list series fuzzy matching this title")
	listCmd.Flags().BoolP("episodes", "E", false, "Include the episodes of every listed series")
	listCmd.Flags().StringP("select", "e", "", "Episodes to list from each series: all, first, last, 5, 2-7 or @text@")
	listCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	listCmd.Flags().BoolP("login", "l", false, "Sign in before listing")
}

// listCmd prints the catalog tree without downloading anything.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the topics, series and episodes of the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		options := inline.Options{
			Out:          cmd.OutOrStdout(),
			TopicFilter:  lo.Must(cmd.Flags().GetString("topic")),
			SeriesFilter: lo.Must(cmd.Flags().GetString("series")),
			Episodes:     lo.Must(cmd.Flags().GetBool("episodes")),
			Json:         lo.Must(cmd.Flags().GetBool("json")),
		}

		if selection := lo.Must(cmd.Flags().GetString("select")); selection != "" {
			filter, err := catalog.ParseEpisodesFilter(selection)
			handleErr(err)
			options.EpisodesFilter = mo.Some(filter)
		}

		session, err := newSession(cmd.Context(), newClient(), lo.Must(cmd.Flags().GetBool("login")))
		handleErr(err)
		options.Discoverer = session

		handleErr(inline.Run(cmd.Context(), &options))
	},
}

func init() {
	listCmd.AddCommand(listSchemaCmd)
}

// listSchemaCmd prints the JSON schema of the list output.
var listSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the list output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "topic", "series", "episode", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
