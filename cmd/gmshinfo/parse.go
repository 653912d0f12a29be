/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package gmshinfo

import (
	"fmt"
	"os"

	gmsh41 "github.com/gmsh41/meshparser"
	"github.com/spf13/cobra"
)

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a Gmsh MSH 4.1 file and print a summary",
	Long:  `parse reads a Gmsh MSH 4.1 ASCII mesh file and prints its section counts, bounding box, and any accumulated warnings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			panic(err)
		}
		opts := loadParserOptions()

		mesh, err := gmsh41.ParseWithOptions(args[0], opts.gmsh41Options())
		if err != nil {
			fmt.Fprintln(os.Stderr, "gmshinfo: parse failed:", err)
			os.Exit(1)
		}

		switch format {
		case "yaml":
			if err := mesh.PrintSummaryYAML(os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, "gmshinfo: rendering summary:", err)
				os.Exit(1)
			}
		case "text", "":
			mesh.PrintSummary(os.Stdout)
		default:
			fmt.Fprintf(os.Stderr, "gmshinfo: unknown --format %q, expected \"text\" or \"yaml\"\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ParseCmd)
	ParseCmd.Flags().StringP("format", "f", "text", "output format: text or yaml")
}
