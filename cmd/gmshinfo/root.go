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
	"strings"

	gmsh41 "github.com/gmsh41/meshparser"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// ParserOptions holds the settings gmshinfo reads from --config, via
// viper the way InputParameters elsewhere in this codebase are read via
// ghodss/yaml, but bound through viper.Unmarshal instead.
type ParserOptions struct {
	StrictMode      bool `mapstructure:"strictMode"`
	WarnOnNoPhysNam bool `mapstructure:"warnOnMissingPhysicalName"`
}

// gmsh41Options converts the config-file shape into gmsh41.ParseOptions.
func (o ParserOptions) gmsh41Options() gmsh41.ParseOptions {
	return gmsh41.ParseOptions{
		StrictMode:                o.StrictMode,
		WarnOnMissingPhysicalName: o.WarnOnNoPhysNam,
	}
}

var rootCmd = &cobra.Command{
	Use:   "gmshinfo",
	Short: "Inspect Gmsh MSH 4.1 mesh files",
	Long:  `gmshinfo parses a Gmsh MSH 4.1 ASCII mesh file and prints a summary of its contents.`,
}

// Execute runs the root command; called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gmshinfo.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		expanded, err := homedir.Expand(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gmshinfo: could not expand --config path:", err)
			os.Exit(1)
		}
		viper.SetConfigFile(expanded)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "gmshinfo:", err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gmshinfo")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "gmshinfo: using config file:", viper.ConfigFileUsed())
	}
}

func loadParserOptions() ParserOptions {
	opts := ParserOptions{StrictMode: false, WarnOnNoPhysNam: true}
	_ = viper.Unmarshal(&opts)
	return opts
}
