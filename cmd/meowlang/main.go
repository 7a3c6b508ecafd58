// Command meowlang runs a MeowLang script:
//
//	meowlang hello.miaou
//
// Any pipeline failure prints the rendered diagnostic on stderr and
// exits 1.
package main

import (
	"fmt"
	"os"

	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	meow "github.com/meowlang/meow"
)

const banner = `🐱 MeowLang - Un langage élégant, félin et francophone

Usage: meowlang <fichier.miaou>

Exemple:
  meowlang hello.miaou`

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "meowlang <fichier.miaou>",
		Short:         "Interprète MeowLang",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%s", banner)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				if err := loggo.ConfigureLoggers("meow=TRACE"); err != nil {
					return err
				}
			}
			return meow.RunFile(args[0])
		},
	}

	rootCmd.Flags().BoolVar(&debug, "debug", false, "active les traces de l'interpréteur")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
