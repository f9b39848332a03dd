package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jaredallen/cycliccode/cmd/internal/create/cycliccode"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new code",
	Long:    `create provides the ability to make a new cyclic code and save it so it can be used later by the tools.`,
}

// createCyclicCmd represents the cyclic command
var createCyclicCmd = &cobra.Command{
	Use:     "cyclic OUTPUT_CODE_JSON",
	Aliases: []string{"cy"},
	Short:   "Creates a new cyclic code from a generator polynomial",
	Long: `Creates a new cyclic code from a generator polynomial. The polynomial is
given as a binary string with the highest degree coefficient first, and it
must divide x^n-1 for the chosen code length n.`,
	Args: cobra.ExactArgs(1),
	Run:  cycliccode.CyclicRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createCyclicCmd)
	createCyclicCmd.Flags().StringVarP(&cycliccode.Generator, "poly", "p", "1011", "the generator polynomial as a binary string (highest degree first)")
	createCyclicCmd.Flags().UintVarP(&cycliccode.Length, "length", "n", 7, "the codeword length in bits (at most 24)")
	createCyclicCmd.Flags().UintVarP(&cycliccode.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	createCyclicCmd.Flags().BoolVarP(&cycliccode.Verbose, "verbose", "v", false, "enable verbose info")
}
