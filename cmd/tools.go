package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jaredallen/cycliccode/cmd/internal/tools/bsc/bounded"
	"github.com/jaredallen/cycliccode/cmd/internal/tools/bsc/burst"
	"github.com/jaredallen/cycliccode/cmd/internal/tools/chart"
	"github.com/jaredallen/cycliccode/cmd/internal/tools/csv"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for cyclic codes",
	Long:    `Tools for cyclic codes`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for cyclic codes`,
}

// toolsCyclicCmd represents the cyclic command
var toolsCyclicCmd = &cobra.Command{
	Use:     "cyclic",
	Aliases: []string{"cy"},
	Short:   "Cyclic code channel simulators",
	Long:    `Channel simulators for cyclic codes`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator for cyclic codes`,
}

// toolsBurstCmd represents the burst command
var toolsBurstCmd = &cobra.Command{
	Use:     "burst CODE_JSON_FILE RESULT_JSON",
	Aliases: []string{"b"},
	Short:   "A cyclic code BSC simulator with burst trapping decoding",
	Long:    `A cyclic code BSC simulator injecting error bursts and decoding with the burst trapping algorithm`,
	Run:     burst.BurstRun,
}

// toolsBoundedCmd represents the bounded command
var toolsBoundedCmd = &cobra.Command{
	Use:     "bounded CODE_JSON_FILE RESULT_JSON",
	Aliases: []string{"bd"},
	Short:   "A cyclic code BSC simulator with bounded distance decoding",
	Long:    `A cyclic code BSC simulator injecting random bit flips and decoding with the bounded distance algorithm`,
	Run:     bounded.BoundedRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML chart",
	Long:    `Export to an HTML chart`,
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsCyclicCmd)
	toolsCyclicCmd.AddCommand(toolsBscCmd)

	toolsBscCmd.AddCommand(toolsBurstCmd)
	toolsBurstCmd.Flags().UintVarP(&burst.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBurstCmd.Flags().IntSliceVarP(&burst.BurstLengths, "bursts", "b", []int{1, 2, 3, 4, 5}, "burst lengths to test")
	toolsBurstCmd.Flags().UintVarP(&burst.MaxBurst, "max", "m", 3, "the longest burst the decoder will trap")
	toolsBurstCmd.Flags().UintVar(&burst.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsBscCmd.AddCommand(toolsBoundedCmd)
	toolsBoundedCmd.Flags().UintVarP(&bounded.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBoundedCmd.Flags().Float64SliceVarP(&bounded.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50}, "probability of crossover errors to test [0, 0.5]")
	toolsBoundedCmd.Flags().UintVar(&bounded.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError or ParityError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError or MessageError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the html chart")
}
