package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wippyai/tracedecode/fixture"
	"github.com/wippyai/tracedecode/memory"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] scenario_file",
	Short: "Decode every call of a scenario.",
	Long: `Decode the calls of a scenario and print one line per call.
	Calls with an expect field are checked; any mismatch makes the command
	fail after all calls are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, _ := cmd.Flags().GetInt("pid")
		wasmPath, _ := cmd.Flags().GetString("wasm")
		color, _ := cmd.Flags().GetString("color")
		showReads, _ := cmd.Flags().GetBool("show-reads")
		ifnames, _ := cmd.Flags().GetBool("ifnames")

		sink, err := newLineSink(color)
		if err != nil {
			return err
		}
		f, err := fixture.Load(args[0], nil)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		subj, err := openSubject(ctx, f, pid, wasmPath, ifnames)
		if err != nil {
			return err
		}
		defer subj.Close(ctx)

		rec := memory.NewRecorder(subj.mem)
		failed := runCalls(cmd.OutOrStdout(), f, fixture.NewRunner(f, rec), rec, sink, showReads)
		if failed > 0 {
			return fmt.Errorf("%d of %d calls did not match their expectation", failed, len(f.Calls))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().Int("pid", 0, "decode against the memory of this live process")
	runCmd.Flags().String("wasm", "", "decode against the memory of this WebAssembly module")
	runCmd.Flags().String("color", "auto", "colorize output: auto, always or never")
	runCmd.Flags().Bool("show-reads", false, "list the memory reads made for each call")
	runCmd.Flags().Bool("ifnames", false, "resolve interface indexes against this host")
	runCmd.MarkFlagsMutuallyExclusive("pid", "wasm")
	rootCmd.AddCommand(runCmd)
}

// runCalls prints one line per call and returns the number of failed
// expectations.
func runCalls(out io.Writer, f *fixture.Fixture, r *fixture.Runner, rec *memory.Recorder, sink lineSink, showReads bool) int {
	failed := 0
	for _, c := range f.Calls {
		sink.Reset()
		rec.Reset()

		o := r.Run(c, sink)
		fmt.Fprintln(out, sink.String())
		if showReads {
			for _, rd := range rec.Reads() {
				fmt.Fprintf(out, "    read %#x len %d: got %d (%s)\n", rd.Addr, rd.Length, rd.Got, rd.Status)
			}
		}
		if !o.Match {
			failed++
			fmt.Fprintf(out, "    expected %s\n", *c.Expect)
		}
	}
	return failed
}
