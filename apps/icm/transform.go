//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/markkurossi/icm/icm"
)

var transformCmd = &cobra.Command{
	Use:   "transform [flags] circuit.qasm",
	Short: "convert a circuit into ICM form",
	Long: `Convert the input circuit into the ICM form and write the
flattened circuit record as JSON. The record lists the qubits,
inputs, outputs, ancilla initializations, measurements, and the CNOT
network.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cmd.Usage()
			os.Exit(1)
		}
		setup(cmd)
		output, _ := cmd.Flags().GetString("out")
		dotFile, _ := cmd.Flags().GetString("dot")
		staged, _ := cmd.Flags().GetBool("staged")
		dump, _ := cmd.Flags().GetBool("dump")

		qc, err := loadCircuit(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		result, err := icm.Transform(qc)
		if err != nil {
			fatalf("transform: %v", err)
		}
		if staged {
			result = icm.Staged(result)
		}
		if len(dotFile) > 0 {
			f, err := os.Create(dotFile)
			if err != nil {
				fatalf("%v", err)
			}
			result.Dot(f)
			f.Close()
		}

		out, done, err := openOutput(output)
		if err != nil {
			fatalf("%v", err)
		}
		defer done()

		if dump {
			result.Dump(out)
			return
		}
		err = icm.WriteJSON(out, icm.Flatten(result))
		if err != nil {
			fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringP("out", "o", "", "output file")
	transformCmd.Flags().String("dot", "", "write graphviz output to file")
	transformCmd.Flags().Bool("staged", false,
		"group gates into rendering stages")
	transformCmd.Flags().Bool("dump", false,
		"print a gate listing instead of JSON")
}
