//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/markkurossi/icm/icm"
)

var costCmd = &cobra.Command{
	Use:   "cost [flags] circuit.qasm",
	Short: "estimate the ancilla cost of the ICM rewrite",
	Long: `Estimate the number of ancilla qubits the ICM rewrite would
insert, per gate kind, without performing the rewrite.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cmd.Usage()
			os.Exit(1)
		}
		setup(cmd)

		qc, err := loadCircuit(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		cost, total, err := icm.AncillaCost(qc)
		if err != nil {
			fatalf("cost: %v", err)
		}

		tab := tabulate.New(tabulate.UnicodeLight)
		tab.Header("Gate").SetAlign(tabulate.ML)
		tab.Header("Ancillae").SetAlign(tabulate.MR)

		for _, kind := range []string{"P", "V", "T", "SNOT", "TOFFOLI"} {
			row := tab.Row()
			row.Column(kind)
			row.Column(strconv.Itoa(cost[kind]))
		}
		row := tab.Row()
		row.Column("Total").SetFormat(tabulate.FmtBold)
		row.Column(strconv.Itoa(cost.Ancillae())).SetFormat(tabulate.FmtBold)
		tab.Print(os.Stdout)

		fmt.Printf("qubits: %d circuit + %d ancillae = %d\n",
			qc.N, cost.Ancillae(), total)
		fmt.Printf("fingerprint: %s\n", qc.Fingerprint())
	},
}

func init() {
	rootCmd.AddCommand(costCmd)
}
