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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/markkurossi/icm/icm"
	"github.com/markkurossi/icm/icm/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph [flags] circuit.qasm",
	Short: "build and reduce the ICM resource graph",
	Long: `Convert the input circuit into ICM form, build its resource
graph, optionally apply the reduction passes, and write the graph as
graphviz dot output.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cmd.Usage()
			os.Exit(1)
		}
		setup(cmd)
		output, _ := cmd.Flags().GetString("out")
		merge, _ := cmd.Flags().GetBool("merge")
		teleport, _ := cmd.Flags().GetInt("teleport")
		loop2, _ := cmd.Flags().GetString("loop2")
		loop3, _ := cmd.Flags().GetString("loop3")

		qc, err := loadCircuit(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		result, err := icm.Transform(qc)
		if err != nil {
			fatalf("transform: %v", err)
		}
		g := graph.Build(result)
		log.Debugf("resource graph: %s", g)

		if merge {
			graph.Merge(g, result)
			log.Debugf("after merge: %s", g)
		}
		if teleport > 0 {
			count := graph.EliminateTeleportations(g, teleport)
			log.Debugf("eliminated %d teleportations: %s", count, g)
		}
		if len(loop2) > 0 {
			opt1, opt2, err := parseOpts(loop2)
			if err != nil {
				fatalf("--loop2: %v", err)
			}
			if !graph.ReduceTwoLoop(g, opt1, opt2) {
				fmt.Fprintf(os.Stderr, "two-loop reduction: no change\n")
			}
		}
		if len(loop3) > 0 {
			opt1, opt2, err := parseOpts(loop3)
			if err != nil {
				fatalf("--loop3: %v", err)
			}
			if !graph.ReduceThreeLoop(g, opt1, opt2) {
				fmt.Fprintf(os.Stderr, "three-loop reduction: no change\n")
			}
		}

		out, done, err := openOutput(output)
		if err != nil {
			fatalf("%v", err)
		}
		defer done()
		g.Dot(out)
	},
}

// parseOpts parses an "opt1,opt2" candidate selector pair.
func parseOpts(arg string) (int, int, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid selector %q", arg)
	}
	opt1, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	opt2, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return opt1, opt2, nil
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("out", "o", "", "output file")
	graphCmd.Flags().Bool("merge", false, "apply merge contraction")
	graphCmd.Flags().Int("teleport", 0,
		"eliminate up to N teleportation leaves")
	graphCmd.Flags().String("loop2", "",
		"apply one two-loop reduction step with selector opt1,opt2")
	graphCmd.Flags().String("loop3", "",
		"apply one three-loop reduction step with selector opt1,opt2")
}
