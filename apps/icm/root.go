//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/markkurossi/icm/circuit"
)

var rootCmd = &cobra.Command{
	Use:   "icm",
	Short: "ICM circuit rewriting toolbox",
	Long: `Convert gate-level quantum circuits into the
initialization-CNOT-measurement (ICM) form, estimate their ancilla
cost, and reduce their resource graphs.`,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"increase logging verbosity")
}

func setup(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// loadCircuit reads and parses the OpenQASM input file.
func loadCircuit(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := circuit.ParseQASM(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// openOutput opens the output file, or stdout when the path is empty.
func openOutput(path string) (*os.File, func(), error) {
	if len(path) == 0 {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func fatalf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
