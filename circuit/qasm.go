//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	paramPattern = `-?(?:\d+(?:\.\d+)?\s*\*\s*)?(?:pi(?:\s*/\s*\d+(?:\.\d+)?)?|\d+(?:\.\d+)?)`

	qregRegex       = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\];?$`)
	cregRegex       = regexp.MustCompile(`^creg\s+(\w+)\[(\d+)\];?$`)
	singleRegex     = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	paramRegex      = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeQubitRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex    = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*(\w+)\[(\d+)\];?$`)
)

// singleQubitOps maps QASM gate names to single-qubit operations.
var singleQubitOps = map[string]Op{
	"h":   SNOT,
	"x":   X,
	"y":   Y,
	"z":   Z,
	"s":   S,
	"sdg": SDG,
	"t":   T,
	"tdg": TDG,
}

// ParseQASM parses an OpenQASM 2.0 subset and builds the circuit
// from it. The subset covers the gate vocabulary the resolver
// understands: h, x, y, z, s, sdg, t, tdg, rx, ry, rz, cx, cz, swap,
// ccx, and measure.
func ParseQASM(source string) (*Circuit, error) {
	c := New(0)

	for lineno, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") ||
			strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "barrier") {
			continue
		}
		if m := qregRegex.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[2])
			c.N = n
			continue
		}
		if cregRegex.MatchString(line) {
			continue
		}
		if m := measureRegex.FindStringSubmatch(line); m != nil {
			target, _ := strconv.Atoi(m[1])
			c.Add(Gate{
				Op:      MEASURE,
				Targets: []int{target},
				Basis:   "z",
				Role:    RoleMeasurement,
			})
			continue
		}
		if m := threeQubitRegex.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(m[1])
			c1, _ := strconv.Atoi(m[2])
			c2, _ := strconv.Atoi(m[3])
			t, _ := strconv.Atoi(m[4])
			if name != "ccx" && name != "toffoli" {
				return nil, fmt.Errorf("%d: unknown gate %q", lineno+1, m[1])
			}
			c.AddGate(TOFFOLI, []int{t}, []int{c1, c2})
			continue
		}
		if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(m[1])
			q1, _ := strconv.Atoi(m[2])
			q2, _ := strconv.Atoi(m[3])
			switch name {
			case "cx", "cnot":
				c.AddGate(CNOT, []int{q2}, []int{q1})
			case "cz":
				c.AddGate(CZ, []int{q2}, []int{q1})
			case "swap":
				c.AddGate(SWAP, []int{q1, q2}, nil)
			default:
				return nil, fmt.Errorf("%d: unknown gate %q", lineno+1, m[1])
			}
			continue
		}
		if m := paramRegex.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(m[1])
			target, _ := strconv.Atoi(m[3])
			value, err := parseParamExpr(m[2])
			if err != nil {
				return nil, fmt.Errorf("%d: %v", lineno+1, err)
			}
			switch name {
			case "rx":
				c.AddRotation(RX, target, value)
			case "ry":
				c.AddRotation(RY, target, value)
			case "rz":
				c.AddRotation(RZ, target, value)
			default:
				return nil, fmt.Errorf("%d: unknown gate %q", lineno+1, m[1])
			}
			continue
		}
		if m := singleRegex.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(m[1])
			target, _ := strconv.Atoi(m[2])
			op, ok := singleQubitOps[name]
			if !ok {
				return nil, fmt.Errorf("%d: unknown gate %q", lineno+1, m[1])
			}
			c.AddGate(op, []int{target}, nil)
			continue
		}
		return nil, fmt.Errorf("%d: syntax error: %s", lineno+1, line)
	}

	// The register declaration can undercount when gates reference
	// higher qubit indices.
	for _, g := range c.Gates {
		for _, q := range g.Qubits() {
			if q >= c.N {
				c.N = q + 1
			}
		}
	}
	return c, nil
}

// parseParamExpr parses a rotation parameter expression: a decimal
// number, pi, pi/N, or M*pi variants, optionally negated.
func parseParamExpr(expr string) (float64, error) {
	expr = strings.ReplaceAll(expr, " ", "")

	sign := 1.0
	if strings.HasPrefix(expr, "-") {
		sign = -1.0
		expr = expr[1:]
	}

	factor := 1.0
	if idx := strings.Index(expr, "*"); idx >= 0 {
		f, err := strconv.ParseFloat(expr[:idx], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid parameter %q", expr)
		}
		factor = f
		expr = expr[idx+1:]
	}

	if strings.HasPrefix(expr, "pi") {
		value := math.Pi
		rest := expr[2:]
		if strings.HasPrefix(rest, "/") {
			d, err := strconv.ParseFloat(rest[1:], 64)
			if err != nil || d == 0 {
				return 0, fmt.Errorf("invalid parameter %q", expr)
			}
			value /= d
		} else if len(rest) > 0 {
			return 0, fmt.Errorf("invalid parameter %q", expr)
		}
		return sign * factor * value, nil
	}

	value, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %q", expr)
	}
	return sign * factor * value, nil
}
