//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Command icm converts quantum circuits into the
// initialization-CNOT-measurement form and reports on their
// fault-tolerant resource usage.
package main

func main() {
	Execute()
}
