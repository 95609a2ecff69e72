// main.go
//
// disk-sched-sim entry point; subcommands (run, compare, generate, scenarios) live in cmd/

package main

import (
	"github.com/inference-sim/disk-sched-sim/cmd"
)

func main() {
	cmd.Execute()
}
