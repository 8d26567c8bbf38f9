// Command orsolve runs the operations-research engines on JSON problem files.
//
// Usage:
//
//	orsolve simplex -f problem.json
//	orsolve transport --method vogel < transport.json
//	orsolve cpm -f project.json --format protojson
//
// Settings come from flags, ORSOLVE_* environment variables, or an
// orsolve.yaml file in the working directory or $HOME/.config/orsolve.
// glog flags (-v, --logtostderr, ...) are accepted by every command.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		glog.Errorf("orsolve: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

// markGoFlagsParsed lets glog see its flags as parsed after cobra/pflag
// has populated them.
func markGoFlagsParsed() {
	if !flag.Parsed() {
		_ = flag.CommandLine.Parse(nil)
	}
}
