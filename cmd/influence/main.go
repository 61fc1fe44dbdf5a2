// Command influence computes influence indices of a network file.
//
//	influence run                       full report for the embedded sample
//	influence -n net.yaml cumulative IN OUT
//	influence analytical
//	influence classify --write labelled.yaml
//	influence show nodes|edges|stats|component CAT
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
