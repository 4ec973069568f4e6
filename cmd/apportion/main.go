// Command apportion distributes a value across weighted slots from the
// command line and prints the shares as YAML.
//
// Usage:
//
//	apportion distribute --value 100 --kind int32 --weights 3,1,1
//	apportion distribute --value 19.99 --kind decimal --count 4 --config apportion.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
