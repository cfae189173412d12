// Command svd-encode renders a YAML description of device peripherals as
// CMSIS-SVD markup.
//
// Usage:
//
//	svd-encode [-c config.yaml] [-o out.xml] model.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
