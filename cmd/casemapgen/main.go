// casemapgen compiles Unicode case mapping tables into Go source or binary
// artifacts and inspects them.
package main

import (
	"os"

	"github.com/npillmayer/casemapping/cmd/casemapgen/command"
)

func main() {
	if err := command.Main().Execute(); err != nil {
		os.Exit(1)
	}
}
