// chemtools - chemistry and mass spectrometry toolkit
package main

import (
	"fmt"
	"os"

	"github.com/ChrisMcGann/chemtools/cmd/chemtools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
