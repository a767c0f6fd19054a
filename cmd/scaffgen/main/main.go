package main

import (
	"fmt"
	"os"

	scaffgen "github.com/arthur-debert/scaffgen/cmd/scaffgen"
	"github.com/arthur-debert/scaffgen/pkg/ui/styles"
)

func main() {
	rootCmd := scaffgen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
