// main is the entry point for the habitsense CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Zak-aden1/ai-journal-sub003/cmd"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
)

func main() {
	err := cmd.Execute()
	habitstore.CloseStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
