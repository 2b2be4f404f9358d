package main

import (
	"os"

	"github.com/moralisweb3/docschat/internal/docsctl/cmd"
)

func main() {
	if err := cmd.NewDefaultDocsCtlCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
