package main

import (
	"embed"
	"log"

	"github.com/hcstnb2047/lvdash/internal/cli"
)

//go:embed catalog/*.json
var embeddedCatalog embed.FS

func main() {
	data, err := embeddedCatalog.ReadFile("catalog/workflows.json")
	if err != nil {
		log.Fatalln(err)
	}

	cli.Execute(data)
}
