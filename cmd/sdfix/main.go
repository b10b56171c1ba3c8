package main

import (
	"fmt"
	"os"

	"github.com/chemtab-labs/sdfix-cli/internal/adapters/driven/chem"
	configfile "github.com/chemtab-labs/sdfix-cli/internal/adapters/driven/config/file"
	"github.com/chemtab-labs/sdfix-cli/internal/adapters/driven/inchi"
	sourcefile "github.com/chemtab-labs/sdfix-cli/internal/adapters/driven/source/file"
	writerfile "github.com/chemtab-labs/sdfix-cli/internal/adapters/driven/writer/file"
	"github.com/chemtab-labs/sdfix-cli/internal/adapters/driving/cli"
	"github.com/chemtab-labs/sdfix-cli/internal/core/services"
)

func main() {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	converter := services.NewConverter(
		sourcefile.New(),
		chem.New(),
		services.NewRepairer(inchi.New()),
		writerfile.New(),
	)

	if err := cli.Execute(converter, configStore); err != nil {
		os.Exit(1)
	}
}
