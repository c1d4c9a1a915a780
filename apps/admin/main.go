package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trezcool/bunk/apps/shared"
	"github.com/trezcool/bunk/core"
)

func main() {
	conf := core.NewConfig()
	logger := shared.NewLogger(conf, "ADMIN : ")

	// start CLI
	cli := commandLine{
		conf: conf,
		in:   os.Stdin,
		out:  os.Stdout,
	}
	if needsStore(os.Args) {
		deps, err := shared.Setup(context.Background(), conf, logger)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up dependencies: %v", err), err)
		}
		cli.deps = deps
		cli.translator = deps.Translator
	} else {
		_, cli.translator = shared.NewValidator()
	}

	err := cli.run(os.Args)
	if cli.deps != nil {
		if cErr := cli.deps.Close(); cErr != nil {
			logger.Error("failed to close store", cErr)
		}
	}
	if err != nil {
		if err != errHelp {
			cli.printError(err)
		}
		os.Exit(1)
	}
}
