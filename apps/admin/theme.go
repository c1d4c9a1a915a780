package main

import (
	"context"
	"fmt"

	"github.com/trezcool/bunk/core/theme"
)

func (cli *commandLine) theme(action string) error {
	ctx := context.Background()
	svc := cli.deps.ThemeSvc

	var (
		th  theme.Theme
		err error
	)
	switch action {
	case "show":
		th = svc.Get()
	case "toggle":
		th, err = svc.Toggle(ctx)
	case "on":
		th, err = svc.Set(ctx, true)
	case "off":
		th, err = svc.Set(ctx, false)
	default:
		cli.printUsage()
		return errHelp
	}
	if err != nil {
		return err
	}

	mode := "light"
	if th.DarkMode {
		mode = "dark"
	}
	fmt.Fprintf(cli.out, "Theme: %s\n", mode)
	return nil
}
