package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"golang.org/x/term"

	"github.com/trezcool/bunk/apps/shared"
	"github.com/trezcool/bunk/core"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp                 = errors.New("help provided")
	errConfirmationRequired = errors.New("not a terminal: pass -yes to confirm")
	errAborted              = errors.New("aborted")
)

type commandLine struct {
	conf       *core.Config
	deps       *shared.Deps // nil for commands that do not touch the store
	translator ut.Translator
	in         io.Reader
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  calc -total N -attended M                      - compute attendance without saving it")
	fmt.Fprintln(cli.out, "  add -name NAME -total N -attended M            - compute attendance and add it to the history")
	fmt.Fprintln(cli.out, "  history [-search TERM] [-ordering FIELDS]      - list the history, newest first")
	fmt.Fprintln(cli.out, "  export [-search TERM] [-o FILE]                - export the history as CSV")
	fmt.Fprintln(cli.out, "  clear [-yes]                                   - delete the whole history")
	fmt.Fprintln(cli.out, "  theme [show|toggle|on|off]                     - show or change the dark mode flag")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]                         - run SQL store migrations (up, down, status, ...)")
}

// needsStore reports whether the command in args reads or writes the store.
func needsStore(args []string) bool {
	if len(args) < 2 {
		return false
	}
	switch args[1] {
	case "add", "history", "export", "clear", "theme":
		return true
	}
	return false
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	calcCmd := flag.NewFlagSet("calc", flag.ContinueOnError)
	calcTotal := calcCmd.Int("total", 0, "Total number of classes.")
	calcAttended := calcCmd.Int("attended", 0, "Number of classes attended.")

	addCmd := flag.NewFlagSet("add", flag.ContinueOnError)
	addName := addCmd.String("name", "", "The student's name.")
	addTotal := addCmd.Int("total", 0, "Total number of classes.")
	addAttended := addCmd.Int("attended", 0, "Number of classes attended.")

	historyCmd := flag.NewFlagSet("history", flag.ContinueOnError)
	historySearch := historyCmd.String("search", "", "Only show students whose name contains TERM (case-insensitive).")
	historyOrdering := historyCmd.String("ordering", "", "Comma separated fields among date, studentName, percentage; prefix with - for descending.")

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportSearch := exportCmd.String("search", "", "Only export students whose name contains TERM (case-insensitive).")
	exportOutput := exportCmd.String("o", "", "Output file. Defaults to stdout.")

	clearCmd := flag.NewFlagSet("clear", flag.ContinueOnError)
	clearYes := clearCmd.Bool("yes", false, "Do not ask for confirmation.")

	for _, fs := range []*flag.FlagSet{calcCmd, addCmd, historyCmd, exportCmd, clearCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "calc":
		if err := calcCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if !flagIsSet(calcCmd, "total") || !flagIsSet(calcCmd, "attended") {
			calcCmd.Usage()
			return errHelp
		}
		return cli.calc(*calcTotal, *calcAttended)
	case "add":
		if err := addCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if !flagIsSet(addCmd, "total") || !flagIsSet(addCmd, "attended") {
			addCmd.Usage()
			return errHelp
		}
		return cli.add(*addName, *addTotal, *addAttended)
	case "history":
		if err := historyCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.history(*historySearch, *historyOrdering)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.export(*exportSearch, *exportOutput)
	case "clear":
		if err := clearCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.clear(*clearYes)
	case "theme":
		action := "show"
		if len(args) > 2 {
			action = args[2]
		}
		return cli.theme(action)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// confirm asks question on the terminal; anything but y/yes is a no.
func (cli *commandLine) confirm(question string) error {
	if !isTerminalFunc(int(os.Stdin.Fd())) {
		return errConfirmationRequired
	}
	fmt.Fprintf(cli.out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(cli.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	}
	return errAborted
}

// printError prints validation errors field by field.
func (cli *commandLine) printError(err error) {
	if fields, ok := core.FieldErrors(err, cli.translator); ok && len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(cli.out, "%s: %s\n", name, fields[name])
		}
		return
	}
	fmt.Fprintf(cli.out, "error: %s\n", err)
}

func flagIsSet(fs *flag.FlagSet, name string) bool {
	var found bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
