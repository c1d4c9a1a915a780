package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/core/attendance"
)

func (cli *commandLine) calc(total, attended int) error {
	res, err := attendance.Calculate(total, attended)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Percentage: %.2f%%\n", res.Percentage)
	fmt.Fprintf(cli.out, "Deficit: %.2f%%\n", res.Deficit)
	fmt.Fprintf(cli.out, "Required Classes: %d\n", res.RequiredClasses)
	return nil
}

func (cli *commandLine) add(name string, total, attended int) error {
	rec, err := cli.deps.AttendanceSvc.Create(context.Background(), attendance.NewRecord{
		StudentName:     name,
		TotalClasses:    total,
		AttendedClasses: attended,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s: %d/%d (%.2f%%) - %s\n",
		rec.StudentName, rec.AttendedClasses, rec.TotalClasses, rec.Percentage, rec.Status())
	return nil
}

func (cli *commandLine) history(search, ordering string) error {
	filter := attendance.QueryFilter{Search: search, Orderings: core.ParseOrderings(ordering)}
	records := cli.deps.AttendanceSvc.Query(context.Background(), filter)
	if len(records) == 0 {
		fmt.Fprintln(cli.out, "No records.")
		return nil
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTUDENT\tATTENDANCE\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d (%.2f%%)\t%s\n",
			cli.deps.AttendanceSvc.FormatDate(rec.Date), rec.StudentName,
			rec.AttendedClasses, rec.TotalClasses, rec.Percentage, rec.Status())
	}
	return tw.Flush()
}

func (cli *commandLine) export(search, output string) (err error) {
	var w io.Writer = cli.out
	if output != "" {
		f, cErr := os.Create(output)
		if cErr != nil {
			return errors.Wrap(cErr, "creating export file")
		}
		defer func() {
			if cErr := f.Close(); err == nil {
				err = cErr
			}
		}()
		w = f
	}
	return cli.deps.AttendanceSvc.Export(context.Background(), w, attendance.QueryFilter{Search: search})
}

func (cli *commandLine) clear(yes bool) error {
	if !yes {
		question := fmt.Sprintf("Delete all %d records?", cli.deps.AttendanceSvc.Count())
		if err := cli.confirm(question); err != nil {
			return err
		}
	}
	if err := cli.deps.AttendanceSvc.Clear(context.Background(), true); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "History cleared.")
	return nil
}
