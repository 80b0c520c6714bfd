// crtime is the interactive entry point: it classifies the filesystem
// backing each given path and prints the file creation time.
package main

import (
	"fmt"
	"os"

	"github.com/hypernetix/crtime/libs/logging"
	"github.com/hypernetix/crtime/modules/crtime"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "crtime",
		Usage:     "Display creation time for files/folders on NTFS / FAT32 file systems",
		ArgsUsage: "PATH [PATH ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Display format: locale, iso, or a Go time layout",
				Value:   crtime.FormatLocale,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("need at least one command line argument: filename")
	}

	if c.Bool("verbose") {
		logging.ForceLogLevel(logging.DebugLevel)
	} else {
		logging.ForceLogLevel(logging.ErrorLevel)
	}

	format := c.String("format")

	if c.NArg() == 1 {
		return printOne(c.Args().First(), format)
	}

	return printTable(c.Args().Slice(), format)
}

func printOne(path string, format string) error {
	fs, res, errx := crtime.Get(path)
	if errx != nil {
		return errx
	}
	if res.Unsupported {
		return fmt.Errorf("unsupported filesystem (%s) for %s", fs, path)
	}

	fmt.Println(crtime.FormatInstant(res.Time, format))
	return nil
}

func printTable(paths []string, format string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Path", "Filesystem", "Created"})

	failures := 0
	for _, path := range paths {
		fs, res, errx := crtime.Get(path)
		switch {
		case errx != nil:
			failures++
			table.Append([]string{path, "?", fmt.Sprintf("error: %v", errx)})
		case res.Unsupported:
			failures++
			table.Append([]string{path, fs.String(), "unsupported filesystem"})
		default:
			table.Append([]string{path, fs.String(), crtime.FormatInstant(res.Time, format)})
		}
	}

	table.Render()

	if failures > 0 {
		return fmt.Errorf("no creation time for %d of %d paths", failures, len(paths))
	}
	return nil
}
