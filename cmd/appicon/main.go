package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/orchardapp/appicon"
	"github.com/orchardapp/appicon/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┬┌─┐┌─┐┌┐┌
├─┤├─┘├─┘││  │ ││││
┴ ┴┴  ┴  ┴└─┘└─┘┘└┘

Placeholder app icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, appicon.Preflight))
}

// run executes the command with the given arguments and returns the process exit code.
// check is run before anything is written to disk.
func run(args []string, stdout, stderr io.Writer, check func() error) int {
	logger := log.New(stderr, "", 0)

	flags := flag.NewFlagSet("appicon", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		flags.PrintDefaults()
	}

	var (
		appName     = flags.String("app", appicon.DefaultAppName, "Application name of the asset catalog")
		baseDir     = flags.String("dir", "", "Base directory (defaults to the executable directory)")
		destination = flags.String("out", "", "Output directory, overrides -app and -dir")
		fontPath    = flags.String("font", "", "Font file tried before the system fonts")
		showVersion = flags.Bool("version", false, "Print the version and exit")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	if f, ok := stdout.(*os.File); ok {
		utils.ColorizeFor(f.Fd())
	}

	gen := appicon.NewGenerator()
	gen.Stdout = stdout
	if *fontPath != "" {
		gen.FontPaths = append([]string{*fontPath}, gen.FontPaths...)
	}

	err := gen.Execute(&appicon.Ops{
		AppName: *appName,
		BaseDir: *baseDir,
		OutDir:  *destination,
		Check:   check,
	})
	if errors.Is(err, appicon.ErrMissingCodec) {
		fmt.Fprintln(stdout, utils.DecorateText("Error: PNG image support is required.", utils.ErrorMessage))
		fmt.Fprintln(stdout, "Rebuild the tool with: go install github.com/orchardapp/appicon/cmd/appicon@latest")
		return 1
	}
	if err != nil {
		logger.Printf("%s %s",
			utils.DecorateText("Error generating the icons:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return 1
	}
	return 0
}
