package appicon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/orchardapp/appicon/utils"
)

// DefaultAppName is the application whose asset catalog receives the icons.
const DefaultAppName = "Orchard"

// Ops holds the options of a generation run.
type Ops struct {
	// AppName selects the asset catalog, <BaseDir>/../<AppName>/Assets.xcassets.
	AppName string
	// BaseDir stands for the tool location. Defaults to the directory of the executable.
	BaseDir string
	// OutDir, when set, is used as is and overrides AppName and BaseDir.
	OutDir string
	// Check runs before anything is written. Defaults to Preflight.
	Check func() error
}

// OutputDir resolves the app icon set directory the icons are written to.
func (op *Ops) OutputDir() (string, error) {
	if op.OutDir != "" {
		return filepath.Clean(op.OutDir), nil
	}

	base := op.BaseDir
	if base == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("unable to locate the executable: %w", err)
		}
		if exe, err = filepath.EvalSymlinks(exe); err != nil {
			return "", fmt.Errorf("unable to resolve the executable path: %w", err)
		}
		base = filepath.Dir(exe)
	}
	return filepath.Join(base, "..", op.appName(), "Assets.xcassets", "AppIcon.appiconset"), nil
}

func (op *Ops) appName() string {
	if op.AppName == "" {
		return DefaultAppName
	}
	return op.AppName
}

// Execute generates every icon of the app icon set in order, creating the
// output directory first. It stops at the first icon which can't be written.
func (g *Generator) Execute(op *Ops) error {
	check := op.Check
	if check == nil {
		check = Preflight
	}
	if err := check(); err != nil {
		return err
	}

	dir, err := op.OutputDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create the output directory: %w", err)
	}

	out := g.stdout()
	now := time.Now()

	fmt.Fprintln(out, utils.DecorateText(
		fmt.Sprintf("Generating placeholder app icons for %s...", op.appName()), utils.StatusMessage))
	fmt.Fprintf(out, "Output directory: %s\n\n", dir)

	for _, spec := range DefaultSpecs() {
		if err := g.GenerateIcon(spec.Size, filepath.Join(dir, spec.Filename)); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, utils.DecorateText("✅ Placeholder icons generated successfully!", utils.SuccessMessage))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Your app should now build without icon errors.")
	fmt.Fprintln(out, "To create proper app icons, see the ICON_GUIDE.md file.")
	fmt.Fprintf(out, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}
