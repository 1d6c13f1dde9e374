/*
Package appicon generates placeholder application icons: a blue square with a darker border
and a short centered label, rendered at every size a macOS app icon set needs.

The package comes with a command line tool which writes the icons into the asset catalog of
the application. To check the supported flags type:

	$ appicon --help

The generator can also be used directly:

	package main

	import (
		"fmt"
		"github.com/orchardapp/appicon"
	)

	func main() {
		g := appicon.NewGenerator()

		if err := g.GenerateIcon(256, "icon_256x256.png"); err != nil {
			fmt.Printf("Error generating the icon: %s", err.Error())
		}
	}
*/
package appicon
