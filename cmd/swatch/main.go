// swatch - a colour harmony palette generator
//
// swatch builds complementary, analogous, triadic, monochromatic, tetradic and
// split-complementary palettes from a base colour, checks WCAG contrast and
// exports palettes as stylesheets, images and data files.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
