// Tonal - an OKLCH palette and theme generator
//
// Tonal generates perceptually even colour palettes, resolves theme presets
// into role colours and certifies their text contrast.
package main

import "github.com/jmylchreest/tonal/internal/cli"

func main() {
	cli.Execute()
}
