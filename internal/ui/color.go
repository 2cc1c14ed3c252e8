// Package ui holds the colours and tables shared by the non-interactive
// commands
package ui

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

// Hex colours text with a hex colour from the config file. Invalid colours
// leave the text unstyled.
func Hex(hex string, a any) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return pterm.Sprint(a)
	}

	r, g, b := c.RGB255()

	return pterm.NewRGB(r, g, b).Sprint(a)
}
