// Package report prints user-facing messages for the non-interactive
// commands
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/osutil"
)

func SessionsDeleted(n int) {
	if n == 1 {
		pterm.Success.Println("1 session deleted")
		return
	}

	pterm.Success.Printfln("%d sessions deleted", n)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
