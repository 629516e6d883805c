package display

import (
	"fmt"
	"io"

	"github.com/backmassage/partname/internal/term"
)

// PrintBanner prints the ASCII art banner, in magenta when colors are on.
func PrintBanner(w io.Writer, version string) {
	if term.Enabled() {
		fmt.Fprint(w, term.Magenta)
	}
	fmt.Fprint(w, `                  _
 _ __   __ _ _ __| |_ _ __   __ _ _ __ ___   ___
| '_ \ / _`+"`"+` | '__| __| '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \
| |_) | (_| | |  | |_| | | | (_| | | | | | |  __/
| .__/ \__,_|_|   \__|_| |_|\__,_|_| |_| |_|\___|
|_|
`)
	if term.Enabled() {
		fmt.Fprint(w, term.NC)
	}
	if version != "" {
		fmt.Fprintf(w, "version %s\n", version)
	}
	fmt.Fprintln(w)
}
