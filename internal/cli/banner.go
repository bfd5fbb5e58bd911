package cli

import (
	"fmt"
	"io"

	"github.com/speclite-dev/speclite/internal/branding"
	"github.com/speclite-dev/speclite/internal/ui"
)

const bannerArt = `   _____                 __    _ __
  / ___/____  ___  _____/ /   (_) /____
  \__ \/ __ \/ _ \/ ___/ /   / / __/ _ \
 ___/ / /_/ /  __/ /__/ /___/ / /_/  __/
/____/ .___/\___/\___/_____/_/\__/\___/
    /_/                                 `

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "%s%s%s%s\n", ui.Cyan, ui.Bold, bannerArt, ui.Reset)
	fmt.Fprintf(w, "%s%s%s\n\n", ui.Dim, branding.Tagline(), ui.Reset)
}
