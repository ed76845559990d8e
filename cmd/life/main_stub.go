//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifepaint requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or build with `-tags ebiten`,")
	fmt.Fprintln(os.Stderr, "or use the terminal front end: `go run ./cmd/life-term`.")
	os.Exit(2)
}
