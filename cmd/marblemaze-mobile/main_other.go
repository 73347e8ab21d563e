//go:build !android && !ios

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "marblemaze-mobile targets Android and iOS; build it with gomobile.")
	fmt.Fprintln(os.Stderr, "Use 'marblemaze play' to play in a terminal.")
	os.Exit(1)
}
