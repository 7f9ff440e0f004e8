package main

import (
	"fmt"
	"os"

	"github.com/gbfwtest/gpiocert/internal/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(model.ExitCodeFor(err))
	}
}
