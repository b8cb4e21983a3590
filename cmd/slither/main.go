package main

import (
	"flag"

	"github.com/golang/glog"

	"slither/internal/game"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := game.Run(); err != nil {
		glog.Exitf("slither: %v", err)
	}
}
