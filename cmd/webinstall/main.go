package main

import (
	"github.com/AvengeMedia/webinstall/internal/log"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
