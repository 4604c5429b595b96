package main

import (
	"log"

	"BattleFS/bootstrap"

	"github.com/spf13/pflag"
)

func main() {
	pflag.Parse()
	if _, err := bootstrap.Run(); err != nil {
		log.Fatalf("BattleFS: %v", err)
	}
}
