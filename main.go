package main

import (
	"log"

	tendermint "github.com/crossline-labs/crossline-relayer/chains/tendermint/module"
	"github.com/crossline-labs/crossline-relayer/cmd"
)

func main() {
	if err := cmd.Execute(
		tendermint.Module{},
	); err != nil {
		log.Fatal(err)
	}
}
