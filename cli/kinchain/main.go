// Package main is the kinchain command itself.
package main

import (
	"log"
	"os"

	kinchaincli "go.viam.com/kinchain/cli"
)

func main() {
	if err := kinchaincli.NewApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
