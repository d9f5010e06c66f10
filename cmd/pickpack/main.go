// pickpack places the devices of an order in a shipping box and emits the
// pick order a robot cell follows to load it.
//
// Build:
//   go build -o pickpack ./cmd/pickpack
//
// Cross-compile:
//   GOOS=linux   GOARCH=arm64 go build -o pickpack-arm64 ./cmd/pickpack
//   GOOS=windows GOARCH=amd64 go build -o pickpack.exe ./cmd/pickpack

package main

import "github.com/piwi3910/PickPack/internal/cli"

func main() {
	cli.Execute()
}
