package main

import (
	"glowup-diaries/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
