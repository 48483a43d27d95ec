package main

import "github.com/aegistudio/go-timebridge/cmd/timebridge/cmd"

func main() {
	cmd.Execute()
}
