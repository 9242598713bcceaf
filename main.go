package main

import "github.com/theirongolddev/sipdash/cmd"

func main() {
	cmd.Execute()
}
