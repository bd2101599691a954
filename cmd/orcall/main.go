package main

import "github.com/chriscorrea/orcall/internal/cmd"

func main() {
	cmd.Execute()
}
