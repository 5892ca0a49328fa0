package main

import "github.com/oureatools/ourea/cmd"

func main() {
	cmd.Execute()
}
