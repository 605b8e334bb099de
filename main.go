package main

import "docxnorm/cmd"

func main() {
	cmd.Execute()
}
