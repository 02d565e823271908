package main

import "github.com/renshuapp/renshu/cmd"

func main() {
	cmd.Execute()
}
