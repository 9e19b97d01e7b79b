package main

import (
	"github.com/foomo/contentadmin/cmd"
)

func main() {
	cmd.Execute()
}
