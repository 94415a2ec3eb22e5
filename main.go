package main

import "github.com/Rorical/RoriPersons/cmd"

func main() {
	cmd.Execute()
}
