package main

import "github.com/Sulfuro25/QuranReviser-sub000/cmd"

func main() {
	cmd.Execute()
}
