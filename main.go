package main

import "github.com/kgrieve/sudoku/cmd"

func main() {
	cmd.Execute()
}
