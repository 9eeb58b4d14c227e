package main

import "github.com/planszokwariat/ERGONOMIA7/cmd/ergo/root"

func main() {
	root.Execute()
}
