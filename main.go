package main

import "github.com/km-arc/expense-share/console"

func main() {
	console.Execute()
}
