// Package main boots the warehouse inventory simulator CLI.
package main

import "github.com/fairyhunter13/warehouse-inventory-simulator/internal/cli"

func main() {
	cli.Execute()
}
