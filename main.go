/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/10thony/campaignion-engine/cmd"

func main() {
	cmd.Execute()
}
