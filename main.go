package main

import "github.com/turbolytics/salesreport/internal/cmd"

func main() {
	cmd.Execute()
}
