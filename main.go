package main

import (
	"log"

	"github.com/sednabcn/job-search-automation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
