package main

import (
	"github.com/lehigh-university-libraries/grobidmeta/cmd"
)

func main() {
	cmd.Execute()
}
