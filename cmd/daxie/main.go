// Command daxie converts monetary amounts between minor units, grouped
// decimal strings and capitalized Chinese numerals, either once from the
// command line or as an HTTP service.
//
// Usage:
//
//	daxie render <amount>...
//	daxie minor <major>...
//	daxie major <minor>...
//	daxie group <amount>...
//	daxie serve [-config path]
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
