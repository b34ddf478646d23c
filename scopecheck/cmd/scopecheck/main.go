// Command scopecheck is a linter that checks scope guard and block
// usage in code built on the scoped package.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/go-theft-auto/scoped/scopecheck"
)

func main() {
	singlechecker.Main(scopecheck.Analyzer)
}
