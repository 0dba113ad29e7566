// Command staticlint runs the analyzers this repository is checked with.
//
// Usage:
//
//	go build -o staticlint ./cmd/staticlint
//	./staticlint ./...
//
// Included:
//   - vet passes from golang.org/x/tools that apply to HTTP and concurrent code
//     (httpresponse, lostcancel, loopclosure, copylock, errorsas, printf, shadow, ...);
//   - every staticcheck SA* check;
//   - stylecheck ST1000 (package comment) and ST1005 (error string format);
//   - bodyclose: every http.Response.Body is closed;
//   - nilerr: no nil return from an `if err != nil` branch;
//   - nostdlog: library packages log through zap, not package log.
package main

import (
	"strings"

	"github.com/and161185/line-insight/internal/analyzers/nostdlog"
	"github.com/gostaticanalysis/nilerr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

var styleChecks = map[string]bool{
	"ST1000": true,
	"ST1005": true,
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		assign.Analyzer, atomic.Analyzer, bools.Analyzer, composite.Analyzer,
		copylock.Analyzer, errorsas.Analyzer, httpresponse.Analyzer, ifaceassert.Analyzer,
		loopclosure.Analyzer, lostcancel.Analyzer, nilfunc.Analyzer, printf.Analyzer,
		shadow.Analyzer, sigchanyzer.Analyzer, stdmethods.Analyzer, structtag.Analyzer,
		tests.Analyzer, unmarshal.Analyzer, unreachable.Analyzer, unusedresult.Analyzer,

		bodyclose.Analyzer,
		nilerr.Analyzer,
		nostdlog.Analyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}
	for _, a := range stylecheck.Analyzers {
		if styleChecks[a.Analyzer.Name] {
			list = append(list, a.Analyzer)
		}
	}
	return list
}

func main() {
	multichecker.Main(analyzers()...)
}
