// Package nostdlog implements an analyzer forbidding the standard log package
// outside of package main.
package nostdlog

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer reports calls into package log from library code. Library packages
// receive a *zap.SugaredLogger and must log through it.
var Analyzer = &analysis.Analyzer{
	Name: "nostdlog",
	Doc:  "forbid calls to the standard log package outside package main",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || pass.Pkg.Name() == "main" {
		return nil, nil
	}

	for _, f := range pass.Files {
		fn := pass.Fset.Position(f.Pos()).Filename
		if strings.HasSuffix(fn, "_test.go") || ast.IsGenerated(f) {
			continue
		}

		ast.Inspect(f, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			obj, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
			if !ok || obj.Pkg() == nil || obj.Pkg().Path() != "log" {
				return true
			}
			if sig, ok := obj.Type().(*types.Signature); ok && sig.Recv() != nil {
				return true
			}
			pass.Reportf(call.Pos(), "use the zap logger instead of log.%s", obj.Name())
			return true
		})
	}
	return nil, nil
}
