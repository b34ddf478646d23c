// Package scopecheck provides a go/analysis based analyzer for misuse
// of the scoped guard layer.
//
// The closure constructs police their own pairing at runtime, but two
// of the layer's escape hatches cannot: a *Guard whose End is never
// deferred leaks its push for the rest of the frame, and a BlockFunc
// that is never invoked silently skips its scope. Both are always bugs
// at the call site, and both are visible statically.
package scopecheck

import (
	"errors"
	"flag"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// scopedPkg is the import path of the package providing Guard and
// BlockFunc. Detection is type-based, so wrappers that return these
// types are checked the same as the catalog itself.
var scopedPkg string

func init() {
	Analyzer.Flags.StringVar(&scopedPkg, "scoped-pkg", "github.com/go-theft-auto/scoped",
		"import path of the package providing Guard and BlockFunc")
}

// Analyzer is the main analyzer for scopecheck.
var Analyzer = &analysis.Analyzer{
	Name:     "scopecheck",
	Doc:      "checks that scope guards are deferred and scope blocks are invoked",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Only expression statements matter: a guard or block that is
	// assigned, returned, or passed along is someone else's to use,
	// and `defer g.End()` is the intended pattern.
	nodeFilter := []ast.Node{(*ast.ExprStmt)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		stmt := n.(*ast.ExprStmt)
		if call, ok := stmt.X.(*ast.CallExpr); ok {
			checkCallStatement(pass, call)
		}
	})

	return nil, nil
}

func checkCallStatement(pass *analysis.Pass, call *ast.CallExpr) {
	switch t := pass.TypesInfo.TypeOf(call); {
	case isGuard(t):
		pass.Reportf(call.Pos(), "discarded guard from %s; defer its End or use the block form", callName(call))
		return
	case isBlockFunc(t):
		pass.Reportf(call.Pos(), "discarded block from %s; invoke it with a body", callName(call))
		return
	}

	// An End chained onto a fresh guard runs the pop in the same
	// statement as the push.
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "End" {
		return
	}
	recv, ok := sel.X.(*ast.CallExpr)
	if !ok {
		return
	}
	if isGuard(pass.TypesInfo.TypeOf(recv)) {
		pass.Reportf(call.Pos(), "guard from %s is ended in the same statement; the scope closes before anything runs inside it, defer the End instead", callName(recv))
	}
}

// isGuard reports whether t is *Guard from the scoped package.
func isGuard(t types.Type) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}
	return isScopedNamed(ptr.Elem(), "Guard")
}

// isBlockFunc reports whether t is BlockFunc from the scoped package.
func isBlockFunc(t types.Type) bool {
	return isScopedNamed(t, "BlockFunc")
}

func isScopedNamed(t types.Type, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj.Name() != name || obj.Pkg() == nil {
		return false
	}
	return obj.Pkg().Path() == scopedPkg
}

// callName renders the called function's name for diagnostics.
func callName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.Ident:
		return fun.Name
	default:
		return "call"
	}
}
