package main

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/fetttttjoe/Compiler/ast"
	"github.com/fetttttjoe/Compiler/config"
	"github.com/fetttttjoe/Compiler/errors"
	"github.com/fetttttjoe/Compiler/lexer"
	"github.com/fetttttjoe/Compiler/logging"
	"github.com/fetttttjoe/Compiler/parser"
	"github.com/fetttttjoe/Compiler/types"
)

var plog = capnslog.NewPackageLogger(logging.Repo, "main")

type unit struct {
	name   string
	source string
}

type result struct {
	tokens      []types.Token
	warnings    []errors.Warning
	decls       []ast.Declaration
	diagnostics []error
}

func loadModule(path string) (config.Module, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		plog.Debugf("no manifest at %s, using defaults", path)
		return config.Default("sample"), nil
	}
	return config.Load(path)
}

// readUnit picks the explicit path, then the manifest source, then the built-in sample.
func readUnit(path string, m config.Module) (unit, error) {
	if path == "" {
		path = m.Source
		if _, err := os.Stat(path); err != nil {
			plog.Infof("no source file %s, using the built-in sample", path)
			return unit{name: "<sample>", source: sampleSource}, nil
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return unit{}, tracerr.Wrap(err)
	}
	return unit{name: path, source: string(data)}, nil
}

func tokenize(m config.Module, u unit) (result, error) {
	l := lexer.NewLexer(strings.NewReader(u.source), u.name, lexer.Options{Strict: m.Strict})
	tokens, err := l.Tokenize()
	return result{tokens: tokens, warnings: l.Warnings()}, err
}

// compile runs both passes. A lex error stops before the tree is built.
func compile(m config.Module, u unit) (result, error) {
	r, err := tokenize(m, u)
	if err != nil {
		return r, err
	}

	r.decls, r.diagnostics, err = parser.BuildTree(r.tokens, parser.Options{
		EntryPoint:       m.EntryPoint,
		CollapseTypeRuns: m.Collapse(),
	})
	return r, err
}
