package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type SumDecls struct {
	Declarations []*Declaration `@@*`
}

// Declaration is a closed set of node types: sum Name = A | B;
type Declaration struct {
	Name  string   `"sum" @Ident "="`
	Cases []string `@Ident ("|" @Ident)* ";"`
}

func (s *SumDecls) Validate() error {
	seen := map[string]bool{}
	for _, decl := range s.Declarations {
		if seen[decl.Name] {
			return fmt.Errorf("sum %s declared twice", decl.Name)
		}
		seen[decl.Name] = true

		cases := map[string]bool{}
		for _, it := range decl.Cases {
			if cases[it] {
				return fmt.Errorf("sum %s lists %s twice", decl.Name, it)
			}
			cases[it] = true
		}
	}
	return nil
}

func GenerateDecls(source, pkgname string, s *SumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))

	for _, decl := range s.Declarations {
		f.Type().Id(decl.Name).Interface(
			Id("is_" + decl.Name).Params(),
		)

		for _, it := range decl.Cases {
			f.Func().Params(Id(it)).Id("is_" + decl.Name).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&SumDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := SumDecls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}
	if err = decls.Validate(); err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(filepath.Base(in), pkgname, &decls)), 0644)
	if err != nil {
		panic(err)
	}
}
