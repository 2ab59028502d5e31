package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle"
)

func parse(t *testing.T, src string) *SumDecls {
	t.Helper()

	decls := &SumDecls{}
	if err := participle.MustBuild(&SumDecls{}).ParseString(src, decls); err != nil {
		t.Fatal(err)
	}
	return decls
}

func TestGenerateDecls(t *testing.T) {
	decls := parse(t, `
sum Statement = Assignment | Unimplemented;
sum Expression = Literal;
`)
	if err := decls.Validate(); err != nil {
		t.Fatal(err)
	}

	out := GenerateDecls("nodes.adt", "ast", decls)
	for _, expected := range []string{
		"// Code generated by adtgen from nodes.adt. DO NOT EDIT.",
		"package ast",
		"type Statement interface {",
		"is_Statement()",
		"func (Assignment) is_Statement() {}",
		"func (Unimplemented) is_Statement() {}",
		"func (Literal) is_Expression() {}",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("missing %q in\n%s", expected, out)
		}
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	if err := parse(t, "sum A = B | B;").Validate(); err == nil {
		t.Errorf("expected a repeated case to be rejected")
	}
	if err := parse(t, "sum A = B; sum A = C;").Validate(); err == nil {
		t.Errorf("expected a repeated sum to be rejected")
	}
}
