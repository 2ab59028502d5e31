package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/fetttttjoe/Compiler/ast"
	"github.com/fetttttjoe/Compiler/config"
	"github.com/fetttttjoe/Compiler/logging"
)

func module(c *cli.Context) config.Module {
	return c.App.Metadata["module"].(config.Module)
}

var reprFlag = &cli.BoolFlag{
	Name:  "repr",
	Usage: "dump the Go values instead of the readable form",
	Value: false,
}

func report(r result) {
	for _, w := range r.warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	for _, d := range r.diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}
}

func check(m config.Module, path string) error {
	u, err := readUnit(path, m)
	if err != nil {
		return err
	}

	r, err := compile(m, u)
	report(r)
	if err != nil {
		return err
	}

	unimplemented := 0
	for _, d := range r.decls {
		var fn ast.Function
		switch v := d.(type) {
		case ast.Function:
			fn = v
		case ast.MainFunction:
			fn = v.Function
		default:
			continue
		}
		for _, stmt := range fn.Body {
			if _, ok := stmt.(ast.Unimplemented); ok {
				unimplemented++
			}
		}
	}

	fmt.Printf("%s: %d tokens, %d declarations, %d placeholder statements, %d warnings, %d diagnostics\n",
		u.name, len(r.tokens), len(r.decls), unimplemented, len(r.warnings), len(r.diagnostics))
	return nil
}

func main() {
	app := &cli.App{
		Name:  "compiler",
		Usage: "tokenize and build declaration trees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultFile,
				Usage: "project manifest, .yaml or .toml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the manifest log level",
			},
		},
		Before: func(c *cli.Context) error {
			m, err := loadModule(c.String("config"))
			if err != nil {
				return err
			}
			if c.App.Metadata == nil {
				c.App.Metadata = map[string]interface{}{}
			}
			c.App.Metadata["module"] = m

			level := m.LogLevel
			if c.IsSet("log-level") {
				level = c.String("log-level")
			}
			return logging.Setup(level, os.Stderr)
		},
		ExitErrHandler: func(context *cli.Context, err error) {
			if err != nil {
				tracerr.PrintSourceColor(err)
			}
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a default manifest",
				ArgsUsage: "<package>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return tracerr.Errorf("no package name provided")
					}
					return config.Default(name).Write(c.String("config"))
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the token sequence of a source file",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{reprFlag},
				Action: func(c *cli.Context) error {
					u, err := readUnit(c.Args().First(), module(c))
					if err != nil {
						return err
					}

					r, err := tokenize(module(c), u)
					if c.Bool("repr") {
						repr.Println(r.tokens)
					} else {
						for _, tok := range r.tokens {
							fmt.Printf("%s\t%s\n", tok.Location.From, tok)
						}
					}
					report(r)
					return err
				},
			},
			{
				Name:      "parse",
				Usage:     "print the declaration tree of a source file",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{reprFlag},
				Action: func(c *cli.Context) error {
					u, err := readUnit(c.Args().First(), module(c))
					if err != nil {
						return err
					}

					r, err := compile(module(c), u)
					report(r)
					if err != nil {
						return err
					}

					if c.Bool("repr") {
						fmt.Println(repr.String(r.decls, repr.Indent("  ")))
					} else {
						fmt.Println(ast.Format(r.decls))
					}
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "build the tree and summarise what was found",
				ArgsUsage: "[file]",
				Action: func(c *cli.Context) error {
					return check(module(c), c.Args().First())
				},
			},
			{
				Name:      "watch",
				Usage:     "run check every time the source file is written",
				ArgsUsage: "[file]",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						path = module(c).Source
					}
					return watch(module(c), path)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
