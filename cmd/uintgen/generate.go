// Copyright (C) 2026  Nexedi SA and Contributors.
//                     Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"lab.nexedi.com/kirr/smalluint/uintsel"
	"lab.nexedi.com/kirr/smalluint/xerr"
)

// Generator generates type aliases for packages.
type Generator struct {
	Dir    string   // directory to load packages from
	Tags   []string // build tags
	Output string   // output file name; default <pkg>_uint.go
	Opt    uintsel.Options
	Logger log.Logger

	// directive from command line; applies only when single package is loaded
	Extra *directive
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo

// Run loads packages matching patterns and generates alias file for each of
// them that has directives.
//
// Packages are handled in parallel. Errors from all of them are reported.
func (g *Generator) Run(ctx context.Context, patterns ...string) (err error) {
	defer xerr.Contextf(&err, "uintgen %v", patterns)

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles,
		Dir:     g.Dir,
	}
	if len(g.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + joinTags(g.Tags)}
	}

	// previous output is replaced by bare package clause while loading:
	// its guards stop compiling as soon as a bound changes.
	pkgv, err := packages.Load(cfg, patterns...)
	if err != nil {
		return err
	}
	cfg.Overlay = map[string][]byte{}
	for _, pkg := range pkgv {
		out, err := g.outputPath(pkg)
		if err != nil {
			continue // reported after full load
		}
		for _, f := range pkg.GoFiles {
			if samePath(f, out) {
				cfg.Overlay[out] = []byte("package " + pkg.Name + "\n")
			}
		}
	}

	cfg.Mode = loadMode
	pkgv, err = packages.Load(cfg, patterns...)
	if err != nil {
		return err
	}
	if len(pkgv) == 0 {
		return errors.New("no packages found")
	}
	if g.Extra != nil && len(pkgv) != 1 {
		return errors.Errorf("-type requires exactly one package; %d packages matched", len(pkgv))
	}

	errv := make([]error, len(pkgv))
	wg, ctx := errgroup.WithContext(ctx)
	wg.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgv {
		i, pkg := i, pkg
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errv[i] = g.generatePkg(pkg)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	var all xerr.Errorv
	for _, err := range errv {
		all.Appendif(err)
	}
	return all.Err()
}

// outputPath returns where generated code for pkg goes.
func (g *Generator) outputPath(pkg *packages.Package) (string, error) {
	if len(pkg.GoFiles) == 0 {
		return "", errors.Errorf("%s: no Go files", pkg.PkgPath)
	}
	dir := filepath.Dir(pkg.GoFiles[0])
	name := g.Output
	if name == "" {
		name = pkg.Name + "_uint.go"
	}
	return filepath.Join(dir, filepath.Base(name)), nil
}

func (g *Generator) generatePkg(pkg *packages.Package) (err error) {
	defer xerr.Contextf(&err, "%s", pkg.PkgPath)
	logger := log.With(g.Logger, "pkg", pkg.PkgPath)

	out, err := g.outputPath(pkg)
	if err != nil {
		return err
	}

	var errs xerr.Errorv
	for _, e := range pkg.Errors {
		errs.Append(e)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if pkg.Types == nil {
		return errors.New("no type information")
	}

	dv, err := scanDirectives(pkg.Fset, pkg.Syntax)
	if err != nil {
		return err
	}
	if g.Extra != nil {
		dv = append(dv, *g.Extra)
	}
	if len(dv) == 0 {
		level.Debug(logger).Log("msg", "no directives")
		return nil
	}

	av, err := resolve(pkg.Fset, pkg.Types, g.Opt, dv)
	if err != nil {
		return err
	}
	for _, a := range av {
		level.Debug(logger).Log("msg", "selected", "type", a.typeName, "mode", a.mode,
			"bound", a.bound.ExactString(), "as", a.tag)
	}

	src, err := render(pkg.Name, av)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0666); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "wrote", "file", out, "types", len(av))
	return nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
