// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planarframe runs a first-order, second-order, buckling, or
// free-vibration analysis over a JSON model document, in the style of
// gofem's own main.go: flag.Parse for options, the model file as the
// positional argument, chk.Panic on fatal input errors.
package main

import (
	"encoding/json"
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/planarframe/analysis"
	"github.com/cpmech/planarframe/config"
	"github.com/cpmech/planarframe/persist"
	"github.com/cpmech/planarframe/refine"
)

func main() {
	mode := flag.String("mode", "first", "analysis to run: first | second | buckling | modal")
	segments := flag.Int("segments", 20, "segments per member for internal-force sampling")
	tol := flag.Float64("tol", 1e-6, "second-order fixed-point relative tolerance")
	maxiters := flag.Int("maxiters", 25, "second-order fixed-point iteration cap")
	count := flag.Int("count", 5, "number of eigenmodes to report (buckling/modal)")
	meshN := flag.Int("mesh", 0, "subdivide every member into this many sub-members before solving (0 disables)")
	outPath := flag.String("out", "", "write the JSON result to this path instead of stdout")
	flag.Parse()

	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a model JSON file. Ex.: planarframe model.json")
	}
	fnamepath := flag.Arg(0)

	io.PfWhite("\nplanarframe -- 2D frame/truss structural analysis\n\n")

	mdl, err := persist.Load(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	if *meshN >= 2 {
		mdl, err = refine.Refine(mdl, *meshN)
		if err != nil {
			chk.Panic("%v", err)
		}
	}

	var cfg config.Config
	cfg.SetDefault()
	cfg.Segments = *segments
	cfg.SecondOrderTol = *tol
	cfg.SecondOrderMaxIters = *maxiters
	if err := cfg.Validate(); err != nil {
		chk.Panic("%v", err)
	}

	var result interface{}
	switch *mode {
	case "first":
		r, rerr := analysis.FirstOrder(mdl, cfg)
		if rerr != nil {
			chk.Panic("%v", rerr)
		}
		result = r
	case "second":
		r, rerr := analysis.SecondOrder(mdl, cfg)
		if r == nil {
			chk.Panic("%v", rerr)
		}
		if rerr != nil {
			io.PfRed("analysis reported: %v\n", rerr)
		}
		result = r
	case "buckling":
		r, rerr := analysis.Buckling(mdl, cfg, *count)
		if rerr != nil {
			chk.Panic("%v", rerr)
		}
		result = r
	case "modal":
		r, rerr := analysis.Modal(mdl, cfg, *count)
		if rerr != nil {
			chk.Panic("%v", rerr)
		}
		result = r
	default:
		chk.Panic("unknown -mode %q; expected first, second, buckling, or modal", *mode)
	}

	b, merr := json.MarshalIndent(result, "", "  ")
	if merr != nil {
		chk.Panic("cannot marshal result: %v", merr)
	}
	if *outPath == "" {
		io.Pf("%s\n", string(b))
		return
	}
	dir, fn := filepath.Split(*outPath)
	io.WriteFileSD(dir, fn, string(b))
	io.Pf("wrote %s\n", *outPath)
}
