// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package driver runs the parser over a directory of annotated token files,
// writing one output file for each input.
package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/ast"
	"golang.org/x/sync/errgroup"
)

// A Job pairs an input file with the output file it produces.
type Job struct {
	Input  string
	Output string
}

// A Report describes the outcome of a completed job.
type Report struct {
	Job
	Err *ast.SemanticError // the first semantic error, or nil
}

// Options control a batch run. A zero value is ready for use.
type Options struct {
	ScopeKeys bool         // check duplicate keys per object
	Workers   int          // maximum concurrent jobs; <= 0 means 1
	Logger    *slog.Logger // if nil, discard log output
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o Options) workers() int { return max(o.Workers, 1) }

// createFile opens an output file for writing.
var createFile = os.Create

// OutputName maps the base name of an input file to the name of its output
// file. The last occurrence of "Input" is replaced by "Output", so that
// "Type3ErrorInput.txt" maps to "Type3ErrorOutput.txt". A name without
// "Input" gets ".out" added before its extension.
func OutputName(input string) string {
	if i := strings.LastIndex(input, "Input"); i >= 0 {
		return input[:i] + "Output" + input[i+len("Input"):]
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".out" + ext
}

// Discover returns a job for each file in inDir whose name matches pattern,
// with output files in outDir. Jobs are ordered by input name.
func Discover(inDir, pattern, outDir string) ([]Job, error) {
	paths, err := filepath.Glob(filepath.Join(inDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("discover %q: %w", pattern, err)
	}
	slices.Sort(paths)
	var jobs []Job
	for _, path := range paths {
		if fi, err := os.Stat(path); err != nil {
			return nil, err
		} else if !fi.Mode().IsRegular() {
			continue
		}
		jobs = append(jobs, Job{
			Input:  path,
			Output: filepath.Join(outDir, OutputName(filepath.Base(path))),
		})
	}
	return jobs, nil
}

// ParseFile parses the annotated token stream in the named file.
func ParseFile(path string, scoped bool) (*ast.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, scoped)
}

// ParseReader parses the annotated token stream read from r.
func ParseReader(r io.Reader, scoped bool) (*ast.Result, error) {
	src := jtok.NewSource(r)
	p := ast.NewParser(src)
	p.ScopeKeys(scoped)
	res := p.Parse()
	if err := src.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Run executes jobs with up to opts.Workers running concurrently.  Each input
// is parsed and its tree and first error are written to the output file.  The
// reports are returned in the order of jobs.  Run stops at the first job that
// fails to read or write a file, or when ctx ends.
func Run(ctx context.Context, jobs []Job, opts Options) ([]Report, error) {
	log := opts.logger()
	reports := make([]Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := runJob(job, opts.ScopeKeys, log)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

func runJob(job Job, scoped bool, log *slog.Logger) (Report, error) {
	log.Debug("parsing", "input", job.Input)
	res, err := ParseFile(job.Input, scoped)
	if err != nil {
		return Report{}, fmt.Errorf("parse %q: %w", job.Input, err)
	}
	if err := os.MkdirAll(filepath.Dir(job.Output), 0755); err != nil {
		return Report{}, err
	}
	f, err := createFile(job.Output)
	if err != nil {
		return Report{}, fmt.Errorf("create output: %w", err)
	}
	werr := ast.WriteResult(f, res)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return Report{}, fmt.Errorf("write %q: %w", job.Output, werr)
	}

	rep := Report{Job: job}
	if len(res.Errors) != 0 {
		rep.Err = res.Errors[0]
		log.Warn("semantic error", "input", job.Input, "line", rep.Err.Line, "error", rep.Err)
	}
	log.Info("wrote output", "output", job.Output)
	return rep, nil
}
