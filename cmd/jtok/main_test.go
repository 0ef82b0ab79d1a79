// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jtok/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.Execute()
	t.Logf("Log output:\n%s", logs.String())
	return out.String(), err
}

func writeFile(t *testing.T, path, data string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCmd(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, filepath.Join(dir, "good.txt"), testutil.Stream(`{ "a" : [ 1 , 2 ] }`))
	bad := writeFile(t, filepath.Join(dir, "bad.txt"), testutil.Stream(`{ "a" : 1 , "a" : 2 }`))

	t.Run("Single", func(t *testing.T) {
		got, err := runCmd(t, "parse", good)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if diff := cmp.Diff(testutil.Tree("{", ">a", ">[", ">>1", ">>2", ">]", "}"), got); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
	})

	t.Run("Multiple", func(t *testing.T) {
		got, err := runCmd(t, "parse", "-v", good, bad)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		want := "== " + good + "\n" + testutil.Tree("{", ">a", ">[", ">>1", ">>2", ">]", "}") +
			"== " + bad + "\n" + testutil.Tree("{", ">a", ">1", ">a", "", "Error Type 5 at 'a': Duplicate Key")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
	})

	t.Run("ScopeKeys", func(t *testing.T) {
		nested := writeFile(t, filepath.Join(dir, "nested.txt"),
			testutil.Stream(`{ "a" : { "k" : 1 } , "b" : { "k" : 2 } }`))
		got, err := runCmd(t, "parse", "--scope-keys", nested)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if strings.Contains(got, "Error") {
			t.Errorf("Unexpected error in output:\n%s", got)
		}
	})

	t.Run("Path", func(t *testing.T) {
		got, err := runCmd(t, "parse", "--path", "a/1", good)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if diff := cmp.Diff("2\n", got); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
		if _, err := runCmd(t, "parse", "--path", "nonesuch", good); err == nil {
			t.Error("parse with a bad path did not fail")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := runCmd(t, "parse", filepath.Join(dir, "nonesuch")); err == nil {
			t.Error("parse of a missing file did not fail")
		}
		if _, err := runCmd(t, "parse"); err == nil {
			t.Error("parse with no arguments did not fail")
		}
	})
}

func TestRunCmd(t *testing.T) {
	inDir, outDir := t.TempDir(), filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(inDir, "Type7ErrorInput.txt"), testutil.Stream(`{ "s" : "true" }`))
	writeFile(t, filepath.Join(inDir, "CorrectInput1.txt"), testutil.Stream(`{ "s" : "x" }`))
	cfgFile := writeFile(t, filepath.Join(t.TempDir(), "jtok.jwcc"), `{
  // The input directory is given by flag.
  "input_dir": "nonesuch",
  "output_dir": "`+outDir+`",
  "workers": 1,
}`)

	got, err := runCmd(t, "run", "--config", cfgFile, "--input", inDir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff("Parsed 2 files, 1 with errors\n", got); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
	out, err := os.ReadFile(filepath.Join(outDir, "Type7ErrorOutput.txt"))
	if err != nil {
		t.Fatalf("Read output: %v", err)
	}
	want := testutil.Tree("{", ">s", ">true", "", "Error Type 7 at 'true': Reserved Word as String")
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Output file: (-want, +got)\n%s", diff)
	}

	if _, err := runCmd(t, "run", "--input", t.TempDir(), "--output", outDir); err == nil {
		t.Error("run with no input files did not fail")
	}
	if _, err := runCmd(t, "run", "--workers", "0"); err == nil {
		t.Error("run with no workers did not fail")
	}
}
