package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thesavant42/textbench/internal/db"
	"github.com/thesavant42/textbench/internal/models"
)

func setupEnv(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("TEXTBENCH_CONFIG", "")
	t.Setenv("TEXTBENCH_LOG_LEVEL", "error")

	prev := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = prev })
}

func TestRunReport(t *testing.T) {
	setupEnv(t)

	for _, algo := range []string{"rle", "lfs", "date"} {
		t.Run(algo, func(t *testing.T) {
			var out bytes.Buffer
			if code := run([]string{algo, "120"}, &out); code != exitSuccess {
				t.Fatalf("run(%s 120) = %d, output:\n%s", algo, code, out.String())
			}

			got := out.String()
			for _, want := range []string{
				"algo = " + algo + "\n",
				"n = 120\n",
				"first 80 characters of input:\n",
				"elapsed time=",
			} {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			if strings.Contains(got, "error =") {
				t.Errorf("generated input should not fail:\n%s", got)
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "usage:"},
		{"one arg", []string{"rle"}, "usage:"},
		{"three args", []string{"rle", "10", "20"}, "usage:"},
		{"unknown algo", []string{"sort", "100"}, `error: unknown <ALGO> "sort"`},
		{"not integer", []string{"rle", "ten"}, "error: <N> must be an integer"},
		{"negative", []string{"rle", "-5"}, "error: <N> must be non-negative"},
		{"too small", []string{"lfs", "9"}, "error: <N> must be at least 10"},
		{"bad flag", []string{"-nope", "rle", "10"}, "error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if code := run(tt.args, &out); code != exitUsage {
				t.Errorf("run(%v) = %d, want %d", tt.args, code, exitUsage)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("run(%v) output missing %q:\n%s", tt.args, tt.want, out.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	setupEnv(t)

	var out bytes.Buffer
	if code := run([]string{"-h"}, &out); code != exitSuccess {
		t.Errorf("run(-h) = %d, want %d", code, exitSuccess)
	}
	if !strings.Contains(out.String(), "usage:") {
		t.Errorf("run(-h) output:\n%s", out.String())
	}
}

func TestRunStoresResult(t *testing.T) {
	setupEnv(t)
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	var out bytes.Buffer
	if code := run([]string{"-db", dbPath, "date", "40"}, &out); code != exitSuccess {
		t.Fatalf("run() = %d, output:\n%s", code, out.String())
	}

	database, err := db.New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()

	runs, err := database.GetRuns(models.RunFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Algo != "date" || runs[0].N != 40 || len(runs[0].InputPreview) != 40 {
		t.Errorf("stored runs = %+v", runs)
	}
}

func TestRunMinNFromEnv(t *testing.T) {
	setupEnv(t)
	t.Setenv("TEXTBENCH_MIN_N", "100")

	var out bytes.Buffer
	if code := run([]string{"rle", "50"}, &out); code != exitUsage {
		t.Errorf("run(rle 50) with min 100 = %d, want %d", code, exitUsage)
	}
	if !strings.Contains(out.String(), "at least 100") {
		t.Errorf("output:\n%s", out.String())
	}
}
