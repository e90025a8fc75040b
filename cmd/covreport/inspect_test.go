package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// writeTestReport generates the report into a temporary directory.
func writeTestReport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.docx")
	if err := generateReport(context.Background(), path, io.Discard, discardLogger()); err != nil {
		t.Fatalf("failed to generate report: %v", err)
	}
	return path
}

// TestNewInspectCmd tests the inspect command creation.
func TestNewInspectCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInspectCmd()
	if cmd.Use != "inspect [path]" {
		t.Errorf("expected use 'inspect [path]', got %q", cmd.Use)
	}
	flag := cmd.Flags().Lookup("yaml")
	if flag == nil {
		t.Fatal("expected yaml flag")
	}
	if flag.DefValue != "false" {
		t.Errorf("expected default 'false', got %q", flag.DefValue)
	}
}

// TestRunInspectCmd tests printing the outline of a generated report.
func TestRunInspectCmd(t *testing.T) {
	t.Parallel()

	path := writeTestReport(t)

	t.Run("text outline", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"inspect", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := stdout.String()
		for _, want := range []string{
			"Title:    Informe de Pruebas y Cobertura",
			"Blocks:   11 headings, 24 paragraphs",
			"# Informe de Pruebas y Cobertura\n",
			"## Resumen ejecutivo\n",
			"### 1. Cobertura superior al 70%\n",
			"    Fecha: 2025-10-06\n",
			"    npm run test:cov\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("yaml outline", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"inspect", "--yaml", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got outline
		if err := yaml.Unmarshal(stdout.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode YAML: %v", err)
		}
		if got.Headings != 11 || got.Paragraphs != 24 {
			t.Errorf("expected 11 headings and 24 paragraphs, got %d and %d", got.Headings, got.Paragraphs)
		}
		if len(got.Blocks) == 0 || got.Blocks[0].Kind != "heading" || got.Blocks[0].Level != 1 {
			t.Errorf("expected level 1 heading first, got %+v", got.Blocks)
		}
		if got.Application != "covreport" {
			t.Errorf("expected application covreport, got %q", got.Application)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"inspect", filepath.Join(t.TempDir(), "missing.docx")})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "failed to open") {
			t.Errorf("expected open error, got %v", err)
		}
	})
}

// TestWriteOutlineText tests multi-line paragraphs are indented per line.
func TestWriteOutlineText(t *testing.T) {
	t.Parallel()

	o := &outline{
		Path:       "r.docx",
		Headings:   1,
		Paragraphs: 1,
		Blocks: []outlineBlock{
			{Kind: "heading", Level: 0, Text: "Title"},
			{Kind: "paragraph", Text: "one\ntwo"},
		},
	}

	var buf bytes.Buffer
	if err := writeOutlineText(&buf, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Document: r.docx\nBlocks:   1 headings, 1 paragraphs\n\n# Title\n    one\n    two\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
