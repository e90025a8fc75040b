package coverage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/nao1215/covreport/internal/log"
)

// Counter is a covered/total pair for one kind of coverage.
type Counter struct {
	Covered int `json:"covered"`
	Total   int `json:"total"`
}

// Add returns the element-wise sum of c and o.
func (c Counter) Add(o Counter) Counter {
	return Counter{Covered: c.Covered + o.Covered, Total: c.Total + o.Total}
}

// Ratio returns the covered percentage in 0..100.
// A counter with nothing to cover is fully covered.
func (c Counter) Ratio() float64 {
	if c.Total == 0 {
		return 100
	}
	return 100 * float64(c.Covered) / float64(c.Total)
}

// Percent returns Ratio formatted with one decimal, e.g. "80.0".
func (c Counter) Percent() string {
	return strconv.FormatFloat(c.Ratio(), 'f', 1, 64)
}

// Fraction returns "covered/total".
func (c Counter) Fraction() string {
	return strconv.Itoa(c.Covered) + "/" + strconv.Itoa(c.Total)
}

// FileCoverage holds the counters of a single source file.
type FileCoverage struct {
	// Path is relative to the summary root, with forward slashes.
	Path string `json:"path"`

	Statements Counter `json:"statements"`
	Branches   Counter `json:"branches"`
	Functions  Counter `json:"functions"`
}

// Summary is the coverage of a whole project.
type Summary struct {
	// Files are sorted by Path.
	Files []FileCoverage `json:"files"`

	// Total sums the counters of all files. Its Path is "Total".
	Total FileCoverage `json:"total"`
}

// Metric names used by BelowThreshold.
const (
	MetricStatements = "statements"
	MetricBranches   = "branches"
	MetricFunctions  = "functions"
)

// BelowThreshold returns the names of the total metrics whose percentage is
// below threshold, in statements/branches/functions order.
// The comparison uses the one-decimal rounding shown to users.
func (s *Summary) BelowThreshold(threshold float64) []string {
	var below []string
	check := func(name string, c Counter) {
		shown, _ := strconv.ParseFloat(c.Percent(), 64)
		if shown < threshold {
			below = append(below, name)
		}
	}
	check(MetricStatements, s.Total.Statements)
	check(MetricBranches, s.Total.Branches)
	check(MetricFunctions, s.Total.Functions)
	return below
}

// CheckThreshold returns an error wrapping ErrBelowThreshold that names the
// total metrics below threshold. A zero threshold always passes.
func (s *Summary) CheckThreshold(threshold float64) error {
	if threshold <= 0 {
		return nil
	}
	below := s.BelowThreshold(threshold)
	if len(below) == 0 {
		return nil
	}
	return fmt.Errorf("%w %s%%: %s", ErrBelowThreshold,
		strconv.FormatFloat(threshold, 'f', -1, 64), strings.Join(below, ", "))
}

// fileData is one entry of coverage-final.json. Only the hit counters are
// decoded; statement, function and branch maps are ignored.
type fileData struct {
	S map[string]int   `json:"s"`
	F map[string]int   `json:"f"`
	B map[string][]int `json:"b"`
}

// Load reads the coverage file at path. File paths in the summary are made
// relative to root.
func Load(path, root string) (*Summary, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided coverage path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCoverageNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return Parse(f, root)
}

// Parse decodes coverage-final.json from r and summarizes it.
func Parse(r io.Reader, root string) (*Summary, error) {
	var raw map[string]fileData
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCoverage, err)
	}
	return summarize(raw, root), nil
}

// summarize computes per-file counters and the total.
func summarize(raw map[string]fileData, root string) *Summary {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	s := &Summary{
		Files: make([]FileCoverage, 0, len(raw)),
		Total: FileCoverage{Path: "Total"},
	}
	for fullPath, data := range raw {
		fc := FileCoverage{
			Path:       relativePath(absRoot, fullPath),
			Statements: countHits(data.S),
			Branches:   countBranches(data.B),
			Functions:  countHits(data.F),
		}
		s.Files = append(s.Files, fc)

		s.Total.Statements = s.Total.Statements.Add(fc.Statements)
		s.Total.Branches = s.Total.Branches.Add(fc.Branches)
		s.Total.Functions = s.Total.Functions.Add(fc.Functions)
	}

	sort.Slice(s.Files, func(i, j int) bool {
		return s.Files[i].Path < s.Files[j].Path
	})
	return s
}

// countHits counts entries and entries with a positive hit count.
func countHits(hits map[string]int) Counter {
	c := Counter{Total: len(hits)}
	for _, n := range hits {
		if n > 0 {
			c.Covered++
		}
	}
	return c
}

// countBranches counts every branch arm across all branch points.
func countBranches(branches map[string][]int) Counter {
	var c Counter
	for _, arms := range branches {
		c.Total += len(arms)
		for _, n := range arms {
			if n > 0 {
				c.Covered++
			}
		}
	}
	return c
}

// relativePath returns p relative to root with forward slashes.
// Paths that cannot be made relative (other volume, foreign OS) are only
// slash-normalized.
func relativePath(root, p string) string {
	if filepath.IsAbs(p) {
		if rel, err := filepath.Rel(root, p); err == nil {
			p = rel
		}
	}
	return log.ToSlash(p)
}
