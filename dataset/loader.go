package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a reflectivity dataset from path, dispatching on the file
// extension: ".ort" files go through the ORSO reader, everything else is
// treated as plain column text. The dataset name defaults to the file
// name without extension.
func Load(path string) (*Data1D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	if strings.EqualFold(filepath.Ext(base), ".ort") {
		return ReadORT(f, name)
	}
	return ReadColumns(f, name)
}

// ReadColumns parses 2-4 column numeric text: q, R [, dR [, dQ]].
// Columns may be separated by whitespace or commas; lines starting with
// '#' (or '!' as some instruments write) and blank lines are skipped.
// Every data row must have the same width as the first one.
func ReadColumns(r io.Reader, name string) (*Data1D, error) {
	var q, refl, dr, dq []float64
	ncols := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields, skip := splitDataRow(sc.Text())
		if skip {
			continue
		}
		if ncols == 0 {
			ncols = len(fields)
			if ncols < 2 || ncols > 4 {
				return nil, fmt.Errorf("line %d: %d columns: %w", line, len(fields), ErrColumnCount)
			}
		} else if len(fields) != ncols {
			return nil, fmt.Errorf("line %d: %d columns, want %d: %w", line, len(fields), ncols, ErrColumnCount)
		}

		vals := make([]float64, len(fields))
		for i, fstr := range fields {
			v, err := strconv.ParseFloat(fstr, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, fstr, ErrBadNumber)
			}
			vals[i] = v
		}
		q = append(q, vals[0])
		refl = append(refl, vals[1])
		if ncols > 2 {
			dr = append(dr, vals[2])
		}
		if ncols > 3 {
			dq = append(dq, vals[3])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(q) == 0 {
		return nil, ErrNoData
	}
	return NewData1D(name, q, refl, dr, dq)
}

// splitDataRow tokenizes one line; skip is true for comments and blanks.
func splitDataRow(s string) (fields []string, skip bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "!") {
		return nil, true
	}
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Fields(s), false
}
