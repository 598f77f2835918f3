package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OrsoHeader is the subset of the ORSO .ort header this package reads.
// Unknown header keys are ignored.
type OrsoHeader struct {
	DataSource struct {
		Owner struct {
			Name        string `yaml:"name"`
			Affiliation string `yaml:"affiliation"`
		} `yaml:"owner"`
		Experiment struct {
			Title      string `yaml:"title"`
			Instrument string `yaml:"instrument"`
			Probe      string `yaml:"probe"`
		} `yaml:"experiment"`
	} `yaml:"data_source"`
	Columns []OrsoColumn `yaml:"columns"`
}

// OrsoColumn describes one data column of an .ort file.
type OrsoColumn struct {
	Name string `yaml:"name"`
	Unit string `yaml:"unit,omitempty"`
}

// ReadORT parses an ORSO .ort stream: consecutive '#'-prefixed header
// lines forming a YAML document, then numeric columns (q, R [, dR [, dQ]]).
// The dataset name prefers the experiment title over the fallback name.
//
// Only the first dataset of a multi-dataset file is read.
func ReadORT(r io.Reader, fallback string) (*Data1D, error) {
	var header strings.Builder
	var body strings.Builder
	inHeader := true

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if inHeader && strings.HasPrefix(line, "#") {
			trimmed := strings.TrimPrefix(line, "#")
			trimmed = strings.TrimPrefix(trimmed, " ")
			header.WriteString(trimmed)
			header.WriteByte('\n')
			continue
		}
		inHeader = false
		// a later '#' line starts the next dataset; stop there
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			break
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	var hdr OrsoHeader
	if err := yaml.Unmarshal([]byte(header.String()), &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	name := fallback
	if t := hdr.DataSource.Experiment.Title; t != "" {
		name = t
	}

	d, err := ReadColumns(strings.NewReader(body.String()), name)
	if err != nil {
		return nil, err
	}
	return d, nil
}
