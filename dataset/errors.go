package dataset

import "errors"

var (
	// ErrColumnCount is returned for rows with fewer than 2 or more than
	// 4 numeric columns, or rows whose width disagrees with the first row.
	ErrColumnCount = errors.New("dataset: unsupported column count")

	// ErrLengthMismatch indicates constructor slices of unequal length.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")

	// ErrNoData indicates a file or reader with no data rows.
	ErrNoData = errors.New("dataset: no data points")

	// ErrBadNumber indicates an unparseable numeric field.
	ErrBadNumber = errors.New("dataset: malformed numeric field")

	// ErrBadHeader indicates an .ort file whose YAML header cannot be
	// parsed.
	ErrBadHeader = errors.New("dataset: malformed ORSO header")

	// ErrMaskLength indicates a mask whose length differs from Len().
	ErrMaskLength = errors.New("dataset: mask length mismatch")
)
