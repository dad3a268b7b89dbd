package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	TimeColumn  string // Column name for time coordinates (optional)
	ValueColumn string // Column name for values (default: "x")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "x",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
// If no time column is found, time coordinates default to the row index.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	timeIdx, valueIdx := -1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "x" || h == "value" || h == "y")):
				valueIdx = i
			case opts.TimeColumn != "" && h == opts.TimeColumn:
				timeIdx = i
			case h == "t" || h == "time" || h == "Time":
				if timeIdx == -1 && opts.TimeColumn == "" {
					timeIdx = i
				}
			}
		}

		// Default to last column if the value column was not found
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	} else {
		timeIdx = 0
		valueIdx = 1
	}

	var times []float64
	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // Skip invalid rows
		}

		if timeIdx >= 0 && timeIdx < len(record) {
			tStr := strings.TrimSpace(strings.Trim(record[timeIdx], "\""))
			tv, err := strconv.ParseFloat(tStr, 64)
			if err != nil {
				continue
			}
			times = append(times, tv)
		}

		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(times) == len(values) {
		return &Series{
			Times:  times,
			Values: values,
		}, nil
	}

	return New(values), nil
}

// SaveCSV saves a time series to a CSV file with a "t,x" header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("t,x\n")

	for i, v := range series.Values {
		writer.WriteString(strconv.FormatFloat(series.Times[i], 'f', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
