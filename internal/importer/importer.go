// Package importer bulk-loads employees and dishes from a comma separated text
// file. A line with three fields is an employee (name, hourly rate, hours
// worked), a line with two fields is a dish (name, price). Blank lines are
// skipped; every other line counts as an error.
package importer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
)

var (
	ErrEmptyFilename = errors.New("filename cannot be empty")
	ErrFileNotFound  = errors.New("file not found")
)

// Adder receives the parsed records. RestaurantService satisfies it.
type Adder interface {
	AddEmployee(ctx context.Context, name string, hourlyRate, hoursWorked float64) (domain.Result, error)
	AddDish(ctx context.Context, name string, price float64) (domain.Result, error)
}

// Summary counts what an import did
type Summary struct {
	Added    int
	Errors   int
	Problems []string // one entry per rejected line, in file order
}

func (s Summary) Message() string {
	return fmt.Sprintf("Load complete: %d entries added, %d errors.", s.Added, s.Errors)
}

func (s *Summary) reject(format string, args ...any) {
	s.Errors++
	s.Problems = append(s.Problems, fmt.Sprintf(format, args...))
}

// ImportFile opens path and imports it
func ImportFile(ctx context.Context, path string, adder Adder) (Summary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Summary{}, ErrEmptyFilename
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Summary{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Import(ctx, f, adder)
}

// Import reads records from r until EOF. Rejected lines are counted in the
// summary; the error return is reserved for read and storage failures.
func Import(ctx context.Context, r io.Reader, adder Adder) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := splitFields(line)
		var (
			res domain.Result
			err error
		)
		switch len(parts) {
		case 3:
			rate, rateErr := parseNumber(parts[1])
			hours, hoursErr := parseNumber(parts[2])
			if rateErr != nil || hoursErr != nil {
				summary.reject("Invalid number in line: %s", line)
				continue
			}
			res, err = adder.AddEmployee(ctx, parts[0], rate, hours)
			if err == nil && !res.OK {
				summary.reject("Failed to add employee: %s", res.Message)
				continue
			}
		case 2:
			price, priceErr := parseNumber(parts[1])
			if priceErr != nil {
				summary.reject("Invalid number in line: %s", line)
				continue
			}
			res, err = adder.AddDish(ctx, parts[0], price)
			if err == nil && !res.OK {
				summary.reject("Failed to add dish: %s", res.Message)
				continue
			}
		default:
			summary.reject("Invalid format: %s", line)
			continue
		}
		if err != nil {
			return summary, err
		}
		summary.Added++
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read import data: %w", err)
	}
	return summary, nil
}

// splitFields splits on commas and trims each field. Trailing empty fields
// are dropped, so "Soup,5," still reads as a dish.
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseNumber(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
