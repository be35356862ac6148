package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLines reads non-empty, trimmed lines
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}

// inputsOrStdin returns args, or the lines of stdin when args is empty.
func inputsOrStdin(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if stdin == nil {
		return nil, ErrNoInput
	}

	lines, err := readLines(stdin)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrNoInput
	}

	return lines, nil
}

// splitValues splits on commas and whitespace and parses each field as an int.
func splitValues(inputs []string) ([]int, error) {
	var values []int

	for _, input := range inputs {
		fields := strings.FieldsFunc(input, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidValue, field, err)
			}

			values = append(values, v)
		}
	}

	return values, nil
}

// joinInts joins values with sep
func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, sep)
}
