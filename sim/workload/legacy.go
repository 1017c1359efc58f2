package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseLegacy reads the line-oriented input format:
//
//	trace|stats
//	1,2-4,8-1          algorithm ids, "-q" attaches a quantum
//	20                 last instant
//	3                  process count
//	A,0,3              name,arrival,service[,priority]
//	...
//
// Blank lines are skipped and fields are trimmed. Processes must be listed in
// non-decreasing arrival order. Errors carry the 1-based input line number.
func ParseLegacy(r io.Reader) (*WorkloadSpec, error) {
	lines, err := readLegacyLines(r)
	if err != nil {
		return nil, err
	}
	next := func(what string) (legacyLine, error) {
		if len(lines) == 0 {
			return legacyLine{}, fmt.Errorf("missing %s", what)
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}

	spec := &WorkloadSpec{Version: SpecVersion}

	l, err := next("operation line (trace/stats)")
	if err != nil {
		return nil, err
	}
	spec.Operation = l.text

	if l, err = next("algorithm line"); err != nil {
		return nil, err
	}
	if spec.Algorithms, err = parseLegacyAlgorithms(l); err != nil {
		return nil, err
	}

	if l, err = next("last instant line"); err != nil {
		return nil, err
	}
	if spec.Horizon, err = parseLegacyInt(l, "last instant"); err != nil {
		return nil, err
	}

	if l, err = next("process count line"); err != nil {
		return nil, err
	}
	count, err := parseLegacyInt(l, "process count")
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("line %d: process count must be positive, got %d", l.num, count)
	}

	for i := 0; i < count; i++ {
		if l, err = next(fmt.Sprintf("process line %d of %d", i+1, count)); err != nil {
			return nil, err
		}
		p, err := parseLegacyProcess(l)
		if err != nil {
			return nil, err
		}
		if i > 0 && p.Arrival < spec.Processes[i-1].Arrival {
			return nil, fmt.Errorf("line %d: process %q arrives at %d, before %q at %d; list processes by arrival",
				l.num, p.Name, p.Arrival, spec.Processes[i-1].Name, spec.Processes[i-1].Arrival)
		}
		spec.Processes = append(spec.Processes, p)
	}
	if len(lines) > 0 {
		logrus.Warnf("line %d: ignoring %d line(s) after the declared %d processes", lines[0].num, len(lines), count)
	}
	return spec, nil
}

// LoadLegacy reads and parses a legacy input file.
func LoadLegacy(path string) (*WorkloadSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening legacy input: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file
	spec, err := ParseLegacy(f)
	if err != nil {
		return nil, fmt.Errorf("parsing legacy input %s: %w", path, err)
	}
	return spec, nil
}

type legacyLine struct {
	num  int
	text string
}

func readLegacyLines(r io.Reader) ([]legacyLine, error) {
	var lines []legacyLine
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, legacyLine{num: num, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading legacy input: %w", err)
	}
	return lines, nil
}

func parseLegacyInt(l legacyLine, what string) (int, error) {
	v, err := strconv.Atoi(l.text)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", l.num, what, l.text)
	}
	return v, nil
}

func parseLegacyAlgorithms(l legacyLine) ([]AlgorithmSpec, error) {
	algos, err := ParseAlgorithmList(l.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", l.num, err)
	}
	return algos, nil
}

// ParseAlgorithmList parses a comma-separated list of algorithm identifiers,
// each optionally suffixed with "-quantum" (e.g. "1,2-4,fb-2i,aging-2").
// Identifiers are not resolved here; unknown ones surface at validation.
func ParseAlgorithmList(text string) ([]AlgorithmSpec, error) {
	var algos []AlgorithmSpec
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		// "fb-1" and "fb-2i" are names, not id-quantum pairs.
		if strings.EqualFold(token, "fb-1") || strings.EqualFold(token, "fb-2i") {
			algos = append(algos, AlgorithmSpec{ID: token})
			continue
		}
		id, quantumStr, hasQuantum := strings.Cut(token, "-")
		a := AlgorithmSpec{ID: strings.TrimSpace(id)}
		if hasQuantum {
			q, err := strconv.Atoi(strings.TrimSpace(quantumStr))
			if err != nil {
				return nil, fmt.Errorf("invalid quantum in %q", token)
			}
			if q <= 0 {
				return nil, fmt.Errorf("quantum must be positive in %q", token)
			}
			a.Quantum = q
		}
		algos = append(algos, a)
	}
	if len(algos) == 0 {
		return nil, fmt.Errorf("no algorithms specified")
	}
	return algos, nil
}

func parseLegacyProcess(l legacyLine) (ProcessSpec, error) {
	fields := strings.Split(l.text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return ProcessSpec{}, fmt.Errorf("line %d: expected name,arrival,service[,priority], got %q", l.num, l.text)
	}
	p := ProcessSpec{Name: fields[0]}
	if p.Name == "" {
		return ProcessSpec{}, fmt.Errorf("line %d: missing process name", l.num)
	}
	var err error
	if p.Arrival, err = strconv.Atoi(fields[1]); err != nil || p.Arrival < 0 {
		return ProcessSpec{}, fmt.Errorf("line %d: invalid arrival time %q for process %q", l.num, fields[1], p.Name)
	}
	if p.Service, err = strconv.Atoi(fields[2]); err != nil || p.Service <= 0 {
		return ProcessSpec{}, fmt.Errorf("line %d: invalid service time %q for process %q", l.num, fields[2], p.Name)
	}
	if len(fields) > 3 && fields[3] != "" {
		if p.Priority, err = strconv.Atoi(fields[3]); err != nil {
			return ProcessSpec{}, fmt.Errorf("line %d: invalid priority %q for process %q", l.num, fields[3], p.Name)
		}
	}
	return p, nil
}
