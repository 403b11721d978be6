package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/happyhackingspace/wordalign/corpus"
)

// ReadGoldFile reads reference links in the NAACL 2003 shared task layout:
//
//	<pairNo> <sourcePos> <targetPos> [S|P]
//
// All numbers are 1-based. A missing label means S. The result is keyed by
// pair number.
func ReadGoldFile(path string) (map[int]corpus.Gold, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	gold := make(map[int]corpus.Gold)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := parseGoldLine(fields, gold); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return gold, nil
}

func parseGoldLine(fields []string, gold map[int]corpus.Gold) error {
	if len(fields) < 3 || len(fields) > 5 {
		return fmt.Errorf("expected 3 to 5 fields, got %d", len(fields))
	}
	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return fmt.Errorf("field %d: %w", i+1, err)
		}
		if n < 1 {
			return fmt.Errorf("field %d: positions are 1-based, got %d", i+1, n)
		}
		nums[i] = n
	}
	pairNo, src, tgt := nums[0], nums[1]-1, nums[2]-1

	g, ok := gold[pairNo]
	if !ok {
		g = corpus.NewGold()
		gold[pairNo] = g
	}
	label := "S"
	if len(fields) >= 4 {
		label = fields[3]
	}
	switch label {
	case "S":
		g.AddSure(tgt, src)
	case "P":
		g.AddPossible(tgt, src)
	default:
		return fmt.Errorf("unknown link label %q", label)
	}
	return nil
}
