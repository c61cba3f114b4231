// Package groundtruth reads labeled evaluation samples from CSV.
//
// The source dataset exports ingredient lists as Python list literals
// ("['1 cup rice', '2 eggs']"), so the reader tolerates both that shape and
// plain delimited cells.
package groundtruth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mealdex/dietengine/internal/domain"
)

// Row is one labeled ground-truth sample.
type Row struct {
	RecipeID    string
	Ingredients []string
	Vegan       bool
	Keto        bool
}

var quotedItemRegex = regexp.MustCompile(`'([^']+)'|"([^"]+)"`)

// ReadFile loads a ground-truth CSV. Required columns (by header name,
// case-insensitive): ingredients, vegan, keto; recipe_id/id is optional.
// Malformed rows are skipped and counted, never scored. A file that is
// missing, empty, or lacks the required columns is unreadable and returns
// ErrGroundTruthUnreadable.
func ReadFile(path string) ([]Row, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrGroundTruthUnreadable, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses ground-truth rows from an already-open CSV stream.
func Read(r io.Reader) ([]Row, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: missing header: %v", domain.ErrGroundTruthUnreadable, err)
	}

	cols := columnIndexes(header)
	if cols.ingredients < 0 || cols.vegan < 0 || cols.keto < 0 {
		return nil, 0, fmt.Errorf("%w: need ingredients, vegan, and keto columns", domain.ErrGroundTruthUnreadable)
	}

	var rows []Row
	skipped := 0
	line := 1

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			// A mangled row is skippable; keep scoring the rest.
			skipped++
			continue
		}

		row, ok := parseRow(record, cols, line)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	return rows, skipped, nil
}

type columns struct {
	recipeID    int
	ingredients int
	vegan       int
	keto        int
}

func columnIndexes(header []string) columns {
	cols := columns{recipeID: -1, ingredients: -1, vegan: -1, keto: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "recipe_id", "recipeid", "id":
			cols.recipeID = i
		case "ingredients":
			cols.ingredients = i
		case "vegan":
			cols.vegan = i
		case "keto":
			cols.keto = i
		}
	}
	return cols
}

func parseRow(record []string, cols columns, line int) (Row, bool) {
	max := cols.ingredients
	if cols.vegan > max {
		max = cols.vegan
	}
	if cols.keto > max {
		max = cols.keto
	}
	if len(record) <= max {
		return Row{}, false
	}

	vegan, err := parseBool(record[cols.vegan])
	if err != nil {
		return Row{}, false
	}
	keto, err := parseBool(record[cols.keto])
	if err != nil {
		return Row{}, false
	}

	ingredients := parseIngredientCell(record[cols.ingredients])
	if len(ingredients) == 0 {
		return Row{}, false
	}

	id := ""
	if cols.recipeID >= 0 && cols.recipeID < len(record) {
		id = strings.TrimSpace(record[cols.recipeID])
	}
	if id == "" {
		id = fmt.Sprintf("row-%d", line)
	}

	return Row{RecipeID: id, Ingredients: ingredients, Vegan: vegan, Keto: keto}, true
}

// parseBool accepts Go and pandas spellings: true/false, True/False, 1/0.
func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
}

// parseIngredientCell extracts individual ingredient lines from one CSV
// cell: a Python list literal when quoted items are present, otherwise a
// plain comma- or semicolon-delimited list.
func parseIngredientCell(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	if strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]") {
		var items []string
		for _, m := range quotedItemRegex.FindAllStringSubmatch(cell, -1) {
			item := m[1]
			if item == "" {
				item = m[2]
			}
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			return items
		}
		cell = strings.Trim(cell, "[]")
	}

	var items []string
	for _, part := range strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' }) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
