package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/go-tabula/tabula"
	"github.com/go-tabula/tabula/errors"
	"github.com/go-tabula/tabula/logging"
	"github.com/go-tabula/tabula/table"
)

// Conf configures a JSON Lines load.
type Conf struct {
	// IgnoreRowErrors skips rows which fail to parse, instead of failing the
	// whole load. Skipped rows are logged and their errors gathered.
	IgnoreRowErrors bool
	// Logger receives skipped-row warnings. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Load reads one JSON document per line from r and assembles a Table under
// the given Schema. Column names are gjson paths; absent or null fields
// become the missing marker. Blank lines are skipped.
func Load(r io.Reader, s tabula.Schema, conf *Conf) (tabula.Table, error) {
	if conf == nil {
		conf = &Conf{}
	}
	logger := conf.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	names := s.ColumnNames()
	types := s.ColumnTypes()
	b := table.CreateBuilder(s)
	var rowErrs *multierror.Error
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}
		cells, err := parseRow(names, types, gjson.Parse(text))
		if err != nil {
			if !conf.IgnoreRowErrors {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			logger.Warn("skipping unparseable row",
				zap.Int("line", line),
				zap.Error(err))
			continue
		}
		if err = b.AppendRow(cells...); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rowErrs != nil {
		logger.Info("load finished with skipped rows",
			zap.Int("skipped", rowErrs.Len()),
			zap.Int("loaded", b.NumRows()))
	}
	return b.Build()
}

// parseRow extracts one cell per Schema column from a parsed JSON document
func parseRow(names []string, types []tabula.ColumnType, doc gjson.Result) ([]tabula.Value, error) {
	cells := make([]tabula.Value, len(names))
	for i, name := range names {
		field := doc.Get(name)
		if !field.Exists() || field.Type == gjson.Null {
			cells[i] = tabula.MissingValue(types[i].Kind())
			continue
		}
		cell, err := parseValue(name, types[i], field)
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}
	return cells, nil
}

// parseValue converts one JSON field to a cell of the given column type
func parseValue(colName string, colType tabula.ColumnType, field gjson.Result) (tabula.Value, error) {
	switch colType.Kind() {
	case tabula.KindNumeric:
		if field.Type != gjson.Number {
			return tabula.Value{}, typeErr(colName, colType, field)
		}
		return tabula.NumericValue(field.Float()), nil
	case tabula.KindText:
		if field.Type != gjson.String {
			return tabula.Value{}, typeErr(colName, colType, field)
		}
		return tabula.TextValue(field.String()), nil
	case tabula.KindBool:
		if field.Type != gjson.True && field.Type != gjson.False {
			return tabula.Value{}, typeErr(colName, colType, field)
		}
		return tabula.BoolValue(field.Bool()), nil
	case tabula.KindCategorical:
		if field.Type != gjson.String {
			return tabula.Value{}, typeErr(colName, colType, field)
		}
		return tabula.CategoricalValue(field.String()), nil
	default:
		return tabula.Value{}, fmt.Errorf("JSONL parsing does not support column type %T", colType)
	}
}

func typeErr(colName string, colType tabula.ColumnType, field gjson.Result) error {
	return errors.IncompatibleKindError{
		Name:     colName,
		Expected: colType.Kind().ToString(),
		Actual:   field.Type.String(),
	}
}
