package commands

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/itchyny/gojq"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

// Output formats.
const (
	FormatYAML  OutputFormat = "yaml"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
	FormatDebug OutputFormat = "debug"
	FormatTable OutputFormat = "table"
)

// DefaultOutputFormat is used when --template is empty.
const DefaultOutputFormat = FormatYAML

// ParseOutputFormat maps a --template value to an OutputFormat. The empty
// string selects DefaultOutputFormat.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return DefaultOutputFormat, nil
	case FormatYAML, FormatJSON, FormatCSV, FormatDebug, FormatTable:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, yaml, csv, debug or table)", constants.ErrInvalidOutputFormat, value)
	}
}

var debugDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpError writes err followed by a dump of the API error it wraps, if any.
func DumpError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	apiErr := &domo.APIError{}
	if errors.As(err, &apiErr) {
		debugDumper.Fdump(w, apiErr)
	}
}

// Renderer writes command results in one output format, optionally filtered
// through a jq expression first.
type Renderer struct {
	out    io.Writer
	format OutputFormat
	query  string
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, format OutputFormat, query string) *Renderer {
	return &Renderer{out: out, format: format, query: query}
}

// rendererFor builds a Renderer from the --template and --query settings.
func rendererFor(out io.Writer) (*Renderer, error) {
	format, err := ParseOutputFormat(viper.GetString("template"))
	if err != nil {
		return nil, err
	}

	return NewRenderer(out, format, viper.GetString("query")), nil
}

// Object renders a single value. The csv format renders it as a one-row table.
func (r *Renderer) Object(ctx context.Context, v interface{}) error {
	v, many, err := r.filter(ctx, v)
	if err != nil {
		return err
	}

	if many {
		return r.List(ctx, v)
	}

	switch r.format {
	case FormatJSON:
		return r.json(v)
	case FormatDebug:
		debugDumper.Fdump(r.out, v)

		return nil
	case FormatCSV:
		return r.records([]interface{}{v})
	case FormatTable:
		return r.properties(v)
	default:
		return r.yaml(v)
	}
}

// List renders a slice value. The csv format writes one record per element.
func (r *Renderer) List(ctx context.Context, v interface{}) error {
	v, _, err := r.filter(ctx, v)
	if err != nil {
		return err
	}

	switch r.format {
	case FormatJSON:
		return r.json(v)
	case FormatDebug:
		debugDumper.Fdump(r.out, v)

		return nil
	case FormatCSV:
		items, err := toSlice(v)
		if err != nil {
			return err
		}

		return r.records(items)
	case FormatTable:
		items, err := toSlice(v)
		if err != nil {
			return err
		}

		return r.table(items)
	default:
		return r.yaml(v)
	}
}

// QueryResult renders a dataset query. The csv format writes the column
// names followed by one record per row.
func (r *Renderer) QueryResult(ctx context.Context, result *domo.QueryResult) error {
	if r.format != FormatCSV || r.query != "" {
		return r.Object(ctx, result)
	}

	writer := csv.NewWriter(r.out)

	err := writer.Write(result.Columns)
	if err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range result.Rows {
		record := make([]string, len(row))

		for i, cell := range row {
			switch value := cell.(type) {
			case string:
				record[i] = value
			case int64:
				record[i] = strconv.FormatInt(value, 10)
			case float64:
				record[i] = strconv.FormatFloat(value, 'f', -1, 64)
			}
		}

		err = writer.Write(record)
		if err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// CSVText renders exported dataset content. json and yaml parse the text into
// rows of fields; every other format writes it unchanged.
func (r *Renderer) CSVText(ctx context.Context, text string) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		reader := csv.NewReader(strings.NewReader(text))
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("parsing csv: %w", err)
		}

		if rows == nil {
			rows = [][]string{}
		}

		return r.List(ctx, rows)
	default:
		_, err := io.WriteString(r.out, text)

		return err
	}
}

func (r *Renderer) json(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(v)
}

func (r *Renderer) yaml(v interface{}) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(v)
	if err != nil {
		return err
	}

	return encoder.Close()
}

// filter applies the jq expression. A query producing more than one value
// yields a slice and reports many.
func (r *Renderer) filter(ctx context.Context, v interface{}) (interface{}, bool, error) {
	if r.query == "" {
		return v, false, nil
	}

	query, err := gojq.Parse(r.query)
	if err != nil {
		return nil, false, fmt.Errorf("parsing query: %w", err)
	}

	input, err := toGeneric(v)
	if err != nil {
		return nil, false, err
	}

	var results []interface{}

	iter := query.RunWithContext(ctx, input)

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := value.(error); isErr {
			var haltErr *gojq.HaltError
			if errors.As(err, &haltErr) && haltErr.Value() == nil {
				break
			}

			return nil, false, fmt.Errorf("running query: %w", err)
		}

		results = append(results, value)
	}

	switch len(results) {
	case 0:
		return nil, false, nil
	case 1:
		return results[0], false, nil
	default:
		return results, true, nil
	}
}

// records writes items as CSV with a header of their top-level field names.
func (r *Renderer) records(items []interface{}) error {
	columns, rows, err := flatten(items)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(r.out)

	err = writer.Write(columns)
	if err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}

	return nil
}

func (r *Renderer) table(items []interface{}) error {
	columns, rows, err := flatten(items)
	if err != nil {
		return err
	}

	if len(columns) == 0 {
		_, err = fmt.Fprintln(r.out, "No results found")

		return err
	}

	table := tablewriter.NewWriter(r.out)
	table.Header(titles(columns))

	for _, row := range rows {
		_ = table.Append(row)
	}

	return table.Render()
}

func (r *Renderer) properties(v interface{}) error {
	columns, rows, err := flatten([]interface{}{v})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(r.out)
	table.Header("Property", "Value")

	titled := titles(columns)
	for i := range columns {
		_ = table.Append(titled[i], rows[0][i])
	}

	return table.Render()
}

// titles turns camelCase field names into table headers.
func titles(columns []string) []string {
	caser := cases.Title(language.English)
	result := make([]string, len(columns))

	for i, column := range columns {
		var words strings.Builder

		for j, ch := range column {
			if j > 0 && ch >= 'A' && ch <= 'Z' {
				words.WriteByte(' ')
			}

			words.WriteRune(ch)
		}

		result[i] = caser.String(words.String())
	}

	return result
}

// flatten renders items as rows keyed by the union of their top-level field
// names, in order of first appearance. Nested values are compact JSON.
func flatten(items []interface{}) ([]string, [][]string, error) {
	columns := []string{}
	seen := map[string]bool{}
	objects := make([]map[string]json.RawMessage, len(items))

	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding record: %w", err)
		}

		keys, fields := objectFields(raw)
		if keys == nil {
			keys = []string{"value"}
			fields = map[string]json.RawMessage{"value": raw}
		}

		for _, key := range keys {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}

		objects[i] = fields
	}

	rows := make([][]string, len(objects))

	for i, fields := range objects {
		row := make([]string, len(columns))
		for j, column := range columns {
			row[j] = cell(fields[column])
		}

		rows[i] = row
	}

	return columns, rows, nil
}

// objectFields returns the keys of a JSON object in document order, or nil
// when raw is not an object.
func objectFields(raw []byte) ([]string, map[string]json.RawMessage) {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	token, err := decoder.Token()
	if err != nil || token != json.Delim('{') {
		return nil, nil
	}

	keys := []string{}
	fields := map[string]json.RawMessage{}

	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return nil, nil
		}

		key, _ := token.(string)

		var value json.RawMessage

		err = decoder.Decode(&value)
		if err != nil {
			return nil, nil
		}

		keys = append(keys, key)
		fields[key] = value
	}

	return keys, fields
}

func cell(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if json.Unmarshal(raw, &text) == nil {
		return text
	}

	var compact bytes.Buffer
	if json.Compact(&compact, raw) == nil {
		return compact.String()
	}

	return string(raw)
}

// toGeneric converts v to the map/slice/float64 shapes gojq operates on.
func toGeneric(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding query input: %w", err)
	}

	var generic interface{}

	err = json.Unmarshal(raw, &generic)
	if err != nil {
		return nil, fmt.Errorf("decoding query input: %w", err)
	}

	return generic, nil
}

func toSlice(v interface{}) ([]interface{}, error) {
	generic, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	switch value := generic.(type) {
	case []interface{}:
		return value, nil
	case nil:
		return []interface{}{}, nil
	default:
		return []interface{}{value}, nil
	}
}
