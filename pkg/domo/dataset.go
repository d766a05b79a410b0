package domo

import (
	"bytes"
	"encoding/json"
	"time"
)

// Column types accepted in a dataset schema.
const (
	ColumnTypeString   = "STRING"
	ColumnTypeDecimal  = "DECIMAL"
	ColumnTypeLong     = "LONG"
	ColumnTypeDouble   = "DOUBLE"
	ColumnTypeDate     = "DATE"
	ColumnTypeDateTime = "DATETIME"
)

// DataSet represents a Domo dataset.
type DataSet struct {
	ID            *string    `json:"id,omitempty"            yaml:"id,omitempty"`
	Name          *string    `json:"name,omitempty"          yaml:"name,omitempty"`
	Description   *string    `json:"description,omitempty"   yaml:"description,omitempty"`
	Owner         *Owner     `json:"owner,omitempty"         yaml:"owner,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"     yaml:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"     yaml:"updatedAt,omitempty"`
	DataCurrentAt *time.Time `json:"dataCurrentAt,omitempty" yaml:"dataCurrentAt,omitempty"`
	Schema        *Schema    `json:"schema,omitempty"        yaml:"schema,omitempty"`
	PDPEnabled    *bool      `json:"pdpEnabled,omitempty"    yaml:"pdpEnabled,omitempty"`
	Policies      []Policy   `json:"policies,omitzero"       yaml:"policies,omitempty"`
	Rows          *int64     `json:"rows,omitempty"          yaml:"rows,omitempty"`
	Columns       *int       `json:"columns,omitempty"       yaml:"columns,omitempty"`
}

// Owner is the user that owns a dataset.
type Owner struct {
	ID   *int64  `json:"id,omitempty"   yaml:"id,omitempty"`
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Schema is the ordered column list of a dataset.
type Schema struct {
	Columns []Column `json:"columns,omitzero"  yaml:"columns,omitempty"`
}

// Column is a single dataset column.
type Column struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Policy is a personalized data permission (PDP) policy.
type Policy struct {
	ID      *int64   `json:"id,omitempty"      yaml:"id,omitempty"`
	Name    *string  `json:"name,omitempty"    yaml:"name,omitempty"`
	Type    *string  `json:"type,omitempty"    yaml:"type,omitempty"`
	Filters []Filter `json:"filters,omitzero"  yaml:"filters,omitempty"`
	Users   []int64  `json:"users,omitzero"    yaml:"users,omitempty"`
	Groups  []string `json:"groups,omitzero"   yaml:"groups,omitempty"`
}

// Filter restricts the rows a policy grants.
type Filter struct {
	Column   *string  `json:"column,omitempty"   yaml:"column,omitempty"`
	Not      *bool    `json:"not,omitempty"      yaml:"not,omitempty"`
	Operator *string  `json:"operator,omitempty" yaml:"operator,omitempty"`
	Values   []string `json:"values,omitzero"    yaml:"values,omitempty"`
}

// QueryResult holds the result of a SQL query against a dataset.
// Integral row cells decode as int64 and other numbers as float64, so ids
// above 2^53 keep every digit.
type QueryResult struct {
	DataSource *string         `json:"datasource,omitempty" yaml:"datasource,omitempty"`
	Columns    []string        `json:"columns,omitzero"     yaml:"columns,omitempty"`
	Metadata   []QueryMetadata `json:"metadata,omitzero"    yaml:"metadata,omitempty"`
	Rows       [][]interface{} `json:"rows,omitzero"        yaml:"rows,omitempty"`
	NumRows    *int64          `json:"numRows,omitempty"    yaml:"numRows,omitempty"`
	NumColumns *int            `json:"numColumns,omitempty" yaml:"numColumns,omitempty"`
	FromCache  *bool           `json:"fromCache,omitempty"  yaml:"fromCache,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *QueryResult) UnmarshalJSON(data []byte) error {
	type plain QueryResult

	var decoded plain

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	err := decoder.Decode(&decoded)
	if err != nil {
		return err
	}

	for _, row := range decoded.Rows {
		for i, cell := range row {
			row[i] = exactNumbers(cell)
		}
	}

	*r = QueryResult(decoded)

	return nil
}

// exactNumbers replaces every json.Number in v with an int64 when it is
// integral and in range, otherwise with a float64.
func exactNumbers(v interface{}) interface{} {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}

		if f, err := value.Float64(); err == nil {
			return f
		}

		return value.String()
	case []interface{}:
		for i := range value {
			value[i] = exactNumbers(value[i])
		}

		return value
	case map[string]interface{}:
		for key := range value {
			value[key] = exactNumbers(value[key])
		}

		return value
	default:
		return v
	}
}

// QueryMetadata describes one column of a query result.
type QueryMetadata struct {
	Type         *string `json:"type,omitempty"         yaml:"type,omitempty"`
	DataSourceID *string `json:"dataSourceId,omitempty" yaml:"dataSourceId,omitempty"`
	MaxLength    *int    `json:"maxLength,omitempty"    yaml:"maxLength,omitempty"`
	MinLength    *int    `json:"minLength,omitempty"    yaml:"minLength,omitempty"`
	PeriodIndex  *int    `json:"periodIndex,omitempty"  yaml:"periodIndex,omitempty"`
}

// QueryRequest is the body of a dataset query.
type QueryRequest struct {
	SQL string `json:"sql" yaml:"sql"`
}

// NewDataSetTemplate returns a placeholder dataset for an edit buffer.
func NewDataSetTemplate() *DataSet {
	now := time.Now().UTC()

	return &DataSet{
		ID:          Ptr("UUID"),
		Name:        Ptr("DataSet Name"),
		Description: Ptr("DataSet Description"),
		Owner: &Owner{
			ID:   Ptr(int64(1234)),
			Name: Ptr("DataSet Owner's Name"),
		},
		CreatedAt:     &now,
		UpdatedAt:     &now,
		DataCurrentAt: &now,
		Schema: &Schema{
			Columns: []Column{{
				Name: Ptr("Column Name"),
				Type: Ptr("STRING | DECIMAL | LONG | DOUBLE | DATE | DATETIME"),
			}},
		},
		PDPEnabled: Ptr(false),
		Policies:   []Policy{*NewPolicyTemplate()},
		Rows:       Ptr(int64(0)),
		Columns:    Ptr(0),
	}
}

// NewPolicyTemplate returns a placeholder PDP policy for an edit buffer.
func NewPolicyTemplate() *Policy {
	return &Policy{
		ID:   Ptr(int64(0)),
		Name: Ptr("Policy Name"),
		Type: Ptr("user | system"),
		Filters: []Filter{{
			Column:   Ptr("Column to filter on"),
			Not:      Ptr(false),
			Operator: Ptr("EQUALS"),
			Values:   []string{"values in this column that match will apply"},
		}},
		Users:  []int64{27},
		Groups: []string{"15"},
	}
}
