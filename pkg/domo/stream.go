package domo

import "time"

// Stream update methods.
const (
	UpdateMethodAppend  = "APPEND"
	UpdateMethodReplace = "REPLACE"
	UpdateMethodUpsert  = "UPSERT"
)

// Stream represents a Domo stream: a dataset fed by multi-part uploads.
type Stream struct {
	ID            *int64     `json:"id,omitempty"            yaml:"id,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"     yaml:"createdAt,omitempty"`
	ModifiedAt    *time.Time `json:"modifiedAt,omitempty"    yaml:"modifiedAt,omitempty"`
	UpdateMethod  *string    `json:"updateMethod,omitempty"  yaml:"updateMethod,omitempty"`
	KeyColumnName *string    `json:"keyColumnName,omitempty" yaml:"keyColumnName,omitempty"`
	DataSet       *DataSet   `json:"dataSet,omitempty"       yaml:"dataSet,omitempty"`
	Deleted       *bool      `json:"deleted,omitempty"       yaml:"deleted,omitempty"`
}

// Execution is one upload session against a stream.
type Execution struct {
	ID           *int64     `json:"id,omitempty"           yaml:"id,omitempty"`
	StartedAt    *time.Time `json:"startedAt,omitempty"    yaml:"startedAt,omitempty"`
	CurrentState *string    `json:"currentState,omitempty" yaml:"currentState,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"    yaml:"createdAt,omitempty"`
	ModifiedAt   *time.Time `json:"modifiedAt,omitempty"   yaml:"modifiedAt,omitempty"`
}

// NewStreamTemplate returns a placeholder stream for an edit buffer.
func NewStreamTemplate() *Stream {
	now := time.Now().UTC()

	return &Stream{
		ID:            Ptr(int64(0)),
		CreatedAt:     &now,
		ModifiedAt:    &now,
		UpdateMethod:  Ptr("APPEND | REPLACE | UPSERT"),
		KeyColumnName: Ptr("Defines the key column used for UPSERT updates"),
		DataSet:       NewDataSetTemplate(),
		Deleted:       Ptr(false),
	}
}
