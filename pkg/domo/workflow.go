package domo

import "time"

// Project is a workflow project.
type Project struct {
	ID          *string    `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        *string    `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedBy   *int64     `json:"createdBy,omitempty"   yaml:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty" yaml:"createdDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"     yaml:"dueDate,omitempty"`
	Public      *bool      `json:"public,omitempty"      yaml:"public,omitempty"`
	Members     []int64    `json:"members,omitzero"      yaml:"members,omitempty"`
}

// List is an ordered column of tasks within a project.
type List struct {
	ID    *int64  `json:"id,omitempty"    yaml:"id,omitempty"`
	Name  *string `json:"name,omitempty"  yaml:"name,omitempty"`
	Type  *string `json:"type,omitempty"  yaml:"type,omitempty"`
	Index *int    `json:"index,omitempty" yaml:"index,omitempty"`
}

// Task is a unit of work on a project list.
type Task struct {
	ID              *int64     `json:"id,omitempty"              yaml:"id,omitempty"`
	ProjectID       *int64     `json:"projectId,omitempty"       yaml:"projectId,omitempty"`
	ProjectListID   *int64     `json:"projectListId,omitempty"   yaml:"projectListId,omitempty"`
	TaskName        *string    `json:"taskName,omitempty"        yaml:"taskName,omitempty"`
	Description     *string    `json:"description,omitempty"     yaml:"description,omitempty"`
	CreatedDate     *time.Time `json:"createdDate,omitempty"     yaml:"createdDate,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"         yaml:"dueDate,omitempty"`
	Priority        *int       `json:"priority,omitempty"        yaml:"priority,omitempty"`
	CreatedBy       *int64     `json:"createdBy,omitempty"       yaml:"createdBy,omitempty"`
	OwnedBy         *int64     `json:"ownedBy,omitempty"         yaml:"ownedBy,omitempty"`
	Contributors    []int64    `json:"contributors,omitzero"     yaml:"contributors,omitempty"`
	AttachmentCount *int       `json:"attachmentCount,omitempty" yaml:"attachmentCount,omitempty"`
	Tags            []string   `json:"tags,omitzero"             yaml:"tags,omitempty"`
	Archived        *bool      `json:"archived,omitempty"        yaml:"archived,omitempty"`
}

// Attachment is a file attached to a task.
type Attachment struct {
	ID          *int64     `json:"id,omitempty"          yaml:"id,omitempty"`
	TaskID      *int64     `json:"taskId,omitempty"      yaml:"taskId,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty" yaml:"createdDate,omitempty"`
	FileName    *string    `json:"fileName,omitempty"    yaml:"fileName,omitempty"`
	MimeType    *string    `json:"mimeType,omitempty"    yaml:"mimeType,omitempty"`
}

// NewProjectTemplate returns a placeholder project for an edit buffer.
func NewProjectTemplate() *Project {
	now := time.Now().UTC()

	return &Project{
		ID:          Ptr("0"),
		Name:        Ptr("Project Name"),
		Description: Ptr("Project Description"),
		CreatedBy:   Ptr(int64(12345)),
		CreatedDate: &now,
		DueDate:     &now,
		Public:      Ptr(true),
		Members:     []int64{0, 1, 2, 3},
	}
}

// NewListTemplate returns a placeholder list for an edit buffer.
func NewListTemplate() *List {
	return &List{
		ID:    Ptr(int64(0)),
		Name:  Ptr("List Name"),
		Type:  Ptr(""),
		Index: Ptr(0),
	}
}

// NewTaskTemplate returns a placeholder task for an edit buffer.
func NewTaskTemplate() *Task {
	now := time.Now().UTC()

	return &Task{
		ID:              Ptr(int64(0)),
		ProjectID:       Ptr(int64(0)),
		ProjectListID:   Ptr(int64(0)),
		TaskName:        Ptr("Task Name"),
		Description:     Ptr("Task Description"),
		CreatedDate:     &now,
		DueDate:         &now,
		Priority:        Ptr(0),
		CreatedBy:       Ptr(int64(27)),
		OwnedBy:         Ptr(int64(27)),
		Contributors:    []int64{0, 1, 2, 3},
		AttachmentCount: Ptr(0),
		Tags:            []string{"A", "B", "C"},
		Archived:        Ptr(false),
	}
}
