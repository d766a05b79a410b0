package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// WorkflowClient implements domo.WorkflowClient.
type WorkflowClient struct {
	httpClient *http.Client
	projects   *resource[domo.Project]
}

// NewWorkflowClient creates a new workflow client.
func NewWorkflowClient(httpClient *http.Client) *WorkflowClient {
	return &WorkflowClient{
		httpClient: httpClient,
		projects:   newResource[domo.Project](httpClient, constants.ProjectsPath, "project"),
	}
}

// ListProjects implements domo.WorkflowClient.ListProjects.
func (c *WorkflowClient) ListProjects(ctx context.Context, opts *domo.ListOptions) ([]domo.Project, error) {
	return c.projects.list(ctx, opts)
}

// CreateProject implements domo.WorkflowClient.CreateProject.
func (c *WorkflowClient) CreateProject(ctx context.Context, project *domo.Project) (*domo.Project, error) {
	return c.projects.create(ctx, project)
}

// GetProject implements domo.WorkflowClient.GetProject. The id "me" selects
// the caller's personal project.
func (c *WorkflowClient) GetProject(ctx context.Context, projectID string) (*domo.Project, error) {
	return c.projects.get(ctx, projectID)
}

// UpdateProject implements domo.WorkflowClient.UpdateProject.
func (c *WorkflowClient) UpdateProject(ctx context.Context, projectID string, project *domo.Project) (*domo.Project, error) {
	return c.projects.put(ctx, projectID, project)
}

// DeleteProject implements domo.WorkflowClient.DeleteProject.
func (c *WorkflowClient) DeleteProject(ctx context.Context, projectID string) error {
	return c.projects.delete(ctx, projectID)
}

// ListMembers implements domo.WorkflowClient.ListMembers.
func (c *WorkflowClient) ListMembers(ctx context.Context, projectID string) ([]int64, error) {
	resp, err := c.httpClient.Get(ctx, c.projects.path(projectID)+"/members", nil)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}

	var members []int64

	err = json.Unmarshal(resp.Body, &members)
	if err != nil {
		return nil, fmt.Errorf("parsing project members list: %w", err)
	}

	return members, nil
}

// UpdateMembers implements domo.WorkflowClient.UpdateMembers.
func (c *WorkflowClient) UpdateMembers(ctx context.Context, projectID string, members []int64) error {
	_, err := c.httpClient.Put(ctx, c.projects.path(projectID)+"/members", members)
	if err != nil {
		return fmt.Errorf("updating project members: %w", err)
	}

	return nil
}

// ListProjectTasks implements domo.WorkflowClient.ListProjectTasks.
func (c *WorkflowClient) ListProjectTasks(ctx context.Context, projectID string, opts *domo.ListOptions) ([]domo.Task, error) {
	return c.listTasks(ctx, c.projects.path(projectID)+"/tasks", opts)
}

// ListLists implements domo.WorkflowClient.ListLists.
func (c *WorkflowClient) ListLists(ctx context.Context, projectID string) ([]domo.List, error) {
	resp, err := c.httpClient.Get(ctx, c.listsPath(projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing project lists: %w", err)
	}

	var lists []domo.List

	err = json.Unmarshal(resp.Body, &lists)
	if err != nil {
		return nil, fmt.Errorf("parsing project lists: %w", err)
	}

	return lists, nil
}

// CreateList implements domo.WorkflowClient.CreateList.
func (c *WorkflowClient) CreateList(ctx context.Context, projectID string, list *domo.List) (*domo.List, error) {
	resp, err := c.httpClient.Post(ctx, c.listsPath(projectID), list)
	if err != nil {
		return nil, fmt.Errorf("creating project list: %w", err)
	}

	return decode[domo.List](resp, "project list")
}

// GetList implements domo.WorkflowClient.GetList.
func (c *WorkflowClient) GetList(ctx context.Context, projectID, listID string) (*domo.List, error) {
	resp, err := c.httpClient.Get(ctx, c.listPath(projectID, listID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project list: %w", err)
	}

	return decode[domo.List](resp, "project list")
}

// UpdateList implements domo.WorkflowClient.UpdateList.
func (c *WorkflowClient) UpdateList(ctx context.Context, projectID, listID string, list *domo.List) (*domo.List, error) {
	resp, err := c.httpClient.Put(ctx, c.listPath(projectID, listID), list)
	if err != nil {
		return nil, fmt.Errorf("updating project list: %w", err)
	}

	return decode[domo.List](resp, "project list")
}

// DeleteList implements domo.WorkflowClient.DeleteList.
func (c *WorkflowClient) DeleteList(ctx context.Context, projectID, listID string) error {
	_, err := c.httpClient.Delete(ctx, c.listPath(projectID, listID))
	if err != nil {
		return fmt.Errorf("deleting project list: %w", err)
	}

	return nil
}

// ListTasks implements domo.WorkflowClient.ListTasks.
func (c *WorkflowClient) ListTasks(ctx context.Context, projectID, listID string, opts *domo.ListOptions) ([]domo.Task, error) {
	return c.listTasks(ctx, c.listPath(projectID, listID)+"/tasks", opts)
}

// CreateTask implements domo.WorkflowClient.CreateTask.
func (c *WorkflowClient) CreateTask(ctx context.Context, projectID, listID string, task *domo.Task) (*domo.Task, error) {
	resp, err := c.httpClient.Post(ctx, c.listPath(projectID, listID)+"/tasks", task)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return decode[domo.Task](resp, "task")
}

// GetTask implements domo.WorkflowClient.GetTask.
func (c *WorkflowClient) GetTask(ctx context.Context, projectID, listID, taskID string) (*domo.Task, error) {
	resp, err := c.httpClient.Get(ctx, c.taskPath(projectID, listID, taskID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	return decode[domo.Task](resp, "task")
}

// UpdateTask implements domo.WorkflowClient.UpdateTask.
func (c *WorkflowClient) UpdateTask(ctx context.Context, projectID, listID, taskID string, task *domo.Task) (*domo.Task, error) {
	resp, err := c.httpClient.Put(ctx, c.taskPath(projectID, listID, taskID), task)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return decode[domo.Task](resp, "task")
}

// DeleteTask implements domo.WorkflowClient.DeleteTask.
func (c *WorkflowClient) DeleteTask(ctx context.Context, projectID, listID, taskID string) error {
	_, err := c.httpClient.Delete(ctx, c.taskPath(projectID, listID, taskID))
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}

// ListAttachments implements domo.WorkflowClient.ListAttachments.
func (c *WorkflowClient) ListAttachments(ctx context.Context, projectID, listID, taskID string) ([]domo.Attachment, error) {
	resp, err := c.httpClient.Get(ctx, c.taskPath(projectID, listID, taskID)+"/attachments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing task attachments: %w", err)
	}

	var attachments []domo.Attachment

	err = json.Unmarshal(resp.Body, &attachments)
	if err != nil {
		return nil, fmt.Errorf("parsing task attachments list: %w", err)
	}

	return attachments, nil
}

// DownloadAttachment implements domo.WorkflowClient.DownloadAttachment.
func (c *WorkflowClient) DownloadAttachment(ctx context.Context, projectID, listID, taskID, attachmentID string) ([]byte, error) {
	path := c.taskPath(projectID, listID, taskID) + "/attachments/" + url.PathEscape(attachmentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading task attachment: %w", err)
	}

	return resp.Body, nil
}

// UploadAttachment implements domo.WorkflowClient.UploadAttachment.
func (c *WorkflowClient) UploadAttachment(ctx context.Context, projectID, listID, taskID, fileName string, content io.Reader) (*domo.Attachment, error) {
	path := c.taskPath(projectID, listID, taskID) + "/attachments"

	respBody, err := uploadMultipartFile(ctx, c.httpClient, path, "file", fileName, content)
	if err != nil {
		return nil, fmt.Errorf("uploading task attachment: %w", err)
	}

	var attachment domo.Attachment

	err = json.Unmarshal(respBody, &attachment)
	if err != nil {
		return nil, fmt.Errorf("parsing task attachment response: %w", err)
	}

	return &attachment, nil
}

// DeleteAttachment implements domo.WorkflowClient.DeleteAttachment.
func (c *WorkflowClient) DeleteAttachment(ctx context.Context, projectID, listID, taskID, attachmentID string) error {
	path := c.taskPath(projectID, listID, taskID) + "/attachments/" + url.PathEscape(attachmentID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting task attachment: %w", err)
	}

	return nil
}

func (c *WorkflowClient) listTasks(ctx context.Context, path string, opts *domo.ListOptions) ([]domo.Task, error) {
	resp, err := c.httpClient.Get(ctx, path, listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var tasks []domo.Task

	err = json.Unmarshal(resp.Body, &tasks)
	if err != nil {
		return nil, fmt.Errorf("parsing tasks list: %w", err)
	}

	return tasks, nil
}

func (c *WorkflowClient) listsPath(projectID string) string {
	return c.projects.path(projectID) + "/lists"
}

func (c *WorkflowClient) listPath(projectID, listID string) string {
	return c.listsPath(projectID) + "/" + url.PathEscape(listID)
}

func (c *WorkflowClient) taskPath(projectID, listID, taskID string) string {
	return c.listPath(projectID, listID) + "/tasks/" + url.PathEscape(taskID)
}

// uploadMultipartFile posts content as a single multipart form file.
func uploadMultipartFile(ctx context.Context, httpClient *http.Client, path, field, fileName string, content io.Reader) ([]byte, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	_, err = io.Copy(part, content)
	if err != nil {
		return nil, fmt.Errorf("writing file to form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	resp, err := httpClient.Do(ctx, &http.Request{
		Method:      nethttp.MethodPost,
		Path:        path,
		Body:        &buf,
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}
