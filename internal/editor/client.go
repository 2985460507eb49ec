package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/folio/internal/content"
)

// APIError 是内容 API 返回的非 2xx 响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("content api: status %d", e.Status)
	}
	return fmt.Sprintf("content api: %s (status %d)", e.Message, e.Status)
}

// Client 通过 HTTP 调用内容 API，写操作携带 Bearer 令牌
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// Login 换取 Bearer 令牌并保存在客户端上
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

// Logout revokes the current token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// ChangePassword 修改当前账号密码
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", body, nil)
}

// GetPersonalInfo 读取个人资料
func (c *Client) GetPersonalInfo(ctx context.Context) (content.PersonalInfo, error) {
	var info content.PersonalInfo
	err := c.do(ctx, http.MethodGet, "/api/personal-info", nil, &info)
	return info, err
}

// PutPersonalInfo 整体覆盖个人资料
func (c *Client) PutPersonalInfo(ctx context.Context, info content.PersonalInfo) (content.PersonalInfo, error) {
	var saved content.PersonalInfo
	err := c.do(ctx, http.MethodPut, "/api/personal-info", info, &saved)
	return saved, err
}

// ListProjects 读取全部项目
func (c *Client) ListProjects(ctx context.Context) ([]content.Project, error) {
	var projects []content.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects)
	return projects, err
}

// GetProject 读取单个项目
func (c *Client) GetProject(ctx context.Context, id int64) (content.Project, error) {
	var project content.Project
	err := c.do(ctx, http.MethodGet, projectPath(id), nil, &project)
	return project, err
}

// CreateProject 新建项目，返回带服务端 ID 的记录
func (c *Client) CreateProject(ctx context.Context, project content.Project) (content.Project, error) {
	var saved content.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", project, &saved)
	return saved, err
}

// UpdateProject 整体替换项目
func (c *Client) UpdateProject(ctx context.Context, id int64, project content.Project) (content.Project, error) {
	var saved content.Project
	err := c.do(ctx, http.MethodPut, projectPath(id), project, &saved)
	return saved, err
}

// DeleteProject 删除项目
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, projectPath(id), nil, nil)
}

// GetTechStack 读取技术栈
func (c *Client) GetTechStack(ctx context.Context) ([]content.TechCategory, error) {
	var categories []content.TechCategory
	err := c.do(ctx, http.MethodGet, "/api/tech-stack", nil, &categories)
	return categories, err
}

// PutTechStack 整体覆盖技术栈
func (c *Client) PutTechStack(ctx context.Context, categories []content.TechCategory) ([]content.TechCategory, error) {
	var saved []content.TechCategory
	err := c.do(ctx, http.MethodPut, "/api/tech-stack", categories, &saved)
	return saved, err
}

// ListLinks 读取链接，active 不为 nil 时只返回对应分区
func (c *Client) ListLinks(ctx context.Context, active *bool) ([]content.LinkItem, error) {
	path := "/api/links"
	if active != nil {
		path += "?active=" + url.QueryEscape(strconv.FormatBool(*active))
	}
	var links []content.LinkItem
	err := c.do(ctx, http.MethodGet, path, nil, &links)
	return links, err
}

// CreateLink 新建链接
func (c *Client) CreateLink(ctx context.Context, link content.LinkItem) (content.LinkItem, error) {
	var saved content.LinkItem
	err := c.do(ctx, http.MethodPost, "/api/links", link, &saved)
	return saved, err
}

// UpdateLink 整体替换链接
func (c *Client) UpdateLink(ctx context.Context, id int64, link content.LinkItem) (content.LinkItem, error) {
	var saved content.LinkItem
	err := c.do(ctx, http.MethodPut, linkPath(id), link, &saved)
	return saved, err
}

// ToggleLink 切换链接启用状态
func (c *Client) ToggleLink(ctx context.Context, id int64) (content.LinkItem, error) {
	var saved content.LinkItem
	err := c.do(ctx, http.MethodPatch, linkPath(id)+"/toggle", nil, &saved)
	return saved, err
}

// DeleteLink 删除链接
func (c *Client) DeleteLink(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, linkPath(id), nil, nil)
}

// Upload 上传一张图片并返回可访问的 URL
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.send(req, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func projectPath(id int64) string {
	return "/api/projects/" + strconv.FormatInt(id, 10)
}

func linkPath(id int64) string {
	return "/api/links/" + strconv.FormatInt(id, 10)
}
