package state

import (
	"bytes"
	"encoding/json"
	"errors"

	"dam-workspace-server/internal/model"
)

type DisplayStyle string

const (
	DisplayList DisplayStyle = "LIST"
	DisplayGrid DisplayStyle = "GRID"
)

func (d DisplayStyle) Valid() bool {
	return d == DisplayList || d == DisplayGrid
}

// ParseDisplayStyle 只接受 LIST 与 GRID
func ParseDisplayStyle(s string) (DisplayStyle, bool) {
	style := DisplayStyle(s)
	return style, style.Valid()
}

// ErrorSlot 最近一次错误信息，空字符串表示无错误；JSON 中以 false 表示
type ErrorSlot string

func (e ErrorSlot) MarshalJSON() ([]byte, error) {
	if e == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(e))
}

func (e *ErrorSlot) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "false", "null":
		*e = ""
		return nil
	case "true":
		return errors.New("error slot must be false or a string")
	}
	var msg string
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	*e = ErrorSlot(msg)
	return nil
}

// Breadcrumb 导航路径中的一级，FolderID 为空表示项目根
type Breadcrumb struct {
	Title     string `json:"title"`
	Path      string `json:"path"`
	ProjectID uint   `json:"project_id"`
	FolderID  *uint  `json:"folder_id"`
}

// Snapshot 某一版本的工作区状态。由 Store 提交后不再修改，读取方不得改动其中的切片与指针。
type Snapshot struct {
	Version         uint64          `json:"version"`
	Selecting       bool            `json:"selecting"`
	SelectedImages  IDSet           `json:"selected_images"`
	SelectedFolders IDSet           `json:"selected_folders"`
	DisplayStyle    DisplayStyle    `json:"display_style"`
	ImageList       []model.Image   `json:"image_list"`
	FolderList      []model.Folder  `json:"folder_list"`
	ProjectList     []model.Project `json:"project_list"`
	CurrentFolder   *model.Folder   `json:"current_folder"`
	CurrentProject  *model.Project  `json:"current_project"`
	CurrentPath     string          `json:"current_path"`
	BreadcrumbList  []Breadcrumb    `json:"breadcrumb_list"`
	Error           ErrorSlot       `json:"error"`
}

func (s *Snapshot) hasSelection() bool {
	return s.SelectedImages.Len() > 0 || s.SelectedFolders.Len() > 0
}

func (s *Snapshot) IsSelected(id uint) bool {
	return s.SelectedImages.Has(id)
}

func (s *Snapshot) IsFolderSelected(id uint) bool {
	return s.SelectedFolders.Has(id)
}
