package service

import (
	"context"
	"errors"
	"strings"

	"dam-workspace-server/internal/model"
	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	platformservice "dam-workspace-server/internal/platform/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Service) ListProjects() ([]model.Project, error) {
	projects, err := s.projectStore.List()
	if err != nil {
		return nil, internalError(err, "获取项目列表失败")
	}
	return projects, nil
}

func (s *Service) GetProject(id uint) (*model.Project, error) {
	project, err := s.projectStore.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "项目不存在")
	}
	return project, nil
}

func (s *Service) CreateProject(req moduledto.CreateProjectRequest) (*model.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("项目名称不能为空")
	}
	slug := resolveSlug(req.Slug, name, "project-"+uuid.NewString()[:8])

	if _, err := s.projectStore.FindBySlug(slug); err == nil {
		return nil, platformservice.NewConflictError("项目标识已存在")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalError(err, "创建项目失败")
	}

	project := &model.Project{
		Name:          name,
		Slug:          slug,
		Description:   req.Description,
		RestrictUsers: req.RestrictUsers,
		CreatedBy:     req.CreatedBy,
		ModifiedBy:    req.CreatedBy,
	}
	if err := s.projectStore.Create(project); err != nil {
		return nil, internalError(err, "创建项目失败")
	}
	return project, nil
}

func (s *Service) UpdateProject(id uint, req moduledto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, platformservice.NewValidationError("项目名称不能为空")
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.RestrictUsers != nil {
		fields["restrict_users"] = *req.RestrictUsers
	}
	if len(fields) > 0 && req.ModifiedBy != "" {
		fields["modified_by"] = req.ModifiedBy
	}

	if err := s.projectStore.Update(project, fields); err != nil {
		return nil, internalError(err, "更新项目失败")
	}
	return s.GetProject(id)
}

// DeleteProject 项目下仍有文件夹或图片时拒绝删除
func (s *Service) DeleteProject(ctx context.Context, id uint) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}
	count, err := s.projectStore.CountContents(id)
	if err != nil {
		return internalError(err, "删除项目失败")
	}
	if count > 0 {
		return platformservice.NewConflictError("项目不为空，无法删除")
	}
	if err := s.projectStore.Delete(id); err != nil {
		return internalError(err, "删除项目失败")
	}
	s.invalidateListings(ctx, id)
	return nil
}
