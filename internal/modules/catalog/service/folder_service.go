package service

import (
	"context"
	"strings"

	"dam-workspace-server/internal/model"
	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	platformservice "dam-workspace-server/internal/platform/service"

	"github.com/google/uuid"
)

// maxFolderDepth 祖先链的最大深度，防止数据异常形成环时无限循环
const maxFolderDepth = 64

func (s *Service) GetFolder(id uint) (*model.Folder, error) {
	folder, err := s.folderStore.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "文件夹不存在")
	}
	return folder, nil
}

// FolderAncestors 返回从项目根到 folder 父级的祖先链（不含 folder 自身）
func (s *Service) FolderAncestors(folder *model.Folder) ([]model.Folder, error) {
	var chain []model.Folder
	parentID := folder.ParentFolderID
	for depth := 0; parentID != nil; depth++ {
		if depth >= maxFolderDepth {
			return nil, platformservice.NewInternalError("文件夹层级异常")
		}
		parent, err := s.GetFolder(*parentID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, *parent)
		parentID = parent.ParentFolderID
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

func (s *Service) CreateFolder(ctx context.Context, projectID uint, req moduledto.CreateFolderRequest) (*model.Folder, error) {
	if _, err := s.GetProject(projectID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, platformservice.NewValidationError("文件夹名称不能为空")
	}
	if req.ParentFolderID != nil {
		parent, err := s.GetFolder(*req.ParentFolderID)
		if err != nil {
			return nil, err
		}
		if parent.ProjectID != projectID {
			return nil, platformservice.NewValidationError("父文件夹不属于该项目")
		}
	}

	folder := &model.Folder{
		Title:          title,
		Slug:           resolveSlug(req.Slug, title, "folder-"+uuid.NewString()[:8]),
		ProjectID:      projectID,
		Description:    req.Description,
		ParentFolderID: req.ParentFolderID,
		CreatedBy:      req.CreatedBy,
		ModifiedBy:     req.CreatedBy,
	}
	if err := s.folderStore.Create(folder); err != nil {
		return nil, internalError(err, "创建文件夹失败")
	}
	s.invalidateListings(ctx, projectID)
	return folder, nil
}

func (s *Service) UpdateFolder(ctx context.Context, id uint, req moduledto.UpdateFolderRequest) (*model.Folder, error) {
	folder, err := s.GetFolder(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, platformservice.NewValidationError("文件夹名称不能为空")
		}
		fields["title"] = title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) > 0 && req.ModifiedBy != "" {
		fields["modified_by"] = req.ModifiedBy
	}

	if err := s.folderStore.Update(folder, fields); err != nil {
		return nil, internalError(err, "更新文件夹失败")
	}
	s.invalidateListings(ctx, folder.ProjectID)
	return s.GetFolder(id)
}

// DeleteFolders 批量删除空文件夹，任一文件夹非空则整体拒绝。
// 同批次内的子文件夹不算作父文件夹的内容，父子可以一起删除；
// 子文件夹自身仍须为空，因此通过校验的批次里不会留下悬空的内容。
func (s *Service) DeleteFolders(ctx context.Context, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, platformservice.NewValidationError("请选择要删除的文件夹")
	}
	if limit := s.batchDeleteLimit(); len(ids) > limit {
		return 0, platformservice.NewValidationError("一次删除的条目过多")
	}

	folders, err := s.folderStore.FindByIDs(ids)
	if err != nil {
		return 0, internalError(err, "查找文件夹失败")
	}
	if len(folders) == 0 {
		return 0, platformservice.NewNotFoundError("未找到指定文件夹")
	}

	batch := make([]uint, 0, len(folders))
	for _, f := range folders {
		batch = append(batch, f.ID)
	}

	found := make([]uint, 0, len(folders))
	projects := map[uint]struct{}{}
	for _, f := range folders {
		count, err := s.folderStore.CountContents(f.ID, batch)
		if err != nil {
			return 0, internalError(err, "删除文件夹失败")
		}
		if count > 0 {
			return 0, platformservice.NewConflictError("文件夹「" + f.Title + "」不为空，无法删除")
		}
		found = append(found, f.ID)
		projects[f.ProjectID] = struct{}{}
	}

	if err := s.folderStore.DeleteByIDs(found); err != nil {
		return 0, internalError(err, "删除文件夹失败")
	}
	for pid := range projects {
		s.invalidateListings(ctx, pid)
	}
	return len(found), nil
}
