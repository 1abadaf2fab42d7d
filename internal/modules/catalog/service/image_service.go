package service

import (
	"context"
	"strings"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/model"
	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	platformservice "dam-workspace-server/internal/platform/service"

	"github.com/google/uuid"
)

const defaultBatchDeleteLimit = 50

func (s *Service) batchDeleteLimit() int {
	limit := s.GetInt(consts.ConfigBatchDeleteLimit)
	if limit <= 0 {
		return defaultBatchDeleteLimit
	}
	return limit
}

func (s *Service) GetImage(id uint) (*model.Image, error) {
	image, err := s.imageStore.FindByID(id)
	if err != nil {
		return nil, lookupError(err, "图片不存在")
	}
	return image, nil
}

// CreateImage 登记图片元数据，不处理文件内容
func (s *Service) CreateImage(ctx context.Context, projectID uint, req moduledto.CreateImageRequest) (*model.Image, error) {
	if _, err := s.GetProject(projectID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, platformservice.NewValidationError("图片名称不能为空")
	}
	encoding := strings.ToLower(strings.TrimSpace(req.Encoding))
	if !strings.HasPrefix(encoding, "image/") {
		return nil, platformservice.NewValidationError("不支持的图片编码")
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, platformservice.NewValidationError("图片尺寸必须为正数")
	}
	if req.FolderID != nil {
		folder, err := s.GetFolder(*req.FolderID)
		if err != nil {
			return nil, err
		}
		if folder.ProjectID != projectID {
			return nil, platformservice.NewValidationError("文件夹不属于该项目")
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = name
	}
	image := &model.Image{
		Name:       name,
		Title:      title,
		Encoding:   encoding,
		Width:      req.Width,
		Height:     req.Height,
		ProjectID:  projectID,
		FolderID:   req.FolderID,
		MetadataID: req.MetadataID,
		Slug:       resolveSlug(req.Slug, name, "image-"+uuid.NewString()[:8]),
		CreatedBy:  req.CreatedBy,
		ModifiedBy: req.CreatedBy,
	}
	if err := s.imageStore.Create(image); err != nil {
		return nil, internalError(err, "创建图片失败")
	}
	s.invalidateListings(ctx, projectID)
	return image, nil
}

func (s *Service) UpdateImage(ctx context.Context, id uint, req moduledto.UpdateImageRequest) (*model.Image, error) {
	image, err := s.GetImage(id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.IsPublished != nil {
		fields["is_published"] = *req.IsPublished
	}
	if len(fields) > 0 && req.ModifiedBy != "" {
		fields["modified_by"] = req.ModifiedBy
	}

	if err := s.imageStore.Update(image, fields); err != nil {
		return nil, internalError(err, "更新图片失败")
	}
	s.invalidateListings(ctx, image.ProjectID)
	return s.GetImage(id)
}

// DeleteImages 批量删除图片，返回实际删除的数量
func (s *Service) DeleteImages(ctx context.Context, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, platformservice.NewValidationError("请选择要删除的图片")
	}
	if limit := s.batchDeleteLimit(); len(ids) > limit {
		return 0, platformservice.NewValidationError("一次删除的条目过多")
	}

	images, err := s.imageStore.FindByIDs(ids)
	if err != nil {
		return 0, internalError(err, "查找图片失败")
	}
	if len(images) == 0 {
		return 0, platformservice.NewNotFoundError("未找到指定图片")
	}

	found := make([]uint, 0, len(images))
	projects := map[uint]struct{}{}
	for _, img := range images {
		found = append(found, img.ID)
		projects[img.ProjectID] = struct{}{}
	}
	if err := s.imageStore.DeleteByIDs(found); err != nil {
		return 0, internalError(err, "删除图片失败")
	}
	for pid := range projects {
		s.invalidateListings(ctx, pid)
	}
	return len(found), nil
}
