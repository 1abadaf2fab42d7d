package service

import (
	"context"
	"strings"

	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/model"
	"dam-workspace-server/internal/modules/workspace/state"
	platformservice "dam-workspace-server/internal/platform/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Navigator 调用目录后端并把结果写入工作区状态。
// 失败时把错误信息写入错误槽，成功的导航会清空错误槽。
// 并发的导航之间没有先后保护，结果按完成顺序写入。
type Navigator struct {
	catalog Catalog
}

func NewNavigator(catalog Catalog) *Navigator {
	return &Navigator{catalog: catalog}
}

type DeleteResult struct {
	Images  int `json:"images"`
	Folders int `json:"folders"`
}

func (n *Navigator) LoadProjects(ctx context.Context, store *state.Store) error {
	projects, err := n.catalog.ListProjects()
	if err != nil {
		return n.fail(store, "load_projects", err)
	}
	store.SetProjectList(projects)
	n.succeed(store)
	return nil
}

// OpenProject 进入项目根目录
func (n *Navigator) OpenProject(ctx context.Context, store *state.Store, projectID uint) error {
	project, err := n.catalog.GetProject(projectID)
	if err != nil {
		return n.fail(store, "open_project", err)
	}

	folders, images, err := n.fetchLevel(ctx, project.ID, nil)
	if err != nil {
		return n.fail(store, "open_project", err)
	}

	path := projectPath(project)
	store.SetCurrentProject(project)
	store.SetCurrentFolder(nil)
	store.SetCurrentPath(path)
	store.SetBreadcrumbList([]state.Breadcrumb{projectCrumb(project)})
	store.SetFolderList(folders)
	store.SetImageList(images)
	n.succeed(store)
	return nil
}

// OpenFolder 进入文件夹，路径与面包屑由项目和祖先链构成
func (n *Navigator) OpenFolder(ctx context.Context, store *state.Store, folderID uint) error {
	folder, err := n.catalog.GetFolder(folderID)
	if err != nil {
		return n.fail(store, "open_folder", err)
	}
	project, err := n.catalog.GetProject(folder.ProjectID)
	if err != nil {
		return n.fail(store, "open_folder", err)
	}
	ancestors, err := n.catalog.FolderAncestors(folder)
	if err != nil {
		return n.fail(store, "open_folder", err)
	}

	folders, images, err := n.fetchLevel(ctx, project.ID, &folder.ID)
	if err != nil {
		return n.fail(store, "open_folder", err)
	}

	crumbs := make([]state.Breadcrumb, 0, len(ancestors)+2)
	crumbs = append(crumbs, projectCrumb(project))
	path := projectPath(project)
	for _, f := range append(ancestors, *folder) {
		path += "/" + f.Slug
		id := f.ID
		crumbs = append(crumbs, state.Breadcrumb{
			Title:     f.Title,
			Path:      path,
			ProjectID: project.ID,
			FolderID:  &id,
		})
	}

	store.SetCurrentProject(project)
	store.SetCurrentFolder(folder)
	store.SetCurrentPath(path)
	store.SetBreadcrumbList(crumbs)
	store.SetFolderList(folders)
	store.SetImageList(images)
	n.succeed(store)
	return nil
}

// Refresh 重新打开当前位置；尚未进入项目时重新加载项目列表
func (n *Navigator) Refresh(ctx context.Context, store *state.Store) error {
	snap := store.Snapshot()
	switch {
	case snap.CurrentFolder != nil:
		return n.OpenFolder(ctx, store, snap.CurrentFolder.ID)
	case snap.CurrentProject != nil:
		return n.OpenProject(ctx, store, snap.CurrentProject.ID)
	default:
		return n.LoadProjects(ctx, store)
	}
}

// DeleteSelected 删除已选的图片和文件夹，然后退出选择模式并刷新当前位置。
// 先删图片，文件夹必须为空才能删除。文件夹删除失败时，已删除的图片不再留在选择和列表中。
func (n *Navigator) DeleteSelected(ctx context.Context, store *state.Store) (DeleteResult, error) {
	snap := store.Snapshot()
	imageIDs := snap.SelectedImages.Slice()
	folderIDs := snap.SelectedFolders.Slice()
	if len(imageIDs) == 0 && len(folderIDs) == 0 {
		return DeleteResult{}, platformservice.NewValidationError("未选择任何条目")
	}

	var result DeleteResult
	var err error
	if len(imageIDs) > 0 {
		if result.Images, err = n.catalog.DeleteImages(ctx, imageIDs); err != nil {
			return result, n.fail(store, "delete_selected", err)
		}
	}
	if len(folderIDs) > 0 {
		if result.Folders, err = n.catalog.DeleteFolders(ctx, folderIDs); err != nil {
			if len(imageIDs) > 0 {
				// 图片已删除：移出选择并刷新列表，保留文件夹选择以便用户处理后重试
				store.ResetSelectedImages()
				if rerr := n.Refresh(ctx, store); rerr != nil {
					logging.Named("navigator").Warn("refresh after partial delete failed", zap.Error(rerr))
				}
			}
			return result, n.fail(store, "delete_selected", err)
		}
	}

	store.ExitSelectionMode()
	return result, n.Refresh(ctx, store)
}

// fetchLevel 并发获取某一层的文件夹与图片
func (n *Navigator) fetchLevel(ctx context.Context, projectID uint, parentID *uint) ([]model.Folder, []model.Image, error) {
	var folders []model.Folder
	var images []model.Image
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		folders, err = n.catalog.ListFolders(gctx, projectID, parentID)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = n.catalog.ListImages(gctx, projectID, parentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return folders, images, nil
}

func (n *Navigator) fail(store *state.Store, op string, err error) error {
	msg := platformservice.ErrorMessage(err)
	if strings.TrimSpace(msg) == "" {
		msg = "操作失败"
	}
	store.SetError(msg)
	logging.Named("navigator").Warn("workspace navigation failed", zap.String("op", op), zap.Error(err))
	return err
}

func (n *Navigator) succeed(store *state.Store) {
	if store.Snapshot().Error != "" {
		store.ClearError()
	}
}

func projectPath(project *model.Project) string {
	return "/" + project.Slug
}

func projectCrumb(project *model.Project) state.Breadcrumb {
	return state.Breadcrumb{
		Title:     project.Name,
		Path:      projectPath(project),
		ProjectID: project.ID,
	}
}
