package service

import (
	"testing"

	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	platformservice "dam-workspace-server/internal/platform/service"
)

func assertErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q (%s)", code, serviceErr.Code, serviceErr.Message)
	}
}

// 测试内容：验证 slug 生成规则。
func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Summer Campaign 2024": "summer-campaign-2024",
		"  a__b..c  ":          "a-b-c",
		"封面":                   "",
		"Hero/Banner-":         "hero-banner",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) 期望 %q，实际为 %q", in, want, got)
		}
	}
	if got := resolveSlug("", "封面", "fallback"); got != "fallback" {
		t.Fatalf("期望使用 fallback，实际为 %q", got)
	}
}

// 测试内容：验证项目创建、重复 slug 冲突、更新与非空删除保护。
func TestProjectLifecycle(t *testing.T) {
	s, gdb := setupTestService(t)

	p, err := s.CreateProject(moduledto.CreateProjectRequest{Name: "Spring Launch", CreatedBy: "alice"})
	if err != nil {
		t.Fatalf("创建项目失败: %v", err)
	}
	if p.Slug != "spring-launch" || p.ModifiedBy != "alice" {
		t.Fatalf("项目字段不符合预期: %+v", p)
	}

	_, err = s.CreateProject(moduledto.CreateProjectRequest{Name: "spring launch"})
	assertErrorCode(t, err, platformservice.ErrorCodeConflict)

	_, err = s.CreateProject(moduledto.CreateProjectRequest{Name: "  "})
	assertErrorCode(t, err, platformservice.ErrorCodeValidation)

	desc := "new"
	updated, err := s.UpdateProject(p.ID, moduledto.UpdateProjectRequest{Description: &desc, ModifiedBy: "bob"})
	if err != nil {
		t.Fatalf("更新项目失败: %v", err)
	}
	if updated.Description != "new" || updated.ModifiedBy != "bob" {
		t.Fatalf("更新未生效: %+v", updated)
	}

	seedImage(t, gdb, p.ID, nil, "a.png")
	assertErrorCode(t, s.DeleteProject(bg, p.ID), platformservice.ErrorCodeConflict)
	assertErrorCode(t, s.DeleteProject(bg, 999), platformservice.ErrorCodeNotFound)

	empty, _ := s.CreateProject(moduledto.CreateProjectRequest{Name: "Empty"})
	if err := s.DeleteProject(bg, empty.ID); err != nil {
		t.Fatalf("删除空项目失败: %v", err)
	}
	_, err = s.GetProject(empty.ID)
	assertErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证按层级列出文件夹与图片。
func TestListings_ByLevel(t *testing.T) {
	s, gdb := setupTestService(t)
	p := seedProject(t, gdb, "p")
	root := seedFolder(t, gdb, p.ID, nil, "Root A")
	seedFolder(t, gdb, p.ID, nil, "Root B")
	seedFolder(t, gdb, p.ID, &root.ID, "Child")
	seedImage(t, gdb, p.ID, nil, "top.png")
	seedImage(t, gdb, p.ID, &root.ID, "inner.png")

	folders, err := s.ListFolders(bg, p.ID, nil)
	if err != nil || len(folders) != 2 {
		t.Fatalf("期望 2 个根文件夹，实际为 %d err=%v", len(folders), err)
	}
	children, _ := s.ListFolders(bg, p.ID, &root.ID)
	if len(children) != 1 || children[0].Title != "Child" {
		t.Fatalf("子文件夹不符合预期: %+v", children)
	}
	images, _ := s.ListImages(bg, p.ID, nil)
	if len(images) != 1 || images[0].Name != "top.png" {
		t.Fatalf("根图片不符合预期: %+v", images)
	}
	images, _ = s.ListImages(bg, p.ID, &root.ID)
	if len(images) != 1 || images[0].Name != "inner.png" {
		t.Fatalf("文件夹内图片不符合预期: %+v", images)
	}
}

// 测试内容：验证祖先链按从根到父的顺序返回。
func TestFolderAncestors_Order(t *testing.T) {
	s, gdb := setupTestService(t)
	p := seedProject(t, gdb, "p")
	a := seedFolder(t, gdb, p.ID, nil, "A")
	b := seedFolder(t, gdb, p.ID, &a.ID, "B")
	c := seedFolder(t, gdb, p.ID, &b.ID, "C")

	chain, err := s.FolderAncestors(c)
	if err != nil {
		t.Fatalf("获取祖先链失败: %v", err)
	}
	if len(chain) != 2 || chain[0].ID != a.ID || chain[1].ID != b.ID {
		t.Fatalf("祖先链顺序错误: %+v", chain)
	}

	chain, _ = s.FolderAncestors(a)
	if len(chain) != 0 {
		t.Fatalf("根文件夹不应有祖先: %+v", chain)
	}
}

// 测试内容：验证创建文件夹时的父级校验。
func TestCreateFolder_Validation(t *testing.T) {
	s, gdb := setupTestService(t)
	p1 := seedProject(t, gdb, "p1")
	p2 := seedProject(t, gdb, "p2")
	other := seedFolder(t, gdb, p2.ID, nil, "Other")

	_, err := s.CreateFolder(bg, p1.ID, moduledto.CreateFolderRequest{Title: "X", ParentFolderID: &other.ID})
	assertErrorCode(t, err, platformservice.ErrorCodeValidation)

	_, err = s.CreateFolder(bg, 999, moduledto.CreateFolderRequest{Title: "X"})
	assertErrorCode(t, err, platformservice.ErrorCodeNotFound)

	f, err := s.CreateFolder(bg, p1.ID, moduledto.CreateFolderRequest{Title: "Beach Shots"})
	if err != nil || f.Slug != "beach-shots" {
		t.Fatalf("创建文件夹失败: %+v err=%v", f, err)
	}
}

// 测试内容：验证非空文件夹不能删除，空文件夹可以批量删除。
func TestDeleteFolders(t *testing.T) {
	s, gdb := setupTestService(t)
	p := seedProject(t, gdb, "p")
	full := seedFolder(t, gdb, p.ID, nil, "Full")
	seedImage(t, gdb, p.ID, &full.ID, "x.png")
	e1 := seedFolder(t, gdb, p.ID, nil, "E1")
	e2 := seedFolder(t, gdb, p.ID, nil, "E2")

	_, err := s.DeleteFolders(bg, []uint{full.ID, e1.ID})
	assertErrorCode(t, err, platformservice.ErrorCodeConflict)

	n, err := s.DeleteFolders(bg, []uint{e1.ID, e2.ID, 999})
	if err != nil || n != 2 {
		t.Fatalf("期望删除 2 个文件夹，实际为 %d err=%v", n, err)
	}
	_, err = s.DeleteFolders(bg, nil)
	assertErrorCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证父文件夹与其空子文件夹可以在同一批次中删除，单独删除父文件夹仍被拒绝。
func TestDeleteFolders_ParentWithChildrenInBatch(t *testing.T) {
	s, gdb := setupTestService(t)
	p := seedProject(t, gdb, "p")
	parent := seedFolder(t, gdb, p.ID, nil, "Parent")
	child := seedFolder(t, gdb, p.ID, &parent.ID, "Child")
	grandchild := seedFolder(t, gdb, p.ID, &child.ID, "Grandchild")

	_, err := s.DeleteFolders(bg, []uint{parent.ID})
	assertErrorCode(t, err, platformservice.ErrorCodeConflict)
	_, err = s.DeleteFolders(bg, []uint{parent.ID, child.ID})
	assertErrorCode(t, err, platformservice.ErrorCodeConflict)

	n, err := s.DeleteFolders(bg, []uint{parent.ID, grandchild.ID, child.ID})
	if err != nil || n != 3 {
		t.Fatalf("期望一次删除 3 个文件夹，实际为 %d err=%v", n, err)
	}
	folders, _ := s.ListFolders(bg, p.ID, nil)
	if len(folders) != 0 {
		t.Fatalf("期望根目录为空，实际为 %d", len(folders))
	}
}

// 测试内容：验证子文件夹里有图片时，即使父子同批次也整体拒绝。
func TestDeleteFolders_ChildWithImageBlocksBatch(t *testing.T) {
	s, gdb := setupTestService(t)
	p := seedProject(t, gdb, "p")
	parent := seedFolder(t, gdb, p.ID, nil, "Parent")
	child := seedFolder(t, gdb, p.ID, &parent.ID, "Child")
	seedImage(t, gdb, p.ID, &child.ID, "x.png")

	_, err := s.DeleteFolders(bg, []uint{parent.ID, child.ID})
	assertErrorCode(t, err, platformservice.ErrorCodeConflict)
	if _, err := s.GetFolder(parent.ID); err != nil {
		t.Fatalf("期望父文件夹未被删除: %v", err)
	}
}

// 测试内容：验证图片登记、更新与批量删除。
func TestImageLifecycle(t *testing.T) {
	s, gdb := setupTestService(t)
	p := seedProject(t, gdb, "p")

	_, err := s.CreateImage(bg, p.ID, moduledto.CreateImageRequest{Name: "a.txt", Encoding: "text/plain", Width: 1, Height: 1})
	assertErrorCode(t, err, platformservice.ErrorCodeValidation)
	_, err = s.CreateImage(bg, p.ID, moduledto.CreateImageRequest{Name: "a.png", Encoding: "image/png"})
	assertErrorCode(t, err, platformservice.ErrorCodeValidation)

	img, err := s.CreateImage(bg, p.ID, moduledto.CreateImageRequest{Name: "Hero.PNG", Encoding: "IMAGE/PNG", Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("登记图片失败: %v", err)
	}
	if img.Title != "Hero.PNG" || img.Encoding != "image/png" || img.Slug != "hero-png" {
		t.Fatalf("图片字段不符合预期: %+v", img)
	}

	published := true
	img, err = s.UpdateImage(bg, img.ID, moduledto.UpdateImageRequest{IsPublished: &published})
	if err != nil || !img.IsPublished {
		t.Fatalf("发布图片失败: %+v err=%v", img, err)
	}

	other := seedImage(t, gdb, p.ID, nil, "b.png")
	n, err := s.DeleteImages(bg, []uint{img.ID, other.ID})
	if err != nil || n != 2 {
		t.Fatalf("期望删除 2 张图片，实际为 %d err=%v", n, err)
	}
	_, err = s.DeleteImages(bg, []uint{img.ID})
	assertErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证批量删除数量上限。
func TestDeleteImages_Limit(t *testing.T) {
	s, _ := setupTestService(t)
	ids := make([]uint, defaultBatchDeleteLimit+1)
	for i := range ids {
		ids[i] = uint(i + 1)
	}
	_, err := s.DeleteImages(bg, ids)
	assertErrorCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证列表走缓存，且通过服务写入后项目的列表缓存立即失效。
func TestListings_CacheInvalidatedByWrites(t *testing.T) {
	s, gdb := setupCachedTestService(t)
	p := seedProject(t, gdb, "proj")
	img := seedImage(t, gdb, p.ID, nil, "a.png")

	images, err := s.ListImages(bg, p.ID, nil)
	if err != nil || len(images) != 1 {
		t.Fatalf("期望 1 张图片，实际为 %d err=%v", len(images), err)
	}

	// 绕过服务直接写库，缓存命中时看不到这条记录
	seedImage(t, gdb, p.ID, nil, "b.png")
	images, _ = s.ListImages(bg, p.ID, nil)
	if len(images) != 1 {
		t.Fatalf("期望命中缓存仍为 1 张，实际为 %d", len(images))
	}

	if _, err := s.DeleteImages(bg, []uint{img.ID}); err != nil {
		t.Fatalf("删除图片失败: %v", err)
	}
	images, _ = s.ListImages(bg, p.ID, nil)
	if len(images) != 1 || images[0].Name != "b.png" {
		t.Fatalf("期望删除后重新读库只剩 b.png，实际为 %+v", images)
	}

	folders, _ := s.ListFolders(bg, p.ID, nil)
	if len(folders) != 0 {
		t.Fatalf("期望没有文件夹，实际为 %d", len(folders))
	}
	if _, err := s.CreateFolder(bg, p.ID, moduledto.CreateFolderRequest{Title: "New"}); err != nil {
		t.Fatalf("创建文件夹失败: %v", err)
	}
	folders, _ = s.ListFolders(bg, p.ID, nil)
	if len(folders) != 1 {
		t.Fatalf("期望创建后可见 1 个文件夹，实际为 %d", len(folders))
	}
}
