package service

import (
	"errors"
	"fmt"
	"testing"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/model"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"
	"dam-workspace-server/internal/testutils"
)

func newTestAppService(t *testing.T) *AppService {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return NewAppService(settingsrepo.NewSettingRepository(gdb))
}

// 测试内容：验证读取缺失的默认配置时会写入数据库。
func TestGetString_DefaultSettingInserted(t *testing.T) {
	s := newTestAppService(t)

	val := s.GetString(consts.ConfigWorkspaceDefaultDisplayStyle)
	if val != "GRID" {
		t.Fatalf("期望默认值 GRID，实际为 %q", val)
	}

	stored, err := s.settingStore.FindByKey(consts.ConfigWorkspaceDefaultDisplayStyle)
	if err != nil {
		t.Fatalf("期望默认配置已写入数据库: %v", err)
	}
	if stored.Value != val {
		t.Fatalf("数据库值不一致: got=%q 期望=%q", stored.Value, val)
	}
}

// 测试内容：验证未知 key 返回空值，且重复读取仍为空。
func TestGetString_UnknownKeyReturnsEmpty(t *testing.T) {
	s := newTestAppService(t)

	if val := s.GetString("unknown_key_not_exists"); val != "" {
		t.Fatalf("期望空值，实际为 %q", val)
	}
	if val := s.GetString("unknown_key_not_exists"); val != "" {
		t.Fatalf("期望缓存后仍为空值，实际为 %q", val)
	}
}

// 测试内容：验证数值与布尔配置的解析与失败回退。
func TestTypedGetters_ParseAndFallback(t *testing.T) {
	s := newTestAppService(t)
	_ = s.settingStore.Create(&model.Setting{Key: "i", Value: "12"})
	_ = s.settingStore.Create(&model.Setting{Key: "f", Value: "0.5"})
	_ = s.settingStore.Create(&model.Setting{Key: "b", Value: "true"})
	_ = s.settingStore.Create(&model.Setting{Key: "bad", Value: "x"})

	if got := s.GetInt("i"); got != 12 {
		t.Fatalf("期望 12，实际为 %d", got)
	}
	if got := s.GetFloat64("f"); got != 0.5 {
		t.Fatalf("期望 0.5，实际为 %v", got)
	}
	if !s.GetBool("b") {
		t.Fatalf("期望 true")
	}
	if s.GetInt("bad") != 0 || s.GetFloat64("bad") != 0 || s.GetBool("bad") {
		t.Fatalf("期望解析失败时回退为零值")
	}
}

// 测试内容：验证初始化会写入默认配置并删除废弃配置。
func TestInitializeSettings_SeedsAndPrunes(t *testing.T) {
	s := newTestAppService(t)
	_ = s.settingStore.Create(&model.Setting{Key: "site_logo", Value: "legacy"})

	if err := s.InitializeSettings(); err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	all, err := s.settingStore.FindAll()
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if len(all) != len(DefaultSettings) {
		t.Fatalf("期望 %d 条配置，实际为 %d", len(DefaultSettings), len(all))
	}
	if _, err := s.settingStore.FindByKey("site_logo"); err == nil {
		t.Fatalf("期望废弃配置被删除")
	}
}

// 测试内容：验证 ServiceError 的识别。
func TestAsServiceError(t *testing.T) {
	err := NewNotFoundError("缺失")
	serviceErr, ok := AsServiceError(err)
	if !ok || serviceErr.Code != ErrorCodeNotFound {
		t.Fatalf("期望识别为 not_found，实际为 %v", err)
	}
	if _, ok := AsServiceError(nil); ok {
		t.Fatalf("nil 不应识别为 ServiceError")
	}
}

// 测试内容：验证包装的内部错误保留原因且对外只暴露信息。
func TestWrapInternalError(t *testing.T) {
	cause := errors.New("磁盘已满")
	err := WrapInternalError(cause, "保存失败")
	if !errors.Is(err, cause) {
		t.Fatalf("期望可通过 errors.Is 找到原因")
	}
	if msg := ErrorMessage(err); msg != "保存失败" {
		t.Fatalf("期望对外信息为保存失败，实际为 %q", msg)
	}
	if msg := ErrorMessage(fmt.Errorf("外层: %w", err)); msg != "保存失败" {
		t.Fatalf("期望穿透包装取得信息，实际为 %q", msg)
	}
}
