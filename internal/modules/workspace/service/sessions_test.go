package service

import (
	"context"
	"testing"
	"time"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/model"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"
	"dam-workspace-server/internal/modules/workspace/state"
	platformservice "dam-workspace-server/internal/platform/service"
	"dam-workspace-server/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/gorm"
)

func setupSessions(t *testing.T) (*Sessions, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	return NewSessions(appService), gdb
}

func setSetting(t *testing.T, gdb *gorm.DB, m *Sessions, key, value string) {
	t.Helper()
	require.NoError(t, gdb.Save(&model.Setting{Key: key, Value: value}).Error)
	m.ClearCache()
}

// 测试内容：验证打开会话使用默认展示方式，并可按 id 获取与关闭。
func TestSessions_OpenGetClose(t *testing.T) {
	m, _ := setupSessions(t)

	sess := m.Open()
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, state.DisplayGrid, sess.Store.Snapshot().DisplayStyle)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, m.Close(sess.ID))
	_, err = m.Get(sess.ID)
	serviceErr, ok := platformservice.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, platformservice.ErrorCodeNotFound, serviceErr.Code)

	assert.Error(t, m.Close(sess.ID))
}

// 测试内容：验证默认展示方式取自系统设置。
func TestSessions_DefaultDisplayStyleFromSettings(t *testing.T) {
	m, gdb := setupSessions(t)
	setSetting(t, gdb, m, consts.ConfigWorkspaceDefaultDisplayStyle, "LIST")

	sess := m.Open()
	assert.Equal(t, state.DisplayList, sess.Store.Snapshot().DisplayStyle)

	setSetting(t, gdb, m, consts.ConfigWorkspaceDefaultDisplayStyle, "TABLE")
	sess = m.Open()
	assert.Equal(t, state.DisplayGrid, sess.Store.Snapshot().DisplayStyle)
}

// 测试内容：验证关闭会话会关闭其订阅通道。
func TestSessions_CloseClosesSubscribers(t *testing.T) {
	m, _ := setupSessions(t)
	sess := m.Open()
	ch, cancel := sess.Store.Subscribe()
	defer cancel()
	<-ch

	require.NoError(t, m.Close(sess.ID))
	_, ok := <-ch
	assert.False(t, ok, "会话关闭后订阅通道应被关闭")
}

// 测试内容：验证空闲超时的会话被清理，活跃会话保留。
func TestSessions_EvictIdle(t *testing.T) {
	m, gdb := setupSessions(t)
	setSetting(t, gdb, m, consts.ConfigWorkspaceSessionIdleMinutes, "10")

	base := time.Now()
	m.now = func() time.Time { return base }
	idle := m.Open()
	active := m.Open()

	m.now = func() time.Time { return base.Add(8 * time.Minute) }
	_, err := m.Get(active.ID)
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(11 * time.Minute) }
	assert.Equal(t, 1, m.EvictIdle())
	assert.Equal(t, 1, m.Len())

	_, err = m.Get(idle.ID)
	assert.Error(t, err)
	_, err = m.Get(active.ID)
	assert.NoError(t, err)
}

// 测试内容：验证过期会话在 Get 时即被移除，即使清理任务尚未运行。
func TestSessions_GetExpired(t *testing.T) {
	m, gdb := setupSessions(t)
	setSetting(t, gdb, m, consts.ConfigWorkspaceSessionIdleMinutes, "1")

	base := time.Now()
	m.now = func() time.Time { return base }
	sess := m.Open()

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err := m.Get(sess.ID)
	assert.Error(t, err)
	assert.Equal(t, 0, m.Len())
}

// 测试内容：验证超时设置为 0 时会话永不过期。
func TestSessions_NoTimeout(t *testing.T) {
	m, gdb := setupSessions(t)
	setSetting(t, gdb, m, consts.ConfigWorkspaceSessionIdleMinutes, "0")

	base := time.Now()
	m.now = func() time.Time { return base }
	m.Open()
	m.now = func() time.Time { return base.Add(1000 * time.Hour) }
	assert.Equal(t, 0, m.EvictIdle())
}

// 测试内容：验证清理任务随 context 取消退出，不泄漏 goroutine。
func TestSessions_RunStopsOnCancel(t *testing.T) {
	m, _ := setupSessions(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("清理任务未在取消后退出")
	}
}

// 测试内容：验证 CloseAll 清空所有会话。
func TestSessions_CloseAll(t *testing.T) {
	m, _ := setupSessions(t)
	m.Open()
	m.Open()
	m.CloseAll()
	assert.Equal(t, 0, m.Len())
}
