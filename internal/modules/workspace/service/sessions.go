package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/metrics"
	"dam-workspace-server/internal/modules/workspace/state"
	platformservice "dam-workspace-server/internal/platform/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session 一个控制台标签页对应的工作区会话
type Session struct {
	ID        string
	Store     *state.Store
	CreatedAt time.Time
	lastSeen  atomic.Int64
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Sessions 管理所有工作区会话，空闲超时的会话由 Run 定期清理
type Sessions struct {
	*platformservice.AppService
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessions(appService *platformservice.AppService) *Sessions {
	return &Sessions{
		AppService: appService,
		sessions:   make(map[string]*Session),
		now:        time.Now,
	}
}

// Open 创建新会话，初始展示方式取自系统设置
func (m *Sessions) Open() *Session {
	id := uuid.NewString()
	style := state.DisplayStyle(m.GetString(consts.ConfigWorkspaceDefaultDisplayStyle))
	now := m.now()

	sess := &Session{
		ID: id,
		Store: state.New(
			state.WithLogger(logging.Named("workspace").With(zap.String("session", id))),
			state.WithDisplayStyle(style),
		),
		CreatedAt: now,
	}
	sess.touch(now)

	m.mu.Lock()
	m.sessions[id] = sess
	active := len(m.sessions)
	m.mu.Unlock()

	metrics.SetSessionsActive(active)
	logging.Named("workspace").Info("workspace session opened", zap.String("session", id))
	return sess
}

// Get 查找会话并刷新活跃时间，已过期的会话视为不存在
func (m *Sessions) Get(id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, platformservice.NewNotFoundError("工作区会话不存在或已过期")
	}

	now := m.now()
	if m.expired(sess, now) {
		m.remove(id)
		metrics.RecordSessionsEvicted(1)
		return nil, platformservice.NewNotFoundError("工作区会话不存在或已过期")
	}
	sess.touch(now)
	return sess, nil
}

func (m *Sessions) Close(id string) error {
	if !m.remove(id) {
		return platformservice.NewNotFoundError("工作区会话不存在或已过期")
	}
	logging.Named("workspace").Info("workspace session closed", zap.String("session", id))
	return nil
}

func (m *Sessions) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EvictIdle 清理所有空闲超时的会话，返回清理数量
func (m *Sessions) EvictIdle() int {
	now := m.now()
	var idle []string
	m.mu.RLock()
	for id, sess := range m.sessions {
		if m.expired(sess, now) {
			idle = append(idle, id)
		}
	}
	m.mu.RUnlock()

	evicted := 0
	for _, id := range idle {
		if m.remove(id) {
			evicted++
		}
	}
	if evicted > 0 {
		metrics.RecordSessionsEvicted(evicted)
		logging.Named("workspace").Info("evicted idle workspace sessions", zap.Int("count", evicted))
	}
	return evicted
}

// Run 按 interval 定期清理空闲会话，直到 ctx 结束
func (m *Sessions) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.EvictIdle()
		}
	}
}

// CloseAll 关闭全部会话，用于进程退出
func (m *Sessions) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.Store.Close()
	}
	metrics.SetSessionsActive(0)
}

func (m *Sessions) idleTimeout() time.Duration {
	return time.Duration(m.GetInt(consts.ConfigWorkspaceSessionIdleMinutes)) * time.Minute
}

// expired 超时设置为 0 或负数时会话永不过期
func (m *Sessions) expired(sess *Session, now time.Time) bool {
	timeout := m.idleTimeout()
	return timeout > 0 && now.Sub(sess.LastSeen()) > timeout
}

func (m *Sessions) remove(id string) bool {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	active := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return false
	}
	sess.Store.Close()
	metrics.SetSessionsActive(active)
	return true
}
