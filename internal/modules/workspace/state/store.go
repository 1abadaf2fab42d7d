package state

import (
	"slices"
	"sync"

	"dam-workspace-server/internal/metrics"
	"dam-workspace-server/internal/model"

	"go.uber.org/zap"
)

// Store 单个工作区（一个控制台标签页）的状态容器。
// 所有修改串行执行，每次修改提交一个 Version 加一的新 Snapshot 并通知订阅者。
// 任何操作都不会失败。
type Store struct {
	mu     sync.Mutex
	snap   Snapshot
	subs   map[chan Snapshot]struct{}
	closed bool
	logger *zap.Logger
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDisplayStyle 设置初始展示方式，非法值保持 GRID
func WithDisplayStyle(style DisplayStyle) Option {
	return func(s *Store) {
		if style.Valid() {
			s.snap.DisplayStyle = style
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		snap: Snapshot{
			DisplayStyle:   DisplayGrid,
			ImageList:      []model.Image{},
			FolderList:     []model.Folder{},
			ProjectList:    []model.Project{},
			BreadcrumbList: []Breadcrumb{},
		},
		subs:   make(map[chan Snapshot]struct{}),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot 返回当前快照
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe 注册订阅者，立即收到当前快照，之后每次提交都会收到新快照。
// 通道容量为 1，消费过慢时中间版本会被合并，但最后一个版本一定会送达。
// 返回的 cancel 可重复调用；Store 关闭后通道会被关闭。
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	ch <- s.snap
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	metrics.AddSubscribers(1)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[ch]; ok {
				delete(s.subs, ch)
				close(ch)
				metrics.AddSubscribers(-1)
			}
		})
	}
	return ch, cancel
}

// Subscribers 返回当前订阅者数量
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close 关闭所有订阅通道。关闭后仍可修改状态，只是不再有订阅者。
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
		metrics.AddSubscribers(-1)
	}
}

func (s *Store) commit(op string, mutate func(next *Snapshot)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap
	mutate(&next)
	next.Version = s.snap.Version + 1
	s.snap = next

	s.publishLocked(next)
	metrics.RecordStoreCommit(op)
	s.logger.Debug("workspace commit",
		zap.String("op", op),
		zap.Uint64("version", next.Version),
		zap.Bool("selecting", next.Selecting),
	)
	return next
}

// publishLocked 向订阅者投递快照；通道已满时丢弃旧值换成新值
func (s *Store) publishLocked(snap Snapshot) {
	for ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// SetSelecting 直接覆盖 selecting，不影响选择集合。
// 下一次修改选择集合的操作会重新计算 selecting。
func (s *Store) SetSelecting(flag bool) Snapshot {
	return s.commit("set_selecting", func(next *Snapshot) {
		next.Selecting = flag
	})
}

func (s *Store) AddImageToSelected(id uint) Snapshot {
	return s.commit("add_image", func(next *Snapshot) {
		next.SelectedImages = next.SelectedImages.With(id)
		next.Selecting = true
	})
}

func (s *Store) AddFolderToSelected(id uint) Snapshot {
	return s.commit("add_folder", func(next *Snapshot) {
		next.SelectedFolders = next.SelectedFolders.With(id)
		next.Selecting = true
	})
}

// RemoveImageFromSelected 移除图片；只要还有文件夹被选中，仍处于选择模式
func (s *Store) RemoveImageFromSelected(id uint) Snapshot {
	return s.commit("remove_image", func(next *Snapshot) {
		next.SelectedImages = next.SelectedImages.Without(id)
		next.Selecting = next.hasSelection()
	})
}

func (s *Store) RemoveFolderFromSelected(id uint) Snapshot {
	return s.commit("remove_folder", func(next *Snapshot) {
		next.SelectedFolders = next.SelectedFolders.Without(id)
		next.Selecting = next.hasSelection()
	})
}

func (s *Store) ResetSelectedImages() Snapshot {
	return s.commit("reset_images", func(next *Snapshot) {
		next.SelectedImages = IDSet{}
		next.Selecting = next.hasSelection()
	})
}

func (s *Store) ResetSelectedFolders() Snapshot {
	return s.commit("reset_folders", func(next *Snapshot) {
		next.SelectedFolders = IDSet{}
		next.Selecting = next.hasSelection()
	})
}

// ExitSelectionMode 清空两个选择集合并退出选择模式
func (s *Store) ExitSelectionMode() Snapshot {
	return s.commit("exit_selection", func(next *Snapshot) {
		next.SelectedImages = IDSet{}
		next.SelectedFolders = IDSet{}
		next.Selecting = false
	})
}

func (s *Store) IsSelected(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.SelectedImages.Has(id)
}

func (s *Store) IsFolderSelected(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.SelectedFolders.Has(id)
}

// SetDisplayStyle 非 LIST/GRID 的值会被忽略，返回当前快照且不提交
func (s *Store) SetDisplayStyle(style DisplayStyle) Snapshot {
	if !style.Valid() {
		s.logger.Warn("ignored invalid display style", zap.String("style", string(style)))
		return s.Snapshot()
	}
	return s.commit("set_display_style", func(next *Snapshot) {
		next.DisplayStyle = style
	})
}

// SetProjectList 整体替换项目列表
func (s *Store) SetProjectList(list []model.Project) Snapshot {
	list = cloneList(list)
	return s.commit("set_project_list", func(next *Snapshot) {
		next.ProjectList = list
	})
}

// SetImageList 整体替换图片列表，不会与已选集合对账：
// 不在新列表中的已选 id 仍保持选中。
func (s *Store) SetImageList(list []model.Image) Snapshot {
	list = cloneList(list)
	return s.commit("set_image_list", func(next *Snapshot) {
		next.ImageList = list
	})
}

// SetFolderList 同 SetImageList
func (s *Store) SetFolderList(list []model.Folder) Snapshot {
	list = cloneList(list)
	return s.commit("set_folder_list", func(next *Snapshot) {
		next.FolderList = list
	})
}

// SetCurrentFolder nil 表示位于项目根目录
func (s *Store) SetCurrentFolder(folder *model.Folder) Snapshot {
	folder = clonePtr(folder)
	return s.commit("set_current_folder", func(next *Snapshot) {
		next.CurrentFolder = folder
	})
}

func (s *Store) SetCurrentProject(project *model.Project) Snapshot {
	project = clonePtr(project)
	return s.commit("set_current_project", func(next *Snapshot) {
		next.CurrentProject = project
	})
}

func (s *Store) SetCurrentPath(path string) Snapshot {
	return s.commit("set_current_path", func(next *Snapshot) {
		next.CurrentPath = path
	})
}

func (s *Store) SetBreadcrumbList(list []Breadcrumb) Snapshot {
	list = cloneList(list)
	return s.commit("set_breadcrumb_list", func(next *Snapshot) {
		next.BreadcrumbList = list
	})
}

// SetError 覆盖错误信息，空字符串等同于 ClearError
func (s *Store) SetError(msg string) Snapshot {
	return s.commit("set_error", func(next *Snapshot) {
		next.Error = ErrorSlot(msg)
	})
}

func (s *Store) ClearError() Snapshot {
	return s.SetError("")
}

func cloneList[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return slices.Clone(list)
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
