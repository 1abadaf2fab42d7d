package state

import (
	"encoding/json"
	"slices"
)

// IDSet 不可变的 id 集合，所有修改都返回新集合，零值为空集合
type IDSet struct {
	ids map[uint]struct{}
}

func NewIDSet(ids ...uint) IDSet {
	if len(ids) == 0 {
		return IDSet{}
	}
	m := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return IDSet{ids: m}
}

func (s IDSet) Has(id uint) bool {
	_, ok := s.ids[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s.ids)
}

// With 返回包含 id 的新集合
func (s IDSet) With(id uint) IDSet {
	m := make(map[uint]struct{}, len(s.ids)+1)
	for k := range s.ids {
		m[k] = struct{}{}
	}
	m[id] = struct{}{}
	return IDSet{ids: m}
}

// Without 返回去掉 id 的新集合
func (s IDSet) Without(id uint) IDSet {
	m := make(map[uint]struct{}, len(s.ids))
	for k := range s.ids {
		if k != id {
			m[k] = struct{}{}
		}
	}
	return IDSet{ids: m}
}

// Slice 按升序返回全部 id
func (s IDSet) Slice() []uint {
	out := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s IDSet) Equal(other IDSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}
