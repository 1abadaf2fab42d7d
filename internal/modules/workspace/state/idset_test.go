package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 测试内容：验证 With/Without 返回新集合且不修改原集合。
func TestIDSet_CopyOnWrite(t *testing.T) {
	base := NewIDSet(1, 2)
	added := base.With(3)
	removed := base.Without(1)

	assert.Equal(t, []uint{1, 2}, base.Slice())
	assert.Equal(t, []uint{1, 2, 3}, added.Slice())
	assert.Equal(t, []uint{2}, removed.Slice())
}

// 测试内容：验证零值集合可直接使用。
func TestIDSet_ZeroValue(t *testing.T) {
	var s IDSet
	assert.False(t, s.Has(1))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []uint{}, s.Slice())
	assert.True(t, s.Equal(NewIDSet()))
	assert.Equal(t, 0, s.Without(1).Len())
}

// 测试内容：验证集合相等比较与 JSON 往返。
func TestIDSet_EqualAndJSON(t *testing.T) {
	a := NewIDSet(3, 1, 2)
	b := NewIDSet(1, 2, 3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.Without(2)))

	raw, err := a.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(raw))

	var decoded IDSet
	assert.NoError(t, decoded.UnmarshalJSON(raw))
	assert.True(t, decoded.Equal(a))
}
