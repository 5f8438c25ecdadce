package blackboard

import (
	"sort"
)

// Blackboard 共享知识空间：键值知识加上注册的知识源
type Blackboard struct {
	name      string
	knowledge map[string]string
	sources   []KnowledgeSource
}

// New 创建空黑板
func New(name string) *Blackboard {
	return &Blackboard{
		name:      name,
		knowledge: make(map[string]string),
	}
}

func (b *Blackboard) Name() string { return b.name }

// Write 写入或覆盖一条知识
func (b *Blackboard) Write(key, value string) {
	b.knowledge[key] = value
}

// Read 读取知识
func (b *Blackboard) Read(key string) (string, bool) {
	v, ok := b.knowledge[key]
	return v, ok
}

// Remove 删除并返回一条知识
func (b *Blackboard) Remove(key string) (string, bool) {
	v, ok := b.knowledge[key]
	if ok {
		delete(b.knowledge, key)
	}
	return v, ok
}

// Clear 清空知识，知识源保留
func (b *Blackboard) Clear() {
	b.knowledge = make(map[string]string)
}

// Size 返回知识条数
func (b *Blackboard) Size() int { return len(b.knowledge) }

// Keys 返回排序后的键
func (b *Blackboard) Keys() []string {
	keys := make([]string, 0, len(b.knowledge))
	for k := range b.knowledge {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Knowledge 返回知识副本
func (b *Blackboard) Knowledge() map[string]string {
	out := make(map[string]string, len(b.knowledge))
	for k, v := range b.knowledge {
		out[k] = v
	}
	return out
}

// AddSource 注册知识源
func (b *Blackboard) AddSource(src KnowledgeSource) {
	b.sources = append(b.sources, src)
}

// Sources 按优先级从高到低返回知识源，同优先级保持注册顺序
func (b *Blackboard) Sources() []KnowledgeSource {
	out := append([]KnowledgeSource(nil), b.sources...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// =============================================================================
// 快照
// =============================================================================

// Snapshot 黑板的可持久化记录
type Snapshot struct {
	Name      string            `json:"name"`
	Knowledge map[string]string `json:"knowledge"`
	Sources   []KnowledgeSource `json:"sources,omitempty"`
}

// Snapshot 导出当前状态，知识源保持注册顺序
func (b *Blackboard) Snapshot() Snapshot {
	return Snapshot{
		Name:      b.name,
		Knowledge: b.Knowledge(),
		Sources:   append([]KnowledgeSource(nil), b.sources...),
	}
}

// Restore 从快照重建黑板
func Restore(s Snapshot) *Blackboard {
	b := New(s.Name)
	for k, v := range s.Knowledge {
		b.knowledge[k] = v
	}
	b.sources = append(b.sources, s.Sources...)
	return b
}
