package report

import (
	"bytes"
	"encoding/json"
)

// CountMap — 삽입 순서를 유지하는 카운트 맵.
// 차트 범례 순서가 데이터 등장 순서를 따라가야 해서 map 만으로는 안 된다.
type CountMap struct {
	keys   []string
	counts map[string]int
}

func NewCountMap(keys ...string) *CountMap {
	m := &CountMap{counts: make(map[string]int)}
	for _, k := range keys {
		m.ensure(k)
	}
	return m
}

func (m *CountMap) ensure(key string) {
	if _, ok := m.counts[key]; !ok {
		m.keys = append(m.keys, key)
		m.counts[key] = 0
	}
}

// Add 는 키의 카운트를 1 올린다. 처음 보는 키는 뒤에 붙는다.
func (m *CountMap) Add(key string) {
	m.ensure(key)
	m.counts[key]++
}

func (m *CountMap) Get(key string) int {
	return m.counts[key]
}

// Keys 는 첫 등장 순서의 키 목록을 돌려준다.
func (m *CountMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *CountMap) Sum() int {
	total := 0
	for _, v := range m.counts {
		total += v
	}
	return total
}

// MarshalJSON 은 키를 삽입 순서대로 내보낸다.
func (m *CountMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(m.counts[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
