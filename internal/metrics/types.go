package metrics

import (
	"encoding/json"
	"strconv"
	"time"
)

const (
	UnitMilliseconds = "ms"
	UnitMegabytes    = "MB"
	UnitBytes        = "bytes"
	UnitScore        = "score"
	UnitCount        = "count"
)

type Sample struct {
	Name  string
	Value float64
	Unit  string
	Time  time.Time
	Tags  Tags
}

type tagKind uint8

const (
	kindString tagKind = iota
	kindInt
	kindFloat
	kindBool
)

// TagValue holds one of string, int64, float64 or bool.
type TagValue struct {
	kind tagKind
	str  string
	num  int64
	flt  float64
}

type Tag struct {
	Key   string
	Value TagValue
}

func String(key, value string) Tag {
	return Tag{Key: key, Value: TagValue{kind: kindString, str: value}}
}

func Int(key string, value int64) Tag {
	return Tag{Key: key, Value: TagValue{kind: kindInt, num: value}}
}

func Float(key string, value float64) Tag {
	return Tag{Key: key, Value: TagValue{kind: kindFloat, flt: value}}
}

func Bool(key string, value bool) Tag {
	v := TagValue{kind: kindBool}
	if value {
		v.num = 1
	}
	return Tag{Key: key, Value: v}
}

func (v TagValue) Any() any {
	switch v.kind {
	case kindInt:
		return v.num
	case kindFloat:
		return v.flt
	case kindBool:
		return v.num == 1
	default:
		return v.str
	}
}

func (v TagValue) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.num == 1)
	default:
		return v.str
	}
}

type Tags []Tag

func (t Tags) Get(key string) (TagValue, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Key == key {
			return t[i].Value, true
		}
	}
	return TagValue{}, false
}

// MarshalJSON encodes the tags as a flat object. Later tags win on duplicate keys.
func (t Tags) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(t))
	for _, tag := range t {
		m[tag.Key] = tag.Value.Any()
	}
	return json.Marshal(m)
}

type sampleJSON struct {
	Name  string    `json:"metric_name"`
	Value float64   `json:"metric_value"`
	Unit  string    `json:"metric_unit"`
	Tags  Tags      `json:"tags"`
	Time  time.Time `json:"measured_at"`
}

func (s Sample) MarshalJSON() ([]byte, error) {
	tags := s.Tags
	if tags == nil {
		tags = Tags{}
	}
	return json.Marshal(sampleJSON{
		Name:  s.Name,
		Value: s.Value,
		Unit:  s.Unit,
		Tags:  tags,
		Time:  s.Time,
	})
}

type MemoryStats struct {
	HeapAlloc uint64
	HeapInuse uint64
	HeapSys   uint64
}
