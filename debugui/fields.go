package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

// ReflectionCache memoises the exported fields of struct types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// Node is one line of a read-only value tree. Leaves carry Value; structs
// carry Children.
type Node struct {
	Name     string
	Value    string
	Children []Node
}

// Describe flattens the exported fields of a struct (or pointer to one) into
// a tree suitable for display.
func Describe(v any) []Node {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []Node{{Name: "value", Value: fmt.Sprint(v)}}
	}
	return describeStruct(val)
}

func describeStruct(val reflect.Value) []Node {
	var nodes []Node
	for _, f := range globalReflectionCache.GetFields(val.Type()) {
		nodes = append(nodes, describeField(f.Name, val.Field(f.Index)))
	}
	return nodes
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func describeField(name string, val reflect.Value) Node {
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return Node{Name: name, Value: "nil"}
		}
		if !val.Type().Implements(stringerType) {
			val = val.Elem()
		}
	}
	if val.Type().Implements(stringerType) && val.CanInterface() {
		return Node{Name: name, Value: val.Interface().(fmt.Stringer).String()}
	}

	switch val.Kind() {
	case reflect.Struct:
		return Node{Name: name, Children: describeStruct(val)}
	case reflect.Slice, reflect.Array:
		return Node{Name: name, Value: fmt.Sprintf("[%d items]", val.Len())}
	case reflect.Map:
		return Node{Name: name, Value: fmt.Sprintf("map[%d items]", val.Len())}
	default:
		return Node{Name: name, Value: fmt.Sprintf("%v", val.Interface())}
	}
}
