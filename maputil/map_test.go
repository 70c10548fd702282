package maputil

import (
	"reflect"
	"testing"
)

// ============== MapGet 测试 ==============

func TestMapGet_KeyExists(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	v, ok := MapGet(m, "b")
	if !ok {
		t.Error("expected ok to be true")
	}
	if v != 2 {
		t.Errorf("expected v to be 2, got %d", v)
	}
}

func TestMapGet_KeyNotExists(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := MapGet(m, "notexist")
	if ok {
		t.Error("expected ok to be false")
	}
	if v != 0 {
		t.Errorf("expected v to be zero value (0), got %d", v)
	}
}

func TestMapGet_NilMap(t *testing.T) {
	var m map[string]int
	if _, ok := MapGet(m, "any"); ok {
		t.Error("expected ok to be false for nil map")
	}
}

// ============== MapBy 测试 ==============

func TestMapBy(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	list := []user{{1, "a"}, {2, "b"}, {1, "c"}}
	m := MapBy(list, func(u user) int { return u.ID }, func(u user) string { return u.Name })

	// 相同 key 后者覆盖前者
	want := map[int]string{1: "c", 2: "b"}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("expected %v, got %v", want, m)
	}
}

func TestMapBy_Empty(t *testing.T) {
	m := MapBy([]int{}, func(i int) int { return i }, func(i int) int { return i })
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

// ============== Ordered 测试 ==============

func TestOrdered_ZeroValue(t *testing.T) {
	var o Ordered[string, int]

	if o.Len() != 0 {
		t.Errorf("expected 0, got %d", o.Len())
	}
	if _, ok := o.Get("a"); ok {
		t.Error("zero value should not contain any key")
	}
	if o.Delete("a") {
		t.Error("Delete on zero value should return false")
	}

	// 零值可以直接写入
	if !o.Set("a", 1) {
		t.Error("Set should return true for new key")
	}
	if v, ok := o.Get("a"); !ok || v != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", v, ok)
	}
}

func TestOrdered_InsertionOrder(t *testing.T) {
	o := NewOrdered[int, string](0)
	o.Set(3, "c")
	o.Set(1, "a")
	o.Set(2, "b")

	if got := o.Keys(); !reflect.DeepEqual(got, []int{3, 1, 2}) {
		t.Errorf("unexpected keys order: %v", got)
	}
	if got := o.Values(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("unexpected values order: %v", got)
	}
}

func TestOrdered_SetExistingKeepsPosition(t *testing.T) {
	o := NewOrdered[string, int](4)
	o.Set("a", 1)
	o.Set("b", 2)

	if o.Set("a", 10) {
		t.Error("Set should return false for existing key")
	}
	if got := o.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("unexpected keys order: %v", got)
	}
	if v, _ := o.Get("a"); v != 10 {
		t.Errorf("expected 10, got %d", v)
	}
}

func TestOrdered_Delete(t *testing.T) {
	o := NewOrdered[int, int](0)
	for i := 0; i < 5; i++ {
		o.Set(i, i*10)
	}

	if !o.Delete(2) {
		t.Error("Delete should return true for existing key")
	}
	if o.Delete(2) {
		t.Error("second Delete should return false")
	}
	if o.Has(2) {
		t.Error("deleted key should not exist")
	}
	if o.Len() != 4 {
		t.Errorf("expected 4, got %d", o.Len())
	}
	if got := o.Keys(); !reflect.DeepEqual(got, []int{0, 1, 3, 4}) {
		t.Errorf("unexpected keys: %v", got)
	}
}

func TestOrdered_DeleteCompacts(t *testing.T) {
	o := NewOrdered[int, int](0)
	for i := 0; i < 10; i++ {
		o.Set(i, i)
	}

	// 删除一半触发压缩
	for i := 0; i < 5; i++ {
		o.Delete(i)
	}
	if len(o.entries) != o.Len() {
		t.Errorf("expected entries to be compacted, len(entries)=%d, Len()=%d", len(o.entries), o.Len())
	}

	// 压缩后 index 仍然正确
	for i := 5; i < 10; i++ {
		v, ok := o.Get(i)
		if !ok || v != i {
			t.Errorf("expected (%d, true), got (%d, %v)", i, v, ok)
		}
	}

	// 压缩后新插入的 key 追加到末尾
	o.Set(100, 100)
	if got := o.Keys(); !reflect.DeepEqual(got, []int{5, 6, 7, 8, 9, 100}) {
		t.Errorf("unexpected keys after compaction: %v", got)
	}
}

func TestOrdered_Range(t *testing.T) {
	o := NewOrdered[string, int](0)
	o.Set("a", 1)
	o.Set("b", 2)
	o.Set("c", 3)
	o.Delete("b")

	var keys []string
	o.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	if !reflect.DeepEqual(keys, []string{"a", "c"}) {
		t.Errorf("unexpected keys: %v", keys)
	}

	// 提前终止
	count := 0
	o.Range(func(k string, v int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("expected Range to stop after 1, got %d", count)
	}
}

func TestOrdered_Clear(t *testing.T) {
	o := NewOrdered[string, int](0)
	o.Set("a", 1)
	o.Set("b", 2)

	o.Clear()

	if o.Len() != 0 {
		t.Errorf("expected 0 after Clear, got %d", o.Len())
	}
	if o.Has("a") {
		t.Error("key should not exist after Clear")
	}
	o.Set("c", 3)
	if got := o.Keys(); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("unexpected keys: %v", got)
	}
}
