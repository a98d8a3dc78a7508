package cache

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestLRU_SetGet(t *testing.T) {
	l := NewLRU[int, string](128)
	for i := 0; i < 64; i++ {
		if _, replaced := l.Set(i, fmt.Sprintf("value-%0.6d", i)); replaced {
			t.Errorf("Set(%d): unexpected replace", i)
		}
	}
	for i := 0; i < 64; i++ {
		got, ok := l.Get(i)
		if want := fmt.Sprintf("value-%0.6d", i); !ok || got != want {
			t.Errorf("Get(%d) = %q, %v, want %q", i, got, ok, want)
		}
	}
	prev, replaced := l.Set(3, "three")
	if !replaced || prev != "value-000003" {
		t.Errorf("Set() got = %q, %v", prev, replaced)
	}
	if _, ok := l.Get(1000); ok {
		t.Errorf("Get() found a missing key")
	}
	if l.Len() != 64 {
		t.Errorf("Len() = %d, want 64", l.Len())
	}
}

func TestLRU_Evict(t *testing.T) {
	l := NewLRU[string, int](3)
	l.Set("a", 1)
	l.Set("b", 2)
	l.Set("c", 3)
	l.Get("a") // a is now the most recent
	l.Set("d", 4)

	if _, ok := l.Get("b"); ok {
		t.Errorf("expected b to be evicted")
	}
	var keys []string
	l.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	if want := []string{"d", "a", "c"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("Range() = %v, want %v", keys, want)
	}
	if s := l.Stats(); s.Evictions != 1 {
		t.Errorf("Stats().Evictions = %d, want 1", s.Evictions)
	}
}

func TestLRU_Del(t *testing.T) {
	l := NewLRU[int, int](0)
	l.Set(1, 10)
	if v, ok := l.Del(1); !ok || v != 10 {
		t.Errorf("Del() = %d, %v", v, ok)
	}
	if _, ok := l.Del(1); ok {
		t.Errorf("Del() removed a key twice")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestLRU_GetOrLoad(t *testing.T) {
	l := NewLRU[string, int](8)
	var calls int
	load := func(k string) int {
		calls++
		return len(k)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v := l.GetOrLoad("pattern", load); v != 7 {
				t.Errorf("GetOrLoad() = %d, want 7", v)
			}
		}()
	}
	wg.Wait()
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
	if s := l.Stats(); s.Hits != 15 || s.Misses != 1 {
		t.Errorf("Stats() = %+v", s)
	}
}
