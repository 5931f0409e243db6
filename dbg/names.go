package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name turns a pointer into a readable name like "BraveOtter", so that
// sub-paths and other values are easy to tell apart in debug dumps. Names are
// generated on first use and remembered until Reset. The same name does not
// refer to the same thing across runs.

var (
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]struct{}
)

func init() {
	Reset()
	petname.NonDeterministicMode()
}

// Reset forgets every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
	used = make(map[string]struct{})
}

func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("dbg.Name needs a pointer, got %T", obj))
	}
	if v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fresh()
	memo[obj] = r
	used[r] = struct{}{}
	return r
}

// fresh draws names until it finds one not yet in use, falling back to a
// numeric suffix once collisions get common.
func fresh() string {
	for attempt := 0; ; attempt++ {
		r := title(petname.Adjective()) + title(petname.Name())
		if attempt > 8 {
			r = fmt.Sprintf("%s%d", r, len(used))
		}
		if _, taken := used[r]; !taken {
			return r
		}
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
