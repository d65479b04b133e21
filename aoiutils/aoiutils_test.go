package aoiutils

import (
	"fmt"
	"testing"
)

func TestRunPanicless(t *testing.T) {
	if paniced := RunPanicless(func() {}); paniced {
		t.Errorf("should not panic")
	}
	if paniced := RunPanicless(func() {
		panic(1)
	}); !paniced {
		t.Errorf("should panic")
	}
	RunPanicless(func() {
		panic(fmt.Errorf("bad"))
	})
}

func TestRepeatUntilPanicless(t *testing.T) {
	n := 0
	RepeatUntilPanicless(func() {
		n++
		if n < 3 {
			panic(n)
		}
	})
	if n != 3 {
		t.Errorf("should run 3 times, ran %d", n)
	}
}
