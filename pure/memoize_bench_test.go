package pure_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/likebox/pure"
)

func fullName(parts [2]string) string {
	return strings.Join(parts[:], " ")
}

func BenchmarkNaiveFullName(b *testing.B) {
	parts := [2]string{"yamada", "tarou"}
	for i := 0; i < b.N; i++ {
		_ = fullName(parts)
	}
}

func BenchmarkMemoizedFullName(b *testing.B) {
	fn := pure.MemoizeI1O1(fullName)
	parts := [2]string{"yamada", "tarou"}
	for i := 0; i < b.N; i++ {
		_ = fn(parts)
	}
}

func BenchmarkMemoizedFullNameAlternating(b *testing.B) {
	fn := pure.MemoizeI1O1(fullName)
	args := [][2]string{{"yamada", "tarou"}, {"suzuki", "ichiro"}}
	for i := 0; i < b.N; i++ {
		_ = fn(args[i%2])
	}
}
