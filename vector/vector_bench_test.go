package vector

import "testing"

func BenchmarkAppend(b *testing.B) {
	b.ReportAllocs()
	v := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := v.Append(i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromSlice(b *testing.B) {
	src := make([]int, 1024)
	for i := range src {
		src[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromSlice(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClone(b *testing.B) {
	v, err := FromSlice(make([]int, 1024))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.Clone(); err != nil {
			b.Fatal(err)
		}
	}
}
