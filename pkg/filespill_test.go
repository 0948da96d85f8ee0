package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type evaluationRow struct {
	Project   string
	FirstRank *int
	Ranks     []int
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		require.NotNil(t, spill)
		require.Equal(t, dir, filepath.Dir(spill.Path()))

		defer spill.Remove()
	})

	t.Run("NewFileSpill defaults to temp dir", func(t *testing.T) {
		spill, err := NewFileSpill[int]("")
		require.NoError(t, err)

		defer spill.Remove()

		require.Contains(t, spill.Path(), "flreduce-spill")
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val1, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", val1)

		val2, err := spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val2)

		val3, err := spill.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val3)
	})

	t.Run("AppendBatch and Len", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.Equal(t, uint64(0), spill.Len())

		require.NoError(t, spill.AppendBatch([]int{10, 20, 30, 40, 50}))
		require.NoError(t, spill.Append(60))
		require.Equal(t, uint64(6), spill.Len())

		val, err := spill.Get(4)
		require.NoError(t, err)
		require.Equal(t, 50, val)
	})

	t.Run("Range iterates all items in order", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		expected := []int{100, 200, 300}
		require.NoError(t, spill.AppendBatch(expected))

		var collected []int
		err = spill.Range(func(_ uint64, item int) error {
			collected = append(collected, item)
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, expected, collected)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		count := 0
		rangeErr := spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return errors.New("stop at index 1")
			}
			return nil
		})

		require.Error(t, rangeErr)
		require.Equal(t, 2, count)
	})

	t.Run("Range decodes each struct into a fresh value", func(t *testing.T) {
		spill, err := NewFileSpill[evaluationRow](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		first := 3
		require.NoError(t, spill.Append(evaluationRow{Project: "Lang-1", FirstRank: &first, Ranks: []int{3, 4}}))
		require.NoError(t, spill.Append(evaluationRow{Project: "Lang-2"}))

		var rows []evaluationRow
		require.NoError(t, spill.Range(func(_ uint64, item evaluationRow) error {
			rows = append(rows, item)
			return nil
		}))

		require.Len(t, rows, 2)
		require.Equal(t, 3, *rows[0].FirstRank)
		require.Nil(t, rows[1].FirstRank)
		require.Empty(t, rows[1].Ranks)
	})

	t.Run("Close keeps data readable and rejects appends", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())

		val, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, 1, val)

		require.Error(t, spill.Append(2))
	})

	t.Run("Remove deletes the file", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Remove())

		_, err = os.Stat(spill.Path())
		require.True(t, os.IsNotExist(err))
		require.NoError(t, spill.Remove())
	})
}

func TestFileSpill_EdgeCases(t *testing.T) {
	t.Run("empty filespill range returns no items", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		count := 0
		err = spill.Range(func(uint64, int) error {
			count++
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 0, count)

		_, err = spill.Get(0)
		require.Error(t, err)
	})

	t.Run("zero values round trip", func(t *testing.T) {
		spill, err := NewFileSpill[float64](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.AppendBatch([]float64{0, 1.5, 0}))

		v2, err := spill.Get(2)
		require.NoError(t, err)
		require.Equal(t, 0.0, v2)
	})
}

// BenchmarkAppend measures the performance of appending items.
func BenchmarkAppend(b *testing.B) {
	spill, err := NewFileSpill[evaluationRow](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	rank := 1
	row := evaluationRow{Project: "Lang-1", FirstRank: &rank, Ranks: []int{1, 2, 3}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spill.Append(row)
	}
}

// BenchmarkRange measures the performance of iterating all items.
func BenchmarkRange(b *testing.B) {
	spill, err := NewFileSpill[int](b.TempDir())
	if err != nil {
		b.Fatalf("failed to create filespill: %v", err)
	}
	defer spill.Close()

	for i := 0; i < 1000; i++ {
		_ = spill.Append(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = spill.Range(func(uint64, int) error {
			return nil
		})
	}
}

// FuzzAppendGet fuzzes append and get operations with strings.
func FuzzAppendGet(f *testing.F) {
	f.Add("")
	f.Add("Lang-1")

	f.Fuzz(func(t *testing.T, data string) {
		spill, err := NewFileSpill[string](t.TempDir())
		if err != nil {
			t.Skipf("setup failed: %v", err)
		}
		defer spill.Close()

		if err := spill.Append(data); err != nil {
			t.Fatalf("append failed: %v", err)
		}

		val, err := spill.Get(0)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}

		if val != data {
			t.Fatalf("value mismatch: expected %q, got %q", data, val)
		}

		if _, err := spill.Get(1); err == nil {
			t.Fatal("expected error for out of bounds get")
		}
	})
}
