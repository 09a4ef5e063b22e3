package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Run("words are their own stem", func(t *testing.T) {
		d := New("buku", " Makan ")

		stem, ok := d.Lookup("makan")
		assert.True(t, ok)
		assert.Equal(t, "makan", stem)
		assert.True(t, d.Contains("buku"))
		assert.False(t, d.Contains("baca"))
		assert.Equal(t, 2, d.Count())
	})

	t.Run("explicit stem", func(t *testing.T) {
		d := New()
		require.NoError(t, d.Add("mengalah", "kalah"))

		stem, ok := d.Lookup("mengalah")
		assert.True(t, ok)
		assert.Equal(t, "kalah", stem)
	})

	t.Run("empty word", func(t *testing.T) {
		d := New()
		assert.ErrorIs(t, d.Add("  ", "x"), ErrEmptyWord)
		assert.ErrorIs(t, d.AddWords(map[string]string{"": "x"}), ErrEmptyWord)
		assert.Equal(t, 0, d.Count())
	})

	t.Run("add words and remove", func(t *testing.T) {
		d := New()
		require.NoError(t, d.AddWords(map[string]string{"ayun": "", "Kelas": "kelas"}))
		assert.Equal(t, map[string]string{"ayun": "ayun", "kelas": "kelas"}, d.Entries())

		d.Remove("KELAS")
		assert.False(t, d.Contains("kelas"))
		assert.Equal(t, 1, d.Count())
	})

	t.Run("replace", func(t *testing.T) {
		d := New("buku")
		require.NoError(t, d.Replace(map[string]string{"rumah": ""}))

		assert.False(t, d.Contains("buku"))
		assert.True(t, d.Contains("rumah"))

		require.Error(t, d.Replace(map[string]string{"": ""}))
		assert.True(t, d.Contains("rumah"))
	})

	t.Run("concurrent access", func(t *testing.T) {
		d := New("buku")
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = d.Add("rumah", "")
			}()
			go func() {
				defer wg.Done()
				d.Lookup("buku")
			}()
		}
		wg.Wait()
		assert.Equal(t, 2, d.Count())
	})
}

func TestLoad(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		content := `
# kata dasar
buku
Mengalah kalah

rumah
`
		entries, err := Load(strings.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"buku":     "buku",
			"mengalah": "kalah",
			"rumah":    "rumah",
		}, entries)
	})

	t.Run("too many fields", func(t *testing.T) {
		_, err := Load(strings.NewReader("buku\nsatu dua tiga\n"))
		assert.EqualError(t, err, `line 2: expected "word" or "word stem", got "satu dua tiga"`)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("ayun\nkelas\n"), 0o644))

		entries, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("no file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
