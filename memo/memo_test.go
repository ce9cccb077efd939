package memo_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/langfield/langfield/memo"
)

type MemoSuite struct {
	suite.Suite
}

func TestMemoSuite(t *testing.T) {
	suite.Run(t, new(MemoSuite))
}

func (s *MemoSuite) TestGetSet() {
	cache := memo.NewCache()
	key := memo.Key{Table: "products", Attribute: "name", Language: "en"}

	_, ok := cache.Get(key)
	s.False(ok)

	value := &struct{ n int }{n: 1}
	cache.Set(key, value)

	got, ok := cache.Get(key)
	s.True(ok)
	s.Same(value, got)
}

func (s *MemoSuite) TestKeysAreDistinct() {
	cache := memo.NewCache()
	cache.Set(memo.Key{Table: "products", Attribute: "name", Language: "en"}, "en-value")
	cache.Set(memo.Key{Table: "products", Attribute: "name", Language: "ru"}, "ru-value")

	got, ok := cache.Get(memo.Key{Table: "products", Attribute: "name", Language: "ru"})
	s.True(ok)
	s.Equal("ru-value", got)

	// Source language and ordering are part of a result's identity too.
	base := memo.Key{Table: "products", Attribute: "name", Language: "en", Source: "en"}
	sorted := base
	sorted.Sorted = true
	cache.Set(base, "unsorted")
	cache.Set(sorted, "sorted")

	got, ok = cache.Get(sorted)
	s.True(ok)
	s.Equal("sorted", got)

	_, ok = cache.Get(memo.Key{Table: "products", Attribute: "name", Language: "en", Source: "ru"})
	s.False(ok)
}

func (s *MemoSuite) TestInvalidateByTable() {
	cache := memo.NewCache()
	cache.Set(memo.Key{Table: "products", Attribute: "name", Language: "en"}, 1)
	cache.Set(memo.Key{Table: "products", Attribute: "title", Language: "en"}, 2)
	cache.Set(memo.Key{Table: "categories", Attribute: "name", Language: "en"}, 3)

	cache.Invalidate("products")

	_, ok := cache.Get(memo.Key{Table: "products", Attribute: "name", Language: "en"})
	s.False(ok)
	_, ok = cache.Get(memo.Key{Table: "products", Attribute: "title", Language: "en"})
	s.False(ok)

	got, ok := cache.Get(memo.Key{Table: "categories", Attribute: "name", Language: "en"})
	s.True(ok)
	s.Equal(3, got)
}

func (s *MemoSuite) TestFlush() {
	cache := memo.NewCache()
	cache.Set(memo.Key{Table: "products", Attribute: "name", Language: "en"}, 1)
	cache.Flush()

	_, ok := cache.Get(memo.Key{Table: "products", Attribute: "name", Language: "en"})
	s.False(ok)
}
