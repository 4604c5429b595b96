package repository

import (
	"fmt"
	"testing"

	"BattleFS/internal/domain"
	"BattleFS/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBPlusTreeObjectRepository(t *testing.T) {
	repo := NewBPlusTreeObjectRepository(4)

	objects := map[string]*domain.CompressedObject{}
	for i := 9; i >= 0; i-- {
		name := fmt.Sprintf("test/test_files/test_%04d.txt", i)
		objects[name] = domain.NewCompressedObject([]byte{byte(i), 0}, []byte{byte(i)})
		repo.Save(name, objects[name])
	}
	assert.Equal(t, 10, repo.Len())

	got, ok := repo.Get("test/test_files/test_0003.txt")
	require.True(t, ok)
	assert.Same(t, objects["test/test_files/test_0003.txt"], got)

	assert.True(t, repo.Delete("test/test_files/test_0003.txt"))
	assert.False(t, repo.Delete("test/test_files/test_0003.txt"))
	_, ok = repo.Get("test/test_files/test_0003.txt")
	assert.False(t, ok)

	var names []string
	repo.Each(func(name string, _ *domain.CompressedObject) bool {
		names = append(names, name)
		return true
	})
	require.Len(t, names, 9)
	assert.Equal(t, "test/test_files/test_0000.txt", names[0])
	assert.Equal(t, "test/test_files/test_0009.txt", names[8])

	repo.Close()
	assert.Equal(t, 0, repo.Len())
}

func TestNewObjectRepositoryFactory(t *testing.T) {
	factory := NewObjectRepositoryFactory(config.Config{IndexOrder: 8})

	first, second := factory(), factory()
	first.Save("a", domain.NewCompressedObject([]byte{1, 0}, []byte{1}))

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 0, second.Len(), "each store gets its own index")
	assert.Equal(t, 8, first.(*BPlusTreeObjectRepository).tree.Order())
}
