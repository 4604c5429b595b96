package repository

import (
	"BattleFS/internal/domain"
	"BattleFS/internal/platform/config"
	"BattleFS/internal/platform/repository/bplustree"
)

type BPlusTreeObjectRepository struct {
	tree *bplustree.Tree[*domain.CompressedObject]
}

func NewBPlusTreeObjectRepository(order int) *BPlusTreeObjectRepository {
	return &BPlusTreeObjectRepository{
		tree: bplustree.New[*domain.CompressedObject](order),
	}
}

// NewObjectRepositoryFactory builds one empty index per store using the
// configured order.
func NewObjectRepositoryFactory(cfg config.Config) domain.ObjectRepositoryFactory {
	return func() domain.ObjectRepository {
		return NewBPlusTreeObjectRepository(cfg.IndexOrder)
	}
}

func (r *BPlusTreeObjectRepository) Save(name string, object *domain.CompressedObject) {
	r.tree.Insert(name, object)
}

func (r *BPlusTreeObjectRepository) Get(name string) (*domain.CompressedObject, bool) {
	return r.tree.Search(name)
}

func (r *BPlusTreeObjectRepository) Delete(name string) bool {
	return r.tree.Delete(name)
}

func (r *BPlusTreeObjectRepository) Each(visit func(name string, object *domain.CompressedObject) bool) {
	r.tree.Traverse(visit)
}

func (r *BPlusTreeObjectRepository) Len() int {
	return r.tree.Len()
}

func (r *BPlusTreeObjectRepository) Close() {
	r.tree.Teardown()
}
