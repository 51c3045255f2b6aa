package session

import (
	"sync"
)

// Collection é o cache otimista de uma coleção por identidade. As regras de
// sincronização com o banco são fixas: inserção prefixa o novo registro,
// atualização substitui o registro correspondente, remoção o retira. Cada
// mutação produz uma nova fatia; snapshots já entregues nunca são alterados.
type Collection[T any] struct {
	mu      sync.RWMutex
	mgr     *Manager
	key     func(T) string
	byOwner map[string]*snapshot[T]
}

type snapshot[T any] struct {
	gen   uint64
	items []T
}

func NewCollection[T any](mgr *Manager, key func(T) string) *Collection[T] {
	c := &Collection[T]{
		mgr:     mgr,
		key:     key,
		byOwner: make(map[string]*snapshot[T]),
	}
	mgr.register(c.reset)
	return c
}

// Snapshot devolve a coleção carregada da identidade, se houver uma válida
// para a geração corrente.
func (c *Collection[T]) Snapshot(owner string) ([]T, bool) {
	gen := c.mgr.Generation(owner)

	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.byOwner[owner]
	if !ok || snap.gen != gen {
		return nil, false
	}
	return snap.items, true
}

// Prime instala o resultado de uma busca completa. A geração capturada no
// início da busca é comparada com a corrente; uma resposta que chega depois
// de um sign-out é descartada em vez de repovoar dados de identidade velha.
func (c *Collection[T]) Prime(owner string, gen uint64, items []T) bool {
	if gen != c.mgr.Generation(owner) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byOwner[owner] = &snapshot[T]{gen: gen, items: items}
	return true
}

// Prepend insere um registro recém-criado no início da coleção.
func (c *Collection[T]) Prepend(owner string, item T) {
	c.mutate(owner, func(items []T) []T {
		next := make([]T, 0, len(items)+1)
		next = append(next, item)
		return append(next, items...)
	})
}

// Replace substitui o registro de mesma chave, campo a campo substituído
// pelo registro retornado do banco.
func (c *Collection[T]) Replace(owner string, item T) {
	id := c.key(item)
	c.mutate(owner, func(items []T) []T {
		next := make([]T, len(items))
		for i, existing := range items {
			if c.key(existing) == id {
				next[i] = item
			} else {
				next[i] = existing
			}
		}
		return next
	})
}

// Remove retira o registro de mesma chave da coleção.
func (c *Collection[T]) Remove(owner string, id string) {
	c.mutate(owner, func(items []T) []T {
		next := make([]T, 0, len(items))
		for _, existing := range items {
			if c.key(existing) != id {
				next = append(next, existing)
			}
		}
		return next
	})
}

func (c *Collection[T]) mutate(owner string, apply func([]T) []T) {
	gen := c.mgr.Generation(owner)

	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.byOwner[owner]
	if !ok || snap.gen != gen {
		// Coleção ainda não carregada nesta geração; a próxima listagem
		// busca do banco de qualquer forma.
		return
	}
	c.byOwner[owner] = &snapshot[T]{gen: gen, items: apply(snap.items)}
}

func (c *Collection[T]) reset(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byOwner, owner)
}
