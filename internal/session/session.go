// Package session mantém o estado de sessão por identidade: o ciclo de vida
// da identidade ativa e as coleções em memória sincronizadas de forma
// otimista com o banco. Toda troca de identidade descarta as coleções da
// identidade anterior.
package session

import (
	"sync"
)

type State string

const (
	StateUnresolved      State = "UNRESOLVED"
	StateAuthenticated   State = "AUTHENTICATED"
	StateUnauthenticated State = "UNAUTHENTICATED"
)

// Manager controla as sessões ativas. Cada identidade tem uma geração; a
// geração é incrementada no sign-out ou troca de identidade, o que invalida
// qualquer resposta em voo iniciada na geração anterior.
type Manager struct {
	mu      sync.Mutex
	gens    map[string]uint64
	active  map[string]bool
	onReset []func(owner string)
}

func NewManager() *Manager {
	return &Manager{
		gens:   make(map[string]uint64),
		active: make(map[string]bool),
	}
}

// Resolve registra a identidade como autenticada e devolve o estado da
// sessão. Identidade vazia resolve como não autenticada.
func (m *Manager) Resolve(owner string) State {
	if owner == "" {
		return StateUnauthenticated
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[owner] = true
	return StateAuthenticated
}

func (m *Manager) StateOf(owner string) State {
	if owner == "" {
		return StateUnauthenticated
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active[owner] {
		return StateAuthenticated
	}
	return StateUnresolved
}

// Generation devolve a geração corrente da identidade. Buscas em andamento
// devem capturar a geração antes de ir ao banco e repassá-la ao Prime da
// coleção; respostas de gerações antigas são descartadas.
func (m *Manager) Generation(owner string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gens[owner]
}

// SignOut encerra a sessão da identidade: incrementa a geração e limpa as
// coleções registradas. Nunca mantém dados de uma identidade anterior.
func (m *Manager) SignOut(owner string) {
	if owner == "" {
		return
	}

	m.mu.Lock()
	m.gens[owner]++
	delete(m.active, owner)
	hooks := make([]func(string), len(m.onReset))
	copy(hooks, m.onReset)
	m.mu.Unlock()

	for _, reset := range hooks {
		reset(owner)
	}
}

func (m *Manager) register(reset func(owner string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReset = append(m.onReset, reset)
}
