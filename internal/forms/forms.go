// Package forms implementa os controladores de formulário de contato e
// transação: rascunho local, validação e envio para a camada de acesso.
// Cada formulário é uma máquina de estados:
//
//	Fechado -> Editando(rascunho) -> Enviando -> Fechado (sucesso)
//	                                          -> Editando + erro (falha)
//
// Os formulários não são seguros para uso concorrente; cada instância
// pertence a uma única interação.
package forms

type State string

const (
	StateClosed     State = "CLOSED"
	StateEditing    State = "EDITING"
	StateSubmitting State = "SUBMITTING"
)

// FieldErrors associa campo a mensagem de validação. Vazio significa
// rascunho válido.
type FieldErrors map[string]string

const genericErrorMessage = "Erro inesperado. Tente novamente."
