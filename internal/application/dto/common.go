package dto

// Response envelope uniforme de todas as respostas da API.
// Sucesso: {success: true, message?, total?, data}.
// Falha: {success: false, message, errors?, field?}.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Total   int      `json:"total,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"` // lista itemizada de validação
	Field   string   `json:"field,omitempty"`  // campo em conflito de unicidade
}

// OK resposta de sucesso com payload.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage resposta de sucesso com mensagem e payload.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList resposta de listagem com total.
func OKList(total int, data any) Response {
	return Response{Success: true, Total: total, Data: data}
}

// Fail resposta de falha com mensagem.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
