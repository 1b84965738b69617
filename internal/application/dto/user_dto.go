package dto

// LoginRequest credenciais do login do painel.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse dados públicos do usuário autenticado.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Username string `json:"username"`
}

// LoginResponse resposta do login: token + usuário.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// UploadResponse resposta do upload de imagem.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
