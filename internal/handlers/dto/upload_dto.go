package dto

// UploadResponse representa o resultado de um upload de imagem
type UploadResponse struct {
	URL string `json:"url"`
}
