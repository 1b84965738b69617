package http

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/dto"
	"github.com/seu-usuario/gestor-api/internal/infrastructure/cloudinary"
)

// maxImageSize limite de 5 MB por imagem de produto.
const maxImageSize = 5 << 20

// ImageUploader publica a imagem num CDN e devolve a URL pública.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*cloudinary.Result, error)
}

// UploadHandler atende o upload de imagens de produto.
type UploadHandler struct {
	uploader ImageUploader
}

// NewUploadHandler constrói o handler.
func NewUploadHandler(uploader ImageUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload POST /api/upload-image (multipart, campo "image")
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Nenhuma imagem enviada."))
	}
	if fileHeader.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Imagem excede o tamanho máximo de 5 MB."))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Não foi possível ler a imagem enviada."))
	}
	defer file.Close()

	result, err := h.uploader.Upload(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Falha ao enviar a imagem."))
	}

	return c.JSON(dto.UploadResponse{
		Success:  true,
		Message:  "Imagem enviada com sucesso!",
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	})
}
