// Package cloudinary envia imagens de produto para o Cloudinary usando a
// API de upload assinado (assinatura SHA-1 dos parâmetros + api_secret).
package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// Result é o retorno relevante do upload.
type Result struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Uploader publica arquivos na conta configurada.
type Uploader struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
	now        func() time.Time
}

// NewUploader constrói o uploader. folder vazio envia para a raiz da conta.
func NewUploader(cloudName, apiKey, apiSecret, folder string) *Uploader {
	return &Uploader{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// sign calcula a assinatura exigida pelo Cloudinary: SHA-1 dos parâmetros
// ordenados alfabeticamente (folder, timestamp) concatenados com o secret.
func (u *Uploader) sign(timestamp int64) string {
	params := ""
	if u.folder != "" {
		params = "folder=" + u.folder + "&"
	}
	params += "timestamp=" + strconv.FormatInt(timestamp, 10)
	sum := sha1.Sum([]byte(params + u.apiSecret))
	return hex.EncodeToString(sum[:])
}

// Upload envia o conteúdo do arquivo e devolve a URL pública servida por CDN.
func (u *Uploader) Upload(ctx context.Context, filename string, file io.Reader) (*Result, error) {
	timestamp := u.now().Unix()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"api_key":   u.apiKey,
		"timestamp": strconv.FormatInt(timestamp, 10),
		"signature": u.sign(timestamp),
	}
	if u.folder != "" {
		fields["folder"] = u.folder
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("cloudinary: montar formulário: %w", err)
		}
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: montar formulário: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("cloudinary: copiar arquivo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("cloudinary: fechar formulário: %w", err)
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: montar request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: chamada HTTP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cloudinary: HTTP %d: %s", resp.StatusCode, string(raw))
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("cloudinary: decodificar resposta: %w", err)
	}
	return &out, nil
}
