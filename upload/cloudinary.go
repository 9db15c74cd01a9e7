// Package upload pushes equipment images to the asset host. Uploads are
// unsigned: the preset name is the only credential, mirroring how the
// dashboard talked to Cloudinary directly from the browser.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/ngoclaithe/camerental/config"
	"github.com/ngoclaithe/camerental/pkg/errs"
)

var ErrUploadFailed = errs.New("image upload failed")

const defaultEndpoint = "https://api.cloudinary.com/v1_1/%s/image/upload"

type Uploader struct {
	endpoint string
	preset   string
	http     *http.Client
	logger   *slog.Logger
}

func NewUploader(cfg config.UploadConfig, logger *slog.Logger) *Uploader {
	return &Uploader{
		endpoint: fmt.Sprintf(defaultEndpoint, cfg.CloudName),
		preset:   cfg.UploadPreset,
		http:     &http.Client{},
		logger:   logger,
	}
}

// NewUploaderWithEndpoint exists for tests that stub the asset host.
func NewUploaderWithEndpoint(endpoint, preset string, logger *slog.Logger) *Uploader {
	return &Uploader{
		endpoint: endpoint,
		preset:   preset,
		http:     &http.Client{},
		logger:   logger,
	}
}

type File struct {
	Name   string
	Reader io.Reader
}

// Result pairs an uploaded file's slot with either its hosted URL or the
// error that emptied it.
type Result struct {
	Name string
	URL  string
	Err  error
}

// Upload sends one file and returns its hosted URL.
func (u *Uploader) Upload(ctx context.Context, file File) (string, error) {
	body, contentType, err := u.encode(file)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return "", errs.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.http.Do(req)
	if err != nil {
		return "", errs.Mark(err, ErrUploadFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.Mark(errs.Newf("asset host returned %d", resp.StatusCode), ErrUploadFailed)
	}

	var payload struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errs.Mark(err, ErrUploadFailed)
	}
	if payload.SecureURL == "" {
		return "", errs.Mark(errs.New("asset host returned no secure_url"), ErrUploadFailed)
	}
	return payload.SecureURL, nil
}

// UploadAll uploads a batch one file at a time. A failed file is logged and
// its slot left empty; siblings keep going.
func (u *Uploader) UploadAll(ctx context.Context, files []File) []Result {
	results := make([]Result, len(files))
	for i, file := range files {
		url, err := u.Upload(ctx, file)
		if err != nil {
			u.logger.Error("image upload failed", "file", file.Name, "error", err)
			results[i] = Result{Name: file.Name, Err: err}
			continue
		}
		results[i] = Result{Name: file.Name, URL: url}
	}
	return results
}

func (u *Uploader) encode(file File) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to build multipart body")
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, "", errs.Wrap(err, "failed to read upload payload")
	}
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return nil, "", errs.Wrap(err, "failed to build multipart body")
	}
	if err := writer.Close(); err != nil {
		return nil, "", errs.Wrap(err, "failed to finish multipart body")
	}
	return &buf, writer.FormDataContentType(), nil
}
