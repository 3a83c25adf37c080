package media

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Rahul77977/gagan-server/config"
)

// Asset identifies a stored remote asset. PublicID is the media host's
// stable id, URL the public https location.
type Asset struct {
	PublicID string
	URL      string
}

// Uploader stores raw file bytes with the external media host. Batch
// callers must tolerate partial success: a failed upload does not roll back
// uploads that already completed, and Destroy is best effort.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// Cloudinary implements Uploader against the Cloudinary upload API.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cfg config.CloudinaryConfig) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("media: initializing cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (m *Cloudinary) Upload(ctx context.Context, data []byte, contentType string) (Asset, error) {
	res, err := m.cld.Upload.Upload(ctx, DataURI(data, contentType), uploader.UploadParams{})
	if err != nil {
		return Asset{}, err
	}
	return Asset{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (m *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	_, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// DataURI converts raw file bytes into the data-URI form the upload API
// accepts.
func DataURI(data []byte, contentType string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
