package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"barbershop-backend/booking"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Upload folders accepted by the admin panel.
var UploadFolders = []string{"branding", "cuts", "products"}

var (
	ErrUnknownFolder      = errors.New("unknown upload folder")
	ErrStorageUnavailable = errors.New("image storage not configured")
)

type UploadResult struct {
	PublicURL string `json:"publicUrl"`
	Path      string `json:"path"`
}

// ImageUploader stores admin images and hands back a public URL.
type ImageUploader interface {
	Upload(ctx context.Context, folder, filename string, file io.Reader) (UploadResult, error)
	Remove(ctx context.Context, path string) error
}

func ValidFolder(folder string) bool {
	for _, f := range UploadFolders {
		if f == folder {
			return true
		}
	}
	return false
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9\-_]+`)
	repeatedDashes      = regexp.MustCompile(`-+`)
)

// SanitizeFilename turns an uploaded file name into a collision-free object
// name: safe lowercase base, upload time, six random characters, original
// extension.
func SanitizeFilename(name string, now time.Time) string {
	name = strings.ToLower(strings.TrimSpace(name))
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	base = booking.StripAccents(base)
	base = unsafeFilenameChars.ReplaceAllString(base, "-")
	base = repeatedDashes.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if len(base) > 60 {
		base = base[:60]
	}
	if base == "" {
		base = "file"
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	if ext == "" || ext == "." {
		ext = ".png"
	}
	return fmt.Sprintf("%s-%d-%s%s", base, now.UnixMilli(), suffix, ext)
}

// CloudinaryUploader keeps images under <siteKey>/<folder>/ in Cloudinary.
type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	siteKey string
	now     func() time.Time
}

func NewCloudinaryUploader(cloudinaryURL, siteKey string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, ErrStorageUnavailable
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, siteKey: siteKey, now: time.Now}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, folder, filename string, file io.Reader) (UploadResult, error) {
	if !ValidFolder(folder) {
		return UploadResult{}, ErrUnknownFolder
	}
	name := SanitizeFilename(filename, u.now())
	overwrite := false
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       u.siteKey + "/" + folder,
		PublicID:     strings.TrimSuffix(name, filepath.Ext(name)),
		Overwrite:    &overwrite,
		ResourceType: "image",
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload image: %w", err)
	}
	if res.Error.Message != "" {
		return UploadResult{}, fmt.Errorf("upload image: %s", res.Error.Message)
	}
	return UploadResult{PublicURL: res.SecureURL, Path: res.PublicID}, nil
}

func (u *CloudinaryUploader) Remove(ctx context.Context, path string) error {
	if !strings.HasPrefix(path, u.siteKey+"/") {
		return fmt.Errorf("path %q is outside this site", path)
	}
	res, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     path,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("remove image: %s", res.Error.Message)
	}
	return nil
}
