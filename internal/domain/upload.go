package domain

// AllowedContentTypes lists the MIME types accepted for image uploads.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// MaxUploadSize is the maximum allowed upload size in bytes (5 MiB).
const MaxUploadSize int64 = 5 * 1024 * 1024

// Upload target subdirectories under the public uploads directory.
const (
	UploadTargetProducts = "products"
	UploadTargetBrands   = "brands"
	UploadTargetSliders  = "sliders"
)

// IsAllowedContentType checks whether the given content type is allowed.
func IsAllowedContentType(contentType string) bool {
	return AllowedContentTypes[contentType]
}

// ValidUploadTargets returns the set of valid upload targets.
func ValidUploadTargets() []string {
	return []string{UploadTargetProducts, UploadTargetBrands, UploadTargetSliders}
}

// IsValidUploadTarget checks whether the given target is valid. Targets are
// used as path segments, so anything outside this set is rejected.
func IsValidUploadTarget(target string) bool {
	for _, t := range ValidUploadTargets() {
		if t == target {
			return true
		}
	}
	return false
}
