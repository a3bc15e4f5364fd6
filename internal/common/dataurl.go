package common

import (
	"encoding/base64"
	"strings"
)

// Listing photos are stored inline as base64 data URIs, there is no
// object storage. ValidateDataURI only checks the shape so malformed
// uploads fail at the boundary instead of persisting as garbage; size
// and format are deliberately not enforced.
func ValidateDataURI(uri string) error {
	if !strings.HasPrefix(uri, "data:") {
		return NewValidationError("image must be a data URI")
	}

	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return NewValidationError("malformed data URI")
	}

	meta := rest[:sep]
	payload := rest[sep+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return NewValidationError("image data must be base64 encoded")
	}

	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return NewValidationError("image data is not valid base64")
	}

	return nil
}

// DataURIMimeType extracts the media type from a data URI, falling back
// to image/jpeg when none is declared.
func DataURIMimeType(uri string) string {
	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "image/jpeg"
	}

	meta := strings.TrimSuffix(rest[:sep], ";base64")
	if meta == "" {
		return "image/jpeg"
	}
	return meta
}
