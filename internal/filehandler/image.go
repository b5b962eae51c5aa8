package filehandler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"
)

// ImageMetadata holds the EXIF fields worth surfacing to the model when
// analyzing an uploaded photo. Knowing where and when a shot was taken
// noticeably improves analysis and caption quality.
type ImageMetadata struct {
	Latitude  float64
	Longitude float64
	HasGPS    bool

	DateTaken time.Time
	HasDate   bool

	CameraMake  string
	CameraModel string
}

// ExtractImageMetadata parses EXIF metadata from in-memory image bytes.
// JPEG, HEIC, and TIFF are supported; images without usable metadata return
// an error and the caller proceeds without context.
func ExtractImageMetadata(data []byte) (*ImageMetadata, error) {
	exifData, err := imagemeta.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode EXIF metadata: %w", err)
	}

	meta := &ImageMetadata{}

	gps := exifData.GPS
	if gps.Latitude() != 0 || gps.Longitude() != 0 {
		meta.Latitude = gps.Latitude()
		meta.Longitude = gps.Longitude()
		meta.HasGPS = true
	}

	// Date fallback chain: DateTimeOriginal > CreateDate > ModifyDate.
	switch {
	case !exifData.DateTimeOriginal().IsZero():
		meta.DateTaken = exifData.DateTimeOriginal()
		meta.HasDate = true
	case !exifData.CreateDate().IsZero():
		meta.DateTaken = exifData.CreateDate()
		meta.HasDate = true
	case !exifData.ModifyDate().IsZero():
		meta.DateTaken = exifData.ModifyDate()
		meta.HasDate = true
	}

	meta.CameraMake = strings.TrimSpace(exifData.Make)
	meta.CameraModel = strings.TrimSpace(exifData.Model)

	log.Debug().
		Bool("has_gps", meta.HasGPS).
		Bool("has_date", meta.HasDate).
		Msg("Image metadata extraction complete")

	return meta, nil
}

// PromptContext formats the metadata as a text block for inclusion in an
// analysis prompt. Returns "" when nothing useful was extracted.
func (m *ImageMetadata) PromptContext() string {
	var sb strings.Builder

	if m.HasGPS {
		sb.WriteString(fmt.Sprintf("Photo location: %.6f, %.6f\n", m.Latitude, m.Longitude))
	}
	if m.HasDate {
		sb.WriteString(fmt.Sprintf("Photo taken: %s\n", m.DateTaken.Format("Monday, January 2, 2006 at 3:04 PM")))
	}
	if m.CameraMake != "" || m.CameraModel != "" {
		sb.WriteString(fmt.Sprintf("Camera: %s %s\n", m.CameraMake, m.CameraModel))
	}

	return sb.String()
}
