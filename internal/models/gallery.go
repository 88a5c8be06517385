package models

// GalleryImage is a captioned photo shown on the public gallery.
type GalleryImage struct {
	ID      string `json:"id"`
	URL     string `json:"url" validate:"required"`
	Caption string `json:"caption,omitempty" validate:"omitempty,max=300"`
}
