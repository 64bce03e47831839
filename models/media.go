package models

// MediaKind distinguishes the two upload subdirectories.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Dir returns the uploads subdirectory name for the kind ("images" or
// "videos"), which is also the path segment in serving URLs.
func (k MediaKind) Dir() string {
	return string(k) + "s"
}

// UploadResult is the metadata returned after a successful upload. The
// stored filename is always server-generated; the client's name is kept
// only as metadata.
type UploadResult struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Type         MediaKind `json:"type"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
}

// MediaFile describes one stored file in a media listing. Size and
// modification time come from the filesystem, nothing is persisted
// separately.
type MediaFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// MediaListing is the combined image/video inventory, each list sorted
// newest first.
type MediaListing struct {
	Images []MediaFile `json:"images"`
	Videos []MediaFile `json:"videos"`
}
