package models

// AspectRatios is the set of values the aspectRatio field may take.
var AspectRatios = []string{"16:9", "9:16", "1:1", "4:3", "21:9"}

// DefaultAspectRatio is applied when a payload omits the field.
const DefaultAspectRatio = "16:9"

// Project represents a single portfolio entry. IDs are small integers
// allocated per collection, not database object ids.
type Project struct {
	ID          int      `json:"id" bson:"id"`
	Title       string   `json:"title" bson:"title"`
	Category    string   `json:"category" bson:"category"`
	Description string   `json:"description" bson:"description"`
	Thumbnail   string   `json:"thumbnail" bson:"thumbnail"`
	VideoURL    string   `json:"videoUrl" bson:"videoUrl"`
	Featured    bool     `json:"featured" bson:"featured"`
	Tags        []string `json:"tags" bson:"tags"`
	Year        int      `json:"year,omitempty" bson:"year,omitempty"`
	AspectRatio string   `json:"aspectRatio" bson:"aspectRatio"`
}

// ValidAspectRatio reports whether s is one of the recognized ratios.
func ValidAspectRatio(s string) bool {
	for _, r := range AspectRatios {
		if s == r {
			return true
		}
	}
	return false
}
