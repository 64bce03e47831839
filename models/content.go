package models

// Quote is one entry in the quote rotation. The whole list is stored and
// replaced wholesale, entries are not individually addressable.
type Quote struct {
	Quote  string `json:"quote" bson:"quote"`
	Author string `json:"author" bson:"author"`
}

// Stat is one label/value/unit triple on the stats strip.
type Stat struct {
	Label string `json:"label" bson:"label"`
	Value string `json:"value" bson:"value"`
	Unit  string `json:"unit" bson:"unit"`
}
