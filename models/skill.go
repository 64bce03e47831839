package models

// Skill is a single entry on the skills page.
type Skill struct {
	ID       int    `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Level    int    `json:"level" bson:"level"`
	Module   string `json:"module,omitempty" bson:"module,omitempty"`
	Category string `json:"category" bson:"category"`
	Icon     string `json:"icon,omitempty" bson:"icon,omitempty"`
}
