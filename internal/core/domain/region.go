package domain

// Region is a reference record describing one game-world region. Imported in
// bulk from the external universe API and treated as append-mostly static
// data afterwards.
type Region struct {
	RegionID       int    `bson:"regionId" json:"regionId"`
	Name           string `bson:"name" json:"name"`
	Constellations []int  `bson:"constellations" json:"constellations"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`
}
