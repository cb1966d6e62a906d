package domain

// ConfigEntry is a generic key/value operational setting, e.g. the base URL
// and user-agent used when talking to the external universe API.
type ConfigEntry struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}
