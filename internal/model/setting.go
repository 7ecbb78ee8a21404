package model

// Setting is a single application configuration entry.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
