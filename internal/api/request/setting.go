package request

// UpdateSettingRequest is the payload for storing a setting value.
type UpdateSettingRequest struct {
	Value string `json:"value"`
}
