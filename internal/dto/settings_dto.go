package dto

type SaveSettingsRequest struct {
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"`
}

type SettingsResponse struct {
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"`
}

// SaveLogoRequest carries the logo as a data URL, exactly as the upload
// surface produced it.
type SaveLogoRequest struct {
	Data string `json:"data" validate:"required"`
}

type LogoResponse struct {
	Data string `json:"data"`
}
