package model

type IdentifyRequestBody struct {
	Notes Notes `json:"notes"`
}

type IdentifyResponse struct {
	Label   string `json:"label"`
	Matched bool   `json:"matched"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
