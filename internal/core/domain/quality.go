package domain

// QualityReport is the outcome of the pre-OCR image screen. Warnings are
// advisory; Acceptable=false means the upload should be rejected.
type QualityReport struct {
	Acceptable bool     `json:"acceptable"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	Brightness float64  `json:"brightness,omitempty"`
	Contrast   float64  `json:"contrast,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}
