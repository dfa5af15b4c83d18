package model

type VoicingRequest struct {
	Chord   string `json:"chord"`
	MaxFret int    `json:"max_fret"`
	Count   int    `json:"count"`
}

type VoicingResult struct {
	Positions Voicing  `json:"positions"`
	Notes     []string `json:"notes"`
	Bass      string   `json:"bass"`
}

type VoicingResponse struct {
	Chord    string          `json:"chord"`
	Voicings []VoicingResult `json:"voicings"`
}

type TriadNotesResponse struct {
	Chord string   `json:"chord"`
	Notes []string `json:"notes"`
	Bass  string   `json:"bass"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
