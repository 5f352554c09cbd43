package model

// DefaultBusinessName is used wherever settings hold no business name yet
// (receipt headers, session IDs, export filenames).
const DefaultBusinessName = "NagadiPOS"

// Settings is the process-wide register configuration, mutated only through
// an explicit save.
type Settings struct {
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{BusinessName: "", Currency: "Rs."}
}

// DisplayBusinessName resolves the name printed on receipts and embedded in
// session IDs, falling back to the default brand when unset.
func (s Settings) DisplayBusinessName() string {
	if s.BusinessName == "" {
		return DefaultBusinessName
	}
	return s.BusinessName
}
