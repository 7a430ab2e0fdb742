package service

// CodeService defines the interface for issuing device pairing codes.
type CodeService interface {
	// GenerateCode produces a fixed-length code not present in existing.
	// It never fails: after a bounded number of random draws it falls back
	// to a time-derived value, accepting a negligible collision risk.
	GenerateCode(existing map[string]struct{}) string
}
