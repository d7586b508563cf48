package models

// SyncResult counts what one reconciliation pass changed in the local store.
type SyncResult struct {
	// Inserted is the number of remote users copied into the local store.
	Inserted int `json:"inserted"`
	// Updated is the number of local rows rewritten from the remote copy.
	Updated int `json:"updated"`
	// Failed is the number of users that could not be written locally.
	Failed int `json:"failed"`
}

// Changed reports whether the pass wrote anything.
func (r SyncResult) Changed() bool {
	return r.Inserted > 0 || r.Updated > 0
}
