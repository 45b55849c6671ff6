package models

// SyncReport tallies the outcome of one reconciliation pass.
type SyncReport struct {
	// Deleted counts contacts removed from the server (or dropped locally
	// because they never reached it) during the deletion phase.
	Deleted int `json:"deleted"`
	// Pushed counts contacts created or updated on the server.
	Pushed int `json:"pushed"`

	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// OK reports whether the pass converged: true only when no record failed.
func (r SyncReport) OK() bool {
	return r.Failed == 0
}
