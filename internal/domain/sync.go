package domain

// SyncResult summarizes one completed sync of an import source.
type SyncResult struct {
	ProgramID   string `json:"programId"`
	TotalItems  int    `json:"totalItems"`
	NewEpisodes int    `json:"newEpisodes"`
}
