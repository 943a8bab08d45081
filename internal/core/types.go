package core

// signalResponse is the wire shape of a Core /signal reply.
type signalResponse struct {
	Success bool   `json:"success"`
	NodeID  int    `json:"node_id"`
	Error   string `json:"error"`
}

// GraphStatus is the Core's /status reply. Missing fields decode to
// zero counts.
type GraphStatus struct {
	NodeCount         int `json:"node_count"`
	EdgeCount         int `json:"edge_count"`
	StableEdges       int `json:"stable_edges"`
	DensityMillionths int `json:"density_millionths"`
}

// StageInfo is the Core's /stage reply. Extra fields are ignored.
type StageInfo struct {
	Stage           int    `json:"stage"`
	Name            string `json:"name"`
	ProgressPercent int    `json:"progress_percent"`
}
