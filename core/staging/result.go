package staging

// Result reports a completed replace of one dataset.
type Result struct {
	Dataset string `json:"dataset"`
	Rows    int    `json:"rows"`
}
