package model

// PullRequestInfo holds the pull request metadata a merge commit message
// is composed from. It is built once per run and never mutated.
type PullRequestInfo struct {
	Number     int      `json:"number"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	HeadRef    string   `json:"headRef"`
	HeadSHA    string   `json:"headSha"`
	Body       string   `json:"body,omitempty"`
	ReviewedBy []string `json:"reviewedBy,omitempty"`
}
