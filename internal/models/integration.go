package models

// PRStatus is the review state of a linked pull request.
type PRStatus string

const (
	PROpen   PRStatus = "open"
	PRClosed PRStatus = "closed"
	PRMerged PRStatus = "merged"
	PRDraft  PRStatus = "draft"
)

// GitHubPR links an issue to a pull request.
type GitHubPR struct {
	PRNumber   int      `json:"prNumber"`
	PRTitle    string   `json:"prTitle"`
	PRStatus   PRStatus `json:"prStatus"`
	PRURL      string   `json:"prUrl"`
	BranchName string   `json:"branchName"`
	RepoName   string   `json:"repoName"`
}

// FigmaFile links an issue to a design file.
type FigmaFile struct {
	FileName    string `json:"fileName"`
	FileURL     string `json:"fileUrl"`
	LastUpdated string `json:"lastUpdated"`
	PreviewURL  string `json:"previewUrl,omitempty"`
}

// SlackThread links an issue to a discussion thread.
type SlackThread struct {
	ChannelName  string `json:"channelName"`
	ThreadURL    string `json:"threadUrl"`
	MessageCount int    `json:"messageCount"`
}

// Integrations holds the external links attached to an issue, at most one per
// kind. Linking one kind leaves the others untouched.
type Integrations struct {
	GitHub *GitHubPR    `json:"github,omitempty"`
	Figma  *FigmaFile   `json:"figma,omitempty"`
	Slack  *SlackThread `json:"slack,omitempty"`
}
