package message

import (
	"fmt"
	"strings"

	"github.com/prkit/mergepr/pkg/model"
)

// CommitMessage is a composed merge commit message. Title and Body are
// kept separate because the GitHub merge API takes them as distinct
// parameters; Full joins them for git and for display.
type CommitMessage struct {
	Title string
	Body  string
}

// Full returns the complete commit message.
func (m CommitMessage) Full() string {
	return m.Title + "\n\n" + m.Body
}

// Compose builds the merge commit message for a pull request:
//
//	Merge '{title}' from {author}
//
//	{wrapped body}
//
//	Reviewed-by: {identity}
//
//	Closes #{number}
//
// with one Reviewed-by line per approval, in review order.
func Compose(info *model.PullRequestInfo, width int) CommitMessage {
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	b.WriteString(WrapText(info.Body, width))
	b.WriteString("\n")

	for _, approver := range info.ReviewedBy {
		b.WriteString("\nReviewed-by: ")
		b.WriteString(approver)
	}

	fmt.Fprintf(&b, "\n\nCloses #%d", info.Number)

	return CommitMessage{
		Title: fmt.Sprintf("Merge '%s' from %s", info.Title, info.Author),
		Body:  b.String(),
	}
}
