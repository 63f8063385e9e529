// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"venvrun-cli/internal/issue"
)

// renderIssue writes a glamour-rendered issue card. Rendering failures are
// swallowed: the card supplements a diagnostic that was already printed.
func renderIssue(w io.Writer, id issue.Id) {
	rendered, err := issue.Get(id).Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}
