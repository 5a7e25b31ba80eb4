// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet_AllIdsRegistered(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{TraceNotFoundId, ToolFailedId, DatabaseInvalidId, ConfigLoadFailedId} {
		iss := Get(id)
		if iss == nil {
			t.Fatalf("Get(%d) returned nil", id)
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}

	if Get(Id(0)) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestIssue_DocLinksIsCopy(t *testing.T) {
	t.Parallel()

	iss := Get(TraceNotFoundId)
	links := iss.DocLinks()
	if len(links) == 0 {
		t.Fatal("expected doc links for TraceNotFoundId")
	}
	links[0] = "mutated"
	if iss.DocLinks()[0] == "mutated" {
		t.Error("DocLinks() must return a copy")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(TraceNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "latexmk") {
		t.Errorf("rendered output should mention latexmk:\n%s", out)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("rendered output should include doc links:\n%s", out)
	}
}
