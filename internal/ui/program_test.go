package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/theme"
)

func TestRunProgramSubmitsCursorItem(t *testing.T) {
	items := []selector.Item[string]{
		{Label: "apple", Value: "A"},
		{Label: "banana", Value: "B"},
	}
	var out bytes.Buffer
	res, err := Run(context.Background(), items, selector.Options{}, theme.Plain(), strings.NewReader("\r"), &out)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Outcome != selector.Submitted || len(res.Items) != 1 || res.Items[0].Value != "A" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunProgramRejectsBadOptions(t *testing.T) {
	_, err := Run(context.Background(), []selector.Item[string]{{Label: "a"}}, selector.Options{Limit: -1}, nil, strings.NewReader(""), &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}
