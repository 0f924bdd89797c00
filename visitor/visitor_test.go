package visitor

import (
	"context"
	"testing"
)

func TestBaseVisitorIsAllNoOp(t *testing.T) {
	ctx := context.Background()
	v := BaseVisitor{}

	if err := v.DocumentBegin(ctx, DocumentInfo{Kind: WordProcessor}); err != nil {
		t.Errorf("DocumentBegin: %v", err)
	}
	if err := v.ParagraphBegin(ctx, ParagraphInfo{}); err != nil {
		t.Errorf("ParagraphBegin: %v", err)
	}
	if err := v.Text(ctx, TextEvent{Text: "hello"}); err != nil {
		t.Errorf("Text: %v", err)
	}
	if err := v.Cell(ctx, CellEvent{Column: 0, Empty: true}); err != nil {
		t.Errorf("Cell: %v", err)
	}
}

// recordingVisitor demonstrates overriding only the events a caller
// cares about via embedding, per the package's default-no-op contract.
type recordingVisitor struct {
	BaseVisitor
	texts []string
}

func (r *recordingVisitor) Text(_ context.Context, event TextEvent) error {
	r.texts = append(r.texts, event.Text)
	return nil
}

func TestEmbeddingOverridesOnlyOneMethod(t *testing.T) {
	ctx := context.Background()
	r := &recordingVisitor{}
	var v Visitor = r

	if err := v.DocumentBegin(ctx, DocumentInfo{}); err != nil {
		t.Fatalf("DocumentBegin: %v", err)
	}
	if err := v.Text(ctx, TextEvent{Text: "a"}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if err := v.Text(ctx, TextEvent{Text: "b"}); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if len(r.texts) != 2 || r.texts[0] != "a" || r.texts[1] != "b" {
		t.Fatalf("texts = %v, want [a b]", r.texts)
	}
}
