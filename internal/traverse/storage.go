package traverse

import (
	"context"
	"sort"
	"strings"

	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
	"github.com/benedoc-inc/iworkdoc/internal/style"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

// sentinelRune is the attachment insertion-point marker a storage's text
// carries in place of the attachment's own content.
const sentinelRune = rune(0xFFFC)

// traverseStorage walks one text storage's paragraphs in character-index
// order, emitting list/list-item or paragraph boundary events around each
// one's merged run content.
func (e *Engine) traverseStorage(ctx context.Context, storage *tswp.StorageArchive, v visitor.Visitor) error {
	text := []rune(storage.GetText())
	starts := paragraphBoundaries(storage)
	if len(starts) == 0 {
		return nil
	}

	var currentListStyleID *uint64
	counters := map[int]int{}

	closeList := func() error {
		if currentListStyleID == nil {
			return nil
		}
		currentListStyleID = nil
		counters = map[int]int{}
		return wrapVisitorErr(v.ListEnd(ctx))
	}

	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}

		paraStyleRef := paragraphStyleRefAt(storage, start)
		resolvedPara := style.ResolveParagraph(e.store, paraStyleRef)
		defaultChar := style.ResolveParagraphDefaultCharacter(e.store, paraStyleRef)
		level := e.paragraphLevelAt(storage, start)

		var resolvedList *style.ResolvedList
		if resolvedPara.ListStyle != nil {
			resolvedList = style.ResolveList(e.store, resolvedPara.ListStyle, level)
		} else {
			resolvedList = &style.ResolvedList{}
		}

		if resolvedList.IsList() {
			var styleID *uint64
			if resolvedPara.ListStyle != nil && resolvedPara.ListStyle.HasIdentifier() {
				id := resolvedPara.ListStyle.GetIdentifier()
				styleID = &id
			}
			newList := currentListStyleID == nil || styleID == nil || *currentListStyleID != *styleID
			if newList {
				if err := closeList(); err != nil {
					return err
				}
				kind := visitor.ListBullet
				if resolvedList.Kind == tswp.ListKindNumbered {
					kind = visitor.ListNumbered
				}
				if err := wrapVisitorErr(v.ListBegin(ctx, visitor.ListInfo{Kind: kind, Level: level})); err != nil {
					return err
				}
				currentListStyleID = styleID
				counters = map[int]int{}
			}
			for lvl := range counters {
				if lvl > level {
					delete(counters, lvl)
				}
			}
			itemNumber := 0
			if resolvedList.Kind == tswp.ListKindNumbered {
				counters[level]++
				itemNumber = counters[level]
			}
			if err := wrapVisitorErr(v.ListItemBegin(ctx, visitor.ListItemInfo{Number: itemNumber})); err != nil {
				return err
			}
			if err := e.traverseParagraphContent(ctx, storage, text, start, end, defaultChar, v); err != nil {
				return err
			}
			if err := wrapVisitorErr(v.ListItemEnd(ctx)); err != nil {
				return err
			}
			continue
		}

		if err := closeList(); err != nil {
			return err
		}
		info := visitor.ParagraphInfo{
			Alignment:   resolvedPara.Alignment,
			LeftIndent:  resolvedPara.LeftIndent,
			RightIndent: resolvedPara.RightIndent,
			SpaceBefore: resolvedPara.SpaceBefore,
			SpaceAfter:  resolvedPara.SpaceAfter,
		}
		if err := wrapVisitorErr(v.ParagraphBegin(ctx, info)); err != nil {
			return err
		}
		if err := e.traverseParagraphContent(ctx, storage, text, start, end, defaultChar, v); err != nil {
			return err
		}
		if err := wrapVisitorErr(v.ParagraphEnd(ctx)); err != nil {
			return err
		}
	}

	return closeList()
}

// paragraphBoundaries returns the character indices at which each
// paragraph of storage begins, derived from its paragraph-style
// attribute table. A storage with no such table is treated as one
// paragraph spanning its entire text.
func paragraphBoundaries(storage *tswp.StorageArchive) []int {
	if storage.ParagraphStyles != nil && len(storage.ParagraphStyles.Entries) > 0 {
		out := make([]int, 0, len(storage.ParagraphStyles.Entries))
		for _, entry := range storage.ParagraphStyles.Entries {
			out = append(out, int(entry.GetCharacterIndex()))
		}
		return out
	}
	return []int{0}
}

// paragraphStyleRefAt returns the paragraph style in effect exactly at
// idx, the start of a paragraph.
func paragraphStyleRefAt(storage *tswp.StorageArchive, idx int) *tsp.Reference {
	if storage.ParagraphStyles == nil {
		return nil
	}
	var out *tsp.Reference
	for _, entry := range storage.ParagraphStyles.Entries {
		if int(entry.GetCharacterIndex()) == idx {
			out = entry.Object
		}
	}
	return out
}

// paragraphLevelAt returns the list nesting level recorded in the
// paragraph-data table for the paragraph starting at idx, or 0 if none is
// recorded.
func (e *Engine) paragraphLevelAt(storage *tswp.StorageArchive, idx int) int {
	if storage.ParagraphData == nil {
		return 0
	}
	for _, entry := range storage.ParagraphData.Entries {
		if int(entry.GetCharacterIndex()) != idx {
			continue
		}
		if pd, ok := objectstore.Deref[*tswp.ParagraphDataArchive](e.store, entry.Object); ok {
			return int(pd.GetLevel())
		}
	}
	return 0
}

// charStyleRefAt returns the character style in effect at idx: the
// closest entry at or before idx, since character-style runs (unlike
// paragraph starts) can be inherited across a storage's whole span.
func charStyleRefAt(table *tswp.AttributeTable, idx int) *tsp.Reference {
	if table == nil {
		return nil
	}
	var out *tsp.Reference
	for _, entry := range table.Entries {
		if int(entry.GetCharacterIndex()) > idx {
			break
		}
		out = entry.Object
	}
	return out
}

type hyperlinkSpan struct {
	start, end int
	url        string
}

// traverseParagraphContent merges one paragraph's text runs, attachments
// and footnote markers into a single event sequence ordered by
// character index; ties resolve text first, then attachments, then
// footnotes.
func (e *Engine) traverseParagraphContent(ctx context.Context, storage *tswp.StorageArchive, text []rune, start, end int, defaultChar *style.ResolvedCharacter, v visitor.Visitor) error {
	if start >= end {
		return nil
	}

	var hyperlinks []hyperlinkSpan
	if storage.SmartFields != nil {
		for _, entry := range storage.SmartFields.Entries {
			idx := int(entry.GetCharacterIndex())
			if idx < start || idx >= end {
				continue
			}
			if hl, ok := objectstore.Deref[*tswp.HyperlinkFieldArchive](e.store, entry.Object); ok {
				hyperlinks = append(hyperlinks, hyperlinkSpan{idx, idx + 1, hl.GetURL()})
			}
		}
	}

	attachAt := map[int]*tsp.Reference{}
	if storage.Attachments != nil {
		for _, entry := range storage.Attachments.Entries {
			idx := int(entry.GetCharacterIndex())
			if idx < start || idx >= end {
				continue
			}
			attachAt[idx] = entry.Object
		}
	}
	footAt := map[int]*tsp.Reference{}
	if storage.Footnotes != nil {
		for _, entry := range storage.Footnotes.Entries {
			idx := int(entry.GetCharacterIndex())
			if idx < start || idx >= end {
				continue
			}
			footAt[idx] = entry.Object
		}
	}

	boundarySet := map[int]bool{start: true, end: true}
	for idx := range attachAt {
		boundarySet[idx] = true
		boundarySet[idx+1] = true
	}
	for idx := range footAt {
		boundarySet[idx] = true
		boundarySet[idx+1] = true
	}
	if storage.CharacterStyles != nil {
		for _, entry := range storage.CharacterStyles.Entries {
			idx := int(entry.GetCharacterIndex())
			if idx > start && idx < end {
				boundarySet[idx] = true
			}
		}
	}
	bounds := make([]int, 0, len(boundarySet))
	for idx := range boundarySet {
		if idx >= start && idx <= end {
			bounds = append(bounds, idx)
		}
	}
	sort.Ints(bounds)

	for i := 0; i+1 < len(bounds); i++ {
		a, b := bounds[i], bounds[i+1]
		if a == b {
			continue
		}
		if ref, ok := attachAt[a]; ok && b == a+1 {
			if err := e.visitAttachment(ctx, ref, v); err != nil {
				return err
			}
			if fref, ok := footAt[a]; ok {
				if err := e.visitFootnote(ctx, fref, v); err != nil {
					return err
				}
			}
			continue
		}
		if ref, ok := footAt[a]; ok && b == a+1 {
			if err := e.visitFootnote(ctx, ref, v); err != nil {
				return err
			}
			continue
		}

		resolvedChar := mergeWithDefault(style.ResolveCharacter(e.store, charStyleRefAt(storage.CharacterStyles, a)), defaultChar)
		event := visitor.TextEvent{
			Text:          stripSentinelRunes(text[a:b]),
			FontName:      resolvedChar.FontName,
			FontSize:      resolvedChar.FontSize,
			Bold:          resolvedChar.Bold,
			Italic:        resolvedChar.Italic,
			Underline:     resolvedChar.Underline,
			Strikethrough: resolvedChar.Strikethrough,
		}
		for _, hl := range hyperlinks {
			if hl.start < b && hl.end > a {
				event.Hyperlink = &visitor.Hyperlink{URL: hl.url}
				break
			}
		}
		if err := wrapVisitorErr(v.Text(ctx, event)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) visitFootnote(ctx context.Context, ref *tsp.Reference, v visitor.Visitor) error {
	e.footnoteSeq++
	if err := wrapVisitorErr(v.FootnoteMarker(ctx, visitor.FootnoteMarkerEvent{Index: e.footnoteSeq})); err != nil {
		return err
	}
	fn, ok := objectstore.Deref[*tswp.FootnoteArchive](e.store, ref)
	if !ok || fn.Storage == nil {
		e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "footnote %d not found", ref.GetIdentifier())
		return nil
	}
	body, ok := objectstore.Deref[*tswp.StorageArchive](e.store, fn.Storage)
	if !ok {
		e.warnings.Addf(errs.LevelDegraded, errs.CodeDereferenceMiss, "footnote body storage %d not found", fn.Storage.GetIdentifier())
		return nil
	}
	return e.traverseStorage(ctx, body, v)
}

func mergeWithDefault(primary, fallback *style.ResolvedCharacter) *style.ResolvedCharacter {
	out := *primary
	if out.FontName == nil {
		out.FontName = fallback.FontName
	}
	if out.FontSize == nil {
		out.FontSize = fallback.FontSize
	}
	if out.Bold == nil {
		out.Bold = fallback.Bold
	}
	if out.Italic == nil {
		out.Italic = fallback.Italic
	}
	if out.Underline == nil {
		out.Underline = fallback.Underline
	}
	if out.Strikethrough == nil {
		out.Strikethrough = fallback.Strikethrough
	}
	if out.FontColor == nil {
		out.FontColor = fallback.FontColor
	}
	return &out
}

func stripSentinelRunes(rs []rune) string {
	var b strings.Builder
	b.Grow(len(rs))
	for _, r := range rs {
		if r == sentinelRune {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
