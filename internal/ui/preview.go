package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/chapter-renamer/internal/model"
)

// PreviewList shows rename proposals as "original → proposed" rows.
// Changed names use ColorNameRenamed; rows that would not change use
// ColorNameUnchanged.
type PreviewList struct {
	list      *widget.List
	proposals []model.RenameProposal
}

// NewPreviewList creates an empty preview
func NewPreviewList() *PreviewList {
	p := &PreviewList{}
	p.list = widget.NewList(
		func() int { return len(p.proposals) },
		func() fyne.CanvasObject {
			original := widget.NewRichText(&widget.TextSegment{})
			original.Truncation = fyne.TextTruncateEllipsis
			proposed := widget.NewRichText(&widget.TextSegment{})
			proposed.Truncation = fyne.TextTruncateEllipsis
			// Border places the center object first in Objects.
			return container.NewGridWithColumns(2,
				original,
				container.NewBorder(nil, nil, widget.NewLabel(IconArrow), nil, proposed),
			)
		},
		p.updateItem,
	)
	return p
}

// Widget returns the canvas object to place in a layout
func (p *PreviewList) Widget() fyne.CanvasObject {
	return p.list
}

// SetProposals replaces the rows. Must run on the UI goroutine.
func (p *PreviewList) SetProposals(proposals []model.RenameProposal) {
	p.proposals = proposals
	p.list.UnselectAll()
	p.list.Refresh()
	p.list.ScrollToTop()
}

// Proposals returns the rows currently shown
func (p *PreviewList) Proposals() []model.RenameProposal {
	return p.proposals
}

// rowStyles returns the text styles of the original and proposed cells.
func rowStyles(proposal model.RenameProposal) (original, proposed widget.RichTextStyle) {
	if !proposal.Changed() {
		dim := widget.RichTextStyle{ColorName: ColorNameUnchanged, Inline: true}
		return dim, dim
	}
	return widget.RichTextStyle{ColorName: ColorNameOriginal, Inline: true},
		widget.RichTextStyle{ColorName: ColorNameRenamed, Inline: true, TextStyle: fyne.TextStyle{Bold: true}}
}

func setCell(rt *widget.RichText, text string, style widget.RichTextStyle) {
	rt.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: text, Style: style}}
	rt.Refresh()
}

func (p *PreviewList) updateItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(p.proposals) {
		return
	}
	proposal := p.proposals[id]

	grid := item.(*fyne.Container)
	original := grid.Objects[0].(*widget.RichText)
	right := grid.Objects[1].(*fyne.Container)
	proposed := right.Objects[0].(*widget.RichText)

	origStyle, newStyle := rowStyles(proposal)
	setCell(original, proposal.Original, origStyle)
	setCell(proposed, proposal.Proposed, newStyle)
}
