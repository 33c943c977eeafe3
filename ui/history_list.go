package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"realtime-translator/models"
)

const historyPreviewRunes = 48

// HistoryList shows past translations newest first. Selecting a row
// recalls it into the session.
type HistoryList struct {
	records models.HistoryLog
	list    *widget.List

	onSelected func(index int)
	onClear    func()
}

// NewHistoryList creates the list with its selection and clear callbacks.
func NewHistoryList(onSelected func(int), onClear func()) *HistoryList {
	hl := &HistoryList{
		onSelected: onSelected,
		onClear:    onClear,
	}

	hl.list = widget.NewList(
		func() int { return len(hl.records) },
		func() fyne.CanvasObject {
			langs := widget.NewLabel("auto → es")
			langs.TextStyle = fyne.TextStyle{Italic: true}
			langs.SizeName = theme.SizeNameCaptionText
			return container.NewVBox(
				langs,
				widget.NewLabel("input"),
				widget.NewLabel("output"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if int(id) >= len(hl.records) {
				return
			}
			r := hl.records[id]
			box := obj.(*fyne.Container)
			box.Objects[0].(*widget.Label).SetText(historyCaption(r))
			box.Objects[1].(*widget.Label).SetText(preview(r.Input))
			box.Objects[2].(*widget.Label).SetText(preview(r.Output))
		},
	)

	hl.list.OnSelected = func(id widget.ListItemID) {
		hl.list.UnselectAll()
		if hl.onSelected != nil {
			hl.onSelected(int(id))
		}
	}

	return hl
}

// SetRecords replaces the displayed history.
func (hl *HistoryList) SetRecords(records models.HistoryLog) {
	hl.records = records
	hl.list.Refresh()
}

// Len returns the number of displayed records.
func (hl *HistoryList) Len() int {
	return len(hl.records)
}

// Select recalls the record at index as a tap would.
func (hl *HistoryList) Select(index int) {
	hl.list.Select(widget.ListItemID(index))
}

// Build returns the list with its header and Clear button.
func (hl *HistoryList) Build() fyne.CanvasObject {
	title := widget.NewLabel("History")
	title.TextStyle = fyne.TextStyle{Bold: true}

	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		if hl.onClear != nil {
			hl.onClear()
		}
	})
	clearBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, title, clearBtn)
	return container.NewBorder(header, nil, nil, nil, hl.list)
}

func historyCaption(r models.TranslationRecord) string {
	return r.Source + " → " + r.Target + "  ·  " + r.Time().Format("Jan 2 15:04")
}

// preview collapses whitespace and truncates to a single short line.
func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > historyPreviewRunes {
		return string(r[:historyPreviewRunes]) + "…"
	}
	return s
}
