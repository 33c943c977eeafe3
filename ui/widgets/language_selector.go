package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"realtime-translator/internal/text"
)

// LanguageSelector is a dropdown over a fixed language list.
// With an empty Label it renders as the bare select.
type LanguageSelector struct {
	widget.BaseWidget

	Label     string
	Languages []text.Language
	OnChanged func(code string)

	selected string
	sel      *widget.Select
	syncing  bool
}

// NewLanguageSelector creates a labelled selector.
func NewLanguageSelector(label string, languages []text.Language, onChanged func(code string)) *LanguageSelector {
	s := &LanguageSelector{
		Label:     label,
		Languages: languages,
		OnChanged: onChanged,
	}

	options := make([]string, len(languages))
	for i, lang := range languages {
		options[i] = lang.Name
	}
	s.sel = widget.NewSelect(options, s.onSelect)
	if len(languages) > 0 {
		s.SetSelected(languages[0].Code)
	}

	s.ExtendBaseWidget(s)
	return s
}

// NewCompactLanguageSelector creates a selector without a label.
func NewCompactLanguageSelector(languages []text.Language, onChanged func(code string)) *LanguageSelector {
	return NewLanguageSelector("", languages, onChanged)
}

func (s *LanguageSelector) onSelect(name string) {
	for _, lang := range s.Languages {
		if lang.Name != name {
			continue
		}
		s.selected = lang.Code
		if !s.syncing && s.OnChanged != nil {
			s.OnChanged(lang.Code)
		}
		return
	}
}

// SetSelected selects code without firing OnChanged. Unknown codes are ignored.
func (s *LanguageSelector) SetSelected(code string) {
	for _, lang := range s.Languages {
		if lang.Code == code {
			s.syncing = true
			s.sel.SetSelected(lang.Name)
			s.syncing = false
			s.selected = code
			return
		}
	}
}

// Select picks the language by display name as a user would.
func (s *LanguageSelector) Select(name string) {
	s.sel.SetSelected(name)
}

// GetSelected returns the selected language code.
func (s *LanguageSelector) GetSelected() string {
	return s.selected
}

// CreateRenderer implements fyne.Widget
func (s *LanguageSelector) CreateRenderer() fyne.WidgetRenderer {
	if s.Label == "" {
		return widget.NewSimpleRenderer(s.sel)
	}
	return widget.NewSimpleRenderer(container.NewVBox(widget.NewLabel(s.Label), s.sel))
}
