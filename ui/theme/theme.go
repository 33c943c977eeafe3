// Package theme holds the translator's dark fyne theme and phase colors.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"realtime-translator/models"
)

// Custom theme color names
const (
	ColorNameSurface        fyne.ThemeColorName = "surface"
	ColorNameSurfaceVariant fyne.ThemeColorName = "surfaceVariant"
	ColorNamePanel          fyne.ThemeColorName = "panel"
	ColorNameDivider        fyne.ThemeColorName = "divider"
	ColorNameTextSecondary  fyne.ThemeColorName = "textSecondary"

	ColorNamePhaseIdle        fyne.ThemeColorName = "phaseIdle"
	ColorNamePhaseDebouncing  fyne.ThemeColorName = "phaseDebouncing"
	ColorNamePhaseTranslating fyne.ThemeColorName = "phaseTranslating"
	ColorNamePhaseError       fyne.ThemeColorName = "phaseError"
	ColorNameListening        fyne.ThemeColorName = "listening"
)

// Custom size names
const (
	SizeNameHistoryWidth  fyne.ThemeSizeName = "historyWidth"
	SizeNameControlHeight fyne.ThemeSizeName = "controlHeight"
	SizeNameCardRadius    fyne.ThemeSizeName = "cardRadius"
	SizeNameEditorHeight  fyne.ThemeSizeName = "editorHeight"
)

// TranslatorTheme is the application's dark theme.
type TranslatorTheme struct{}

var _ fyne.Theme = (*TranslatorTheme)(nil)

// PhaseColorName maps an auto-translate phase to its theme color.
func PhaseColorName(p models.Phase) fyne.ThemeColorName {
	switch p {
	case models.PhaseDebouncing:
		return ColorNamePhaseDebouncing
	case models.PhaseTranslating:
		return ColorNamePhaseTranslating
	case models.PhaseError:
		return ColorNamePhaseError
	default:
		return ColorNamePhaseIdle
	}
}

// Color returns the color for the specified name. The variant is ignored.
func (t *TranslatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorTextPrimary
	case theme.ColorNamePrimary, theme.ColorNameButton:
		return ColorPrimary
	case theme.ColorNameInputBackground:
		return ColorInputBg
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorDivider
	case theme.ColorNamePlaceHolder:
		return ColorTextHint
	case theme.ColorNameFocus:
		return ColorFocusBorder
	case theme.ColorNameSelection:
		return WithAlpha(ColorPrimary, 80)
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNamePressed:
		return ColorPressed
	case theme.ColorNameDisabled:
		return ColorTextDisabled
	case theme.ColorNameDisabledButton:
		return ColorDisabledBg
	case theme.ColorNameScrollBar:
		return ColorScrollbar
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorDebouncing
	case theme.ColorNameShadow:
		return color.NRGBA{A: 100}
	case theme.ColorNameOverlayBackground:
		return ColorOverlay
	case theme.ColorNameMenuBackground, theme.ColorNameHeaderBackground:
		return ColorSurface
	case theme.ColorNameHyperlink:
		return ColorSecondary

	case ColorNameSurface:
		return ColorSurface
	case ColorNameSurfaceVariant:
		return ColorSurfaceVariant
	case ColorNamePanel:
		return ColorPanel
	case ColorNameDivider:
		return ColorDivider
	case ColorNameTextSecondary:
		return ColorTextSecondary
	case ColorNamePhaseIdle:
		return ColorIdle
	case ColorNamePhaseDebouncing:
		return ColorDebouncing
	case ColorNamePhaseTranslating:
		return ColorTranslating
	case ColorNamePhaseError:
		return ColorError
	case ColorNameListening:
		return ColorListening

	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

// Font returns the font for the specified style.
func (t *TranslatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon for the specified name.
func (t *TranslatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name.
func (t *TranslatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 6

	case SizeNameHistoryWidth:
		return 280
	case SizeNameControlHeight:
		return 56
	case SizeNameCardRadius:
		return 8
	case SizeNameEditorHeight:
		return 220

	default:
		return theme.DefaultTheme().Size(name)
	}
}
