package layouts

import (
	"fyne.io/fyne/v2"
)

// DrawerLayout places a fixed-width drawer on the right of the content.
// A hidden drawer gives its width back to the content.
// Objects: [0] = content, [1] = drawer.
type DrawerLayout struct {
	DrawerWidth float32
	Padding     float32
}

// NewDrawerLayout creates a drawer layout.
func NewDrawerLayout(drawerWidth, padding float32) *DrawerLayout {
	return &DrawerLayout{DrawerWidth: drawerWidth, Padding: padding}
}

func (l *DrawerLayout) open(objects []fyne.CanvasObject) bool {
	return len(objects) > 1 && objects[1].Visible()
}

// Layout arranges content and drawer.
func (l *DrawerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}

	content := objects[0]
	if !l.open(objects) {
		content.Resize(size)
		content.Move(fyne.NewPos(0, 0))
		return
	}

	contentWidth := size.Width - l.DrawerWidth - l.Padding
	if contentWidth < 0 {
		contentWidth = 0
	}
	content.Resize(fyne.NewSize(contentWidth, size.Height))
	content.Move(fyne.NewPos(0, 0))

	drawer := objects[1]
	drawer.Resize(fyne.NewSize(l.DrawerWidth, size.Height))
	drawer.Move(fyne.NewPos(size.Width-l.DrawerWidth, 0))
}

// MinSize returns the minimum size needed for the layout
func (l *DrawerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}

	contentMin := objects[0].MinSize()
	if !l.open(objects) {
		return contentMin
	}

	drawerMin := objects[1].MinSize()
	return fyne.NewSize(
		contentMin.Width+l.Padding+l.DrawerWidth,
		fyne.Max(contentMin.Height, drawerMin.Height),
	)
}
