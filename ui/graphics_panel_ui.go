package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/gfxpanel/config"
	"github.com/automoto/gfxpanel/graphics"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelHandlers are the widget event callbacks, normally the controller's
// On* methods.
type PanelHandlers struct {
	OnQualityLevelChanged    func(index int)
	OnResolutionChanged      func(index int)
	OnPixelLightCountChanged func(value float64)
	OnApply                  func()
	OnReset                  func()
}

// GraphicsPanelUI holds the ebitenui interface for the graphics settings
// panel
type GraphicsPanelUI struct {
	UI *ebitenui.UI

	Quality    *OptionButton
	Resolution *OptionButton
	PixelLight *StepSlider
	LightLabel *TextLabel

	handlers PanelHandlers

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewGraphicsPanelUI creates the panel. Widgets start empty until the
// controller initializes them.
func NewGraphicsPanelUI(h PanelHandlers) (*GraphicsPanelUI, error) {
	gui := &GraphicsPanelUI{
		handlers:   h,
		Quality:    NewOptionButton(h.OnQualityLevelChanged),
		Resolution: NewOptionButton(h.OnResolutionChanged),
		PixelLight: NewStepSlider(
			cfg.Panel.MinPixelLights,
			cfg.Panel.MaxPixelLights,
			cfg.Panel.PixelLightStep,
			cfg.Panel.BarSegments,
			h.OnPixelLightCountChanged,
		),
		LightLabel: &TextLabel{},
	}

	if err := gui.loadFonts(); err != nil {
		return nil, err
	}
	gui.buildUI()
	return gui, nil
}

// Widgets returns the adapters for graphics.NewController.
func (gui *GraphicsPanelUI) Widgets() graphics.Widgets {
	return graphics.Widgets{
		Quality:         gui.Quality,
		Resolution:      gui.Resolution,
		PixelLightCount: gui.PixelLight,
		PixelLightLabel: gui.LightLabel,
	}
}

func (gui *GraphicsPanelUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	gui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	gui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	gui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (gui *GraphicsPanelUI) buildUI() {
	// Transparent root so the light preview shows around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Panel.Title, &gui.titleFace, &widget.LabelColor{
			Idle: cfg.Panel.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(gui.buildOptionRow("Quality", gui.Quality))
	contentContainer.AddChild(gui.buildOptionRow("Resolution", gui.Resolution))
	contentContainer.AddChild(gui.buildLightRow())
	contentContainer.AddChild(gui.buildButtonsContainer())

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: widget text is synced on the first Update, after validation
}

func (gui *GraphicsPanelUI) newRow() *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.RowColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (gui *GraphicsPanelUI) newLabel(s string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &gui.normalFace, &widget.LabelColor{
			Idle: cfg.Panel.TextColor,
		}),
	)
}

func (gui *GraphicsPanelUI) newButton(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, cfg.Panel.ButtonHeight),
		),
		widget.ButtonOpts.Image(gui.buttonImage()),
		widget.ButtonOpts.Text(label, &gui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// buildOptionRow lays out "<name>  [<] [selected] [>]"
func (gui *GraphicsPanelUI) buildOptionRow(name string, opt *OptionButton) *widget.Container {
	row := gui.newRow()
	row.AddChild(gui.newLabel(name))
	row.AddChild(gui.newButton("<", 20, func() { opt.Step(-1) }))
	opt.Button = gui.newButton("", cfg.Panel.ButtonWidth, func() { opt.Step(+1) })
	row.AddChild(opt.Button)
	row.AddChild(gui.newButton(">", 20, func() { opt.Step(+1) }))
	return row
}

func (gui *GraphicsPanelUI) buildLightRow() *widget.Container {
	row := gui.newRow()

	gui.LightLabel.Label = gui.newLabel("")
	row.AddChild(gui.LightLabel.Label)

	row.AddChild(gui.newButton("-", 20, func() { gui.PixelLight.Nudge(-1) }))
	gui.PixelLight.Bar = gui.newLabel("")
	row.AddChild(gui.PixelLight.Bar)
	row.AddChild(gui.newButton("+", 20, func() { gui.PixelLight.Nudge(+1) }))
	return row
}

func (gui *GraphicsPanelUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	container.AddChild(gui.newButton("Apply", 80, gui.handlers.OnApply))
	container.AddChild(gui.newButton("Reset", 80, gui.handlers.OnReset))
	return container
}

func (gui *GraphicsPanelUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SyncWidgets pushes adapter state into the ebitenui widgets
func (gui *GraphicsPanelUI) SyncWidgets() {
	gui.Quality.Sync()
	gui.Resolution.Sync()
	gui.PixelLight.Sync()
	gui.LightLabel.Sync()
}

// Update calls the UI's Update method
func (gui *GraphicsPanelUI) Update() {
	gui.UI.Update()
	// Sync on first frame after widgets are validated
	if !gui.initialized {
		gui.initialized = true
		gui.SyncWidgets()
	}
}
