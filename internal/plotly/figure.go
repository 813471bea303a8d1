// Package plotly writes interactive 3D diagram scenes as plotly.js figures
// embedded in standalone HTML files. Only the small slice of the plotly
// figure schema that the bridge diagrams use is modeled here.
package plotly

// Figure is a plotly figure: an ordered trace list plus layout.
type Figure struct {
	Data   []any   `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
}

// Scatter3D is a 3D line/marker trace.
type Scatter3D struct {
	Type        string    `json:"type"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	Z           []float64 `json:"z"`
	Mode        string    `json:"mode,omitempty"`
	Line        *Line     `json:"line,omitempty"`
	Name        string    `json:"name,omitempty"`
	LegendGroup string    `json:"legendgroup,omitempty"`
	ShowLegend  *bool     `json:"showlegend,omitempty"`
	HoverInfo   string    `json:"hoverinfo,omitempty"`
}

// Line styles a scatter trace.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Mesh3D is a triangulated surface trace.
type Mesh3D struct {
	Type          string    `json:"type"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Z             []float64 `json:"z"`
	I             []int     `json:"i"`
	J             []int     `json:"j"`
	K             []int     `json:"k"`
	Name          string    `json:"name,omitempty"`
	LegendGroup   string    `json:"legendgroup,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
	Intensity     []float64 `json:"intensity,omitempty"`
	ColorScale    [][]any   `json:"colorscale,omitempty"`
	CMin          *float64  `json:"cmin,omitempty"`
	CMax          *float64  `json:"cmax,omitempty"`
	Opacity       float64   `json:"opacity,omitempty"`
	ShowScale     *bool     `json:"showscale,omitempty"`
	ColorBar      *ColorBar `json:"colorbar,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	FlatShading   *bool     `json:"flatshading,omitempty"`
	Lighting      *Lighting `json:"lighting,omitempty"`
	LightPosition *Vec3     `json:"lightposition,omitempty"`
}

// ColorBar configures the colorbar attached to a mesh trace.
type ColorBar struct {
	Title     string  `json:"title,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	Len       float64 `json:"len,omitempty"`
	X         float64 `json:"x,omitempty"`
}

// Lighting configures mesh surface lighting.
type Lighting struct {
	Ambient   float64 `json:"ambient,omitempty"`
	Diffuse   float64 `json:"diffuse,omitempty"`
	Specular  float64 `json:"specular,omitempty"`
	Roughness float64 `json:"roughness,omitempty"`
	Fresnel   float64 `json:"fresnel,omitempty"`
}

// Vec3 is a 3-component vector used by cameras and light positions.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Layout is the figure layout.
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	Scene        *SceneLayout `json:"scene,omitempty"`
	Width        int          `json:"width,omitempty"`
	Height       int          `json:"height,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	Font         *Font        `json:"font,omitempty"`
	HoverMode    string       `json:"hovermode,omitempty"`
	UpdateMenus  []UpdateMenu `json:"updatemenus,omitempty"`
}

// Title is a layout or axis title.
type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
	Font    *Font   `json:"font,omitempty"`
}

// Font styles text.
type Font struct {
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

// Margin is the layout margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// SceneLayout is the 3D scene configuration.
type SceneLayout struct {
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	ZAxis       *Axis        `json:"zaxis,omitempty"`
	AspectRatio *Vec3        `json:"aspectratio,omitempty"`
	Camera      *SceneCamera `json:"camera,omitempty"`
	BGColor     string       `json:"bgcolor,omitempty"`
}

// Axis is one 3D scene axis.
type Axis struct {
	Title           *Title  `json:"title,omitempty"`
	GridColor       string  `json:"gridcolor,omitempty"`
	GridWidth       float64 `json:"gridwidth,omitempty"`
	ShowGrid        *bool   `json:"showgrid,omitempty"`
	ZeroLine        *bool   `json:"zeroline,omitempty"`
	ZeroLineColor   string  `json:"zerolinecolor,omitempty"`
	ZeroLineWidth   float64 `json:"zerolinewidth,omitempty"`
	ShowBackground  *bool   `json:"showbackground,omitempty"`
	BackgroundColor string  `json:"backgroundcolor,omitempty"`
	ShowSpikes      *bool   `json:"showspikes,omitempty"`
	DTick           float64 `json:"dtick,omitempty"`
	TickFont        *Font   `json:"tickfont,omitempty"`
}

// SceneCamera positions the 3D camera.
type SceneCamera struct {
	Eye    *Vec3 `json:"eye,omitempty"`
	Center *Vec3 `json:"center,omitempty"`
	Up     *Vec3 `json:"up,omitempty"`
}

// UpdateMenu is a group of layout control buttons.
type UpdateMenu struct {
	Type        string   `json:"type,omitempty"`
	Direction   string   `json:"direction,omitempty"`
	Buttons     []Button `json:"buttons"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	XAnchor     string   `json:"xanchor,omitempty"`
	YAnchor     string   `json:"yanchor,omitempty"`
	ShowActive  *bool    `json:"showactive,omitempty"`
	BGColor     string   `json:"bgcolor,omitempty"`
	BorderColor string   `json:"bordercolor,omitempty"`
	BorderWidth float64  `json:"borderwidth,omitempty"`
}

// Button is one updatemenu button. For visibility toggles Args carries a
// single {"visible": [...]} restyle object.
type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Bool returns a pointer to b, for the optional boolean figure fields.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for the optional numeric figure fields.
func Float(f float64) *float64 { return &f }
