package preview

// Option configures Render.
type Option func(*options)

type options struct {
	width, height int
	margin        float64
	lineWidth     float64
	fontSize      float64
}

func defaultOptions() options {
	return options{
		width:     640,
		height:    480,
		margin:    32,
		lineWidth: 2,
		fontSize:  12,
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithMargin sets the blank border around the scene in pixels.
func WithMargin(m float64) Option {
	return func(o *options) {
		if m >= 0 {
			o.margin = m
		}
	}
}

// WithLineWidth sets the stroke width of all ways in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithFontSize sets the size of the distance label. Zero hides the label.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size >= 0 {
			o.fontSize = size
		}
	}
}
