package presentation

// Default page settings.
const (
	DefaultPublishingApp = "smartanswers"
	DefaultRenderingApp  = "frontend"
	DefaultLocale        = "en"
	DefaultUpdateType    = "minor"
)

// Options are the settings shared by every page a presenter builds.
type Options struct {
	PublishingApp string `yaml:"publishing_app" envconfig:"PUBLISHING_APP"`
	RenderingApp  string `yaml:"rendering_app" envconfig:"RENDERING_APP"`
	Locale        string `yaml:"locale" envconfig:"LOCALE"`
	UpdateType    string `yaml:"update_type" envconfig:"UPDATE_TYPE"`
}

// DefaultOptions returns the default page settings.
func DefaultOptions() Options {
	return Options{
		PublishingApp: DefaultPublishingApp,
		RenderingApp:  DefaultRenderingApp,
		Locale:        DefaultLocale,
		UpdateType:    DefaultUpdateType,
	}
}

// WithDefaults fills every empty field from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.PublishingApp == "" {
		o.PublishingApp = d.PublishingApp
	}
	if o.RenderingApp == "" {
		o.RenderingApp = d.RenderingApp
	}
	if o.Locale == "" {
		o.Locale = d.Locale
	}
	if o.UpdateType == "" {
		o.UpdateType = d.UpdateType
	}
	return o
}
