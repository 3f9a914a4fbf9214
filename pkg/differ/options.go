package differ

// Option is a functional option for configuring a Differ
type Option func(*differ)

// WithCreates enables or disables create actions in computed plans
func WithCreates(enabled bool) Option {
	return func(d *differ) {
		d.creates = enabled
	}
}

// WithDeletes enables or disables delete actions in computed plans
func WithDeletes(enabled bool) Option {
	return func(d *differ) {
		d.deletes = enabled
	}
}
