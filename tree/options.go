package tree

// Default field names used by [Build].
const (
	DefaultIDField       = "id"
	DefaultParentField   = "parent_id"
	DefaultAliasField    = "name"
	DefaultChildrenField = "_children"
)

// Options names the record fields [Build] reads and writes.
type Options struct {
	// IDField holds the record id. Empty means the record's position in the
	// input slice is used as its id.
	IDField string

	// ParentField holds the parent id. Blank values (see arr.Blank) mark a
	// root. Empty means every record is a root.
	ParentField string

	// AliasField holds the key a node is stored under in Roots, Orphans and
	// its parent's children. A node without the field is stored under its
	// id. Empty means nodes are appended positionally instead.
	AliasField string

	// ChildrenField is the field under which a node's children container is
	// attached. Empty falls back to DefaultChildrenField.
	ChildrenField string
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		IDField:       DefaultIDField,
		ParentField:   DefaultParentField,
		AliasField:    DefaultAliasField,
		ChildrenField: DefaultChildrenField,
	}
}

// Option customises [Build].
type Option func(*Options)

// WithIDField reads record ids from field.
func WithIDField(field string) Option {
	return func(o *Options) { o.IDField = field }
}

// WithoutIDField uses each record's input position as its id.
func WithoutIDField() Option {
	return func(o *Options) { o.IDField = "" }
}

// WithParentField reads parent ids from field.
func WithParentField(field string) Option {
	return func(o *Options) { o.ParentField = field }
}

// WithAliasField keys nodes by the value of field.
func WithAliasField(field string) Option {
	return func(o *Options) { o.AliasField = field }
}

// WithoutAlias appends nodes positionally instead of keying them.
func WithoutAlias() Option {
	return func(o *Options) { o.AliasField = "" }
}

// WithChildrenField attaches children containers under field.
func WithChildrenField(field string) Option {
	return func(o *Options) { o.ChildrenField = field }
}

// WithOptions replaces the whole configuration.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.ChildrenField == "" {
		o.ChildrenField = DefaultChildrenField
	}
	return o
}
