package hclust

import "github.com/mullner-go/hclust/linkage"

// Options stores the effective configuration after applying Option setters.
// Its fields are unexported; callers configure Cluster through WithX
// constructors.
type Options struct {
	reuse bool
	rule  linkage.Rule
}

// Option mutates internal clustering configuration.
type Option func(*Options)

// WithReuse transfers ownership of the condensed matrix built internally by
// Cluster to the linkage algorithm, which mutates it in place. Since
// Cluster always builds a fresh matrix from items, this only affects
// whether that fresh matrix is defensively cloned again before clustering;
// it has no effect on the caller's own data.
func WithReuse() Option {
	return func(o *Options) { o.reuse = true }
}

// WithRule overrides the rule passed as Cluster's positional argument. It
// exists so callers building an Options value incrementally (e.g. from a
// config file) can set the rule alongside other options instead of as a
// separate positional parameter.
func WithRule(r linkage.Rule) Option {
	return func(o *Options) { o.rule = r }
}

func gatherOptions(rule linkage.Rule, opts []Option) Options {
	o := Options{reuse: false, rule: rule}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
