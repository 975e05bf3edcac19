// Package link keeps sliders that share a link name at the same value.
// GUI hosts register their sliders and forward every change notification.
package link

import (
	"github.com/llehouerou/rangeslider/internal/diag"
	"github.com/llehouerou/rangeslider/internal/errmsg"
)

// Target is a slider that accepts externally supplied values.
type Target interface {
	SetValue(v float64) error
}

type member struct {
	name   string
	target Target
}

// Registry maps link names to their members.
type Registry struct {
	groups  map[string][]member
	groupOf map[string]string
	rec     *diag.Recorder
}

// New creates an empty registry. Sync failures are recorded on rec, which
// may be nil.
func New(rec *diag.Recorder) *Registry {
	return &Registry{
		groups:  make(map[string][]member),
		groupOf: make(map[string]string),
		rec:     rec,
	}
}

// Add registers target under name in group. An empty group is ignored.
func (r *Registry) Add(group, name string, target Target) {
	if group == "" {
		return
	}
	r.groups[group] = append(r.groups[group], member{name: name, target: target})
	r.groupOf[name] = group
}

// Members returns the names linked with name, including name itself.
func (r *Registry) Members(name string) []string {
	var out []string
	for _, m := range r.groups[r.groupOf[name]] {
		out = append(out, m.name)
	}
	return out
}

// Changed pushes v from the slider called source to every other member of
// its group. Members reject values outside their range; those failures
// are recorded and the member keeps its value.
func (r *Registry) Changed(source string, v float64) {
	group, ok := r.groupOf[source]
	if !ok {
		return
	}
	for _, m := range r.groups[group] {
		if m.name == source {
			continue
		}
		r.rec.Record(m.name, errmsg.OpSync, m.target.SetValue(v))
	}
}
