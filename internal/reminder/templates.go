package reminder

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CreateTemplate validates the spec and stores a reminder template.
// Templates hold no countdown; Trigger spawns one.
func (r *Registry) CreateTemplate(spec Spec, now time.Time) (Template, error) {
	spec = normalizeSpec(spec)
	if err := validateSpec(spec); err != nil {
		return Template{}, err
	}

	tmpl := Template{
		ID:              uuid.NewString(),
		Kind:            spec.Kind,
		Title:           spec.Title,
		Message:         spec.Message,
		Priority:        spec.Priority,
		DurationSeconds: spec.DurationSeconds,
		IntervalMinutes: spec.IntervalMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.mu.Lock()
	r.templates[tmpl.ID] = &tmpl
	r.mu.Unlock()

	return tmpl, nil
}

// UpdateTemplate replaces a template's mutable fields. Countdowns
// already spawned from the template are untouched. Unknown ids are a
// no-op returning false.
func (r *Registry) UpdateTemplate(id string, spec Spec, now time.Time) (bool, error) {
	spec = normalizeSpec(spec)
	if err := validateSpec(spec); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl, ok := r.templates[id]
	if !ok {
		return false, nil
	}
	tmpl.Kind = spec.Kind
	tmpl.Title = spec.Title
	tmpl.Message = spec.Message
	tmpl.Priority = spec.Priority
	tmpl.DurationSeconds = spec.DurationSeconds
	tmpl.IntervalMinutes = spec.IntervalMinutes
	tmpl.UpdatedAt = now
	return true, nil
}

// DeleteTemplate removes a template and any pending re-arms for it.
// Active countdowns spawned earlier keep running. Unknown ids are a
// no-op.
func (r *Registry) DeleteTemplate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.templates, id)

	remaining := r.rearms[:0]
	for _, entry := range r.rearms {
		if entry.templateID != id {
			remaining = append(remaining, entry)
		}
	}
	r.rearms = remaining
}

// Trigger spawns an active countdown from a stored template. Returns
// false for unknown ids.
func (r *Registry) Trigger(templateID string, now time.Time) (Reminder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl, ok := r.templates[templateID]
	if !ok {
		return Reminder{}, false
	}
	rem := spawnFromTemplate(tmpl, now)
	r.active[rem.ID] = &rem
	return rem, true
}

// Templates returns a snapshot of stored templates ordered by creation
// time.
func (r *Registry) Templates() []Template {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Template, 0, len(r.templates))
	for _, tmpl := range r.templates {
		out = append(out, *tmpl)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
